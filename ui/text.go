package ui

import "github.com/OpticalFlyer/canvasui/surface"

var (
	_ Renderable = (*Text)(nil)
	_ Hoverable  = (*Text)(nil)
	_ Clickable  = (*Text)(nil)
)

// Text is a clickable label. Its bounding box is sized from the measured
// text on each render: centred on x for centre alignment, ending at x for
// right alignment, starting at x otherwise, and one font size tall.
type Text struct {
	x, y    float64
	text    string
	onClick func()
	opts    TextOptions
	bbox    BoundingBox

	hover bool
}

func NewText(x, y float64, text string, onClick func(), opts TextOptions) *Text {
	opts = opts.withDefaults()
	t := &Text{
		x:       x,
		y:       y,
		text:    text,
		onClick: onClick,
		opts:    opts,
	}
	t.bbox.Set(x, y, x+opts.FontSize, y+opts.FontSize)
	return t
}

func (t *Text) Bounds() BoundingBox { return t.bbox }

func (t *Text) SetPosition(x, y float64) {
	t.x, t.y = x, y
}

func (t *Text) Text() string        { return t.text }
func (t *Text) SetText(text string) { t.text = text }
func (t *Text) Hovered() bool       { return t.hover }

func (t *Text) Dehover() {
	t.hover = false
}

func (t *Text) ReceiveMouseOver(x, y float64) {
	if t.bbox.PointIntersects(x, y) {
		t.hover = true
	}
}

func (t *Text) ReceiveClick(x, y float64) {
	if t.bbox.PointIntersects(x, y) && t.onClick != nil {
		t.onClick()
	}
}

func (t *Text) style() surface.TextStyle {
	return surface.TextStyle{
		Size:     t.opts.FontSize,
		Font:     t.opts.Font,
		Bold:     t.opts.Bold,
		Align:    t.opts.Align,
		Baseline: surface.BaselineTop,
	}
}

func (t *Text) Render(dst surface.Surface) {
	fontColor := t.opts.FontColor
	if t.hover {
		fontColor = t.opts.HoverFontColor
	}

	st := t.style()
	w := dst.MeasureTextWidth(t.text, st)
	switch t.opts.Align {
	case surface.AlignCenter:
		t.bbox.Set(t.x-w/2, t.y, t.x+w/2, t.y+t.opts.FontSize)
	case surface.AlignRight:
		t.bbox.Set(t.x-w, t.y, t.x, t.y+t.opts.FontSize)
	default:
		t.bbox.Set(t.x, t.y, t.x+w, t.y+t.opts.FontSize)
	}

	dst.DrawText(t.x, t.y, fontColor, t.text, st)
}
