package ui

import (
	"github.com/OpticalFlyer/canvasui/surface"
)

var (
	_ Renderable = (*Button)(nil)
	_ Hoverable  = (*Button)(nil)
	_ Clickable  = (*Button)(nil)
)

// Button is a filled rectangle with a centred label that calls onClick when
// clicked.
type Button struct {
	x, y    float64
	text    string
	onClick func()
	opts    ButtonOptions
	bbox    BoundingBox

	// State
	hover bool
}

func NewButton(x, y float64, text string, onClick func(), opts ButtonOptions) *Button {
	opts = opts.withDefaults()
	b := &Button{
		x:       x,
		y:       y,
		text:    text,
		onClick: onClick,
		opts:    opts,
	}
	b.bbox.Set(x, y, x+opts.Width, y+opts.Height)
	return b
}

func (b *Button) Bounds() BoundingBox { return b.bbox }

// SetPosition moves the button. The bounding box follows on the next render.
func (b *Button) SetPosition(x, y float64) {
	b.x, b.y = x, y
}

func (b *Button) Text() string        { return b.text }
func (b *Button) SetText(text string) { b.text = text }
func (b *Button) Hovered() bool       { return b.hover }

func (b *Button) Dehover() {
	b.hover = false
}

func (b *Button) ReceiveMouseOver(x, y float64) {
	if b.bbox.PointIntersects(x, y) {
		b.hover = true
	}
}

func (b *Button) ReceiveClick(x, y float64) {
	if b.bbox.PointIntersects(x, y) && b.onClick != nil {
		b.onClick()
	}
}

func (b *Button) Render(dst surface.Surface) {
	o := b.opts
	b.bbox.Set(b.x, b.y, b.x+o.Width, b.y+o.Height)

	bgColor := o.BackgroundColor
	if b.hover {
		bgColor = o.HoverBackgroundColor
	}

	filler, canFill := dst.(surface.PolygonFiller)
	if o.CornerRadius > 0 && canFill {
		filler.FillPolygon(roundedRect(b.x, b.y, o.Width, o.Height, o.CornerRadius), bgColor)
	} else {
		dst.DrawRect(b.x, b.y, o.Width, o.Height, true, 1, bgColor)
	}

	dst.DrawText(b.x+o.Width/2, b.y+o.Height/2, o.FontColor, b.text, surface.TextStyle{
		Size:     o.FontSize,
		Font:     o.Font,
		Align:    surface.AlignCenter,
		Baseline: surface.BaselineMiddle,
	})
}
