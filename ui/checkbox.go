package ui

import "github.com/OpticalFlyer/canvasui/surface"

var (
	_ Renderable = (*CheckBox)(nil)
	_ Hoverable  = (*CheckBox)(nil)
	_ Clickable  = (*CheckBox)(nil)
)

// CheckBox is an outlined square that shows an X while checked. Each click
// toggles it and reports the new value to onChange.
type CheckBox struct {
	x, y     float64
	onChange func(checked bool)
	opts     CheckBoxOptions
	bbox     BoundingBox

	checked bool
	hover   bool
}

func NewCheckBox(x, y float64, onChange func(checked bool), opts CheckBoxOptions) *CheckBox {
	opts = opts.withDefaults()
	c := &CheckBox{
		x:        x,
		y:        y,
		onChange: onChange,
		opts:     opts,
	}
	c.bbox.Set(x, y, x+opts.Width, y+opts.Height)
	return c
}

func (c *CheckBox) Bounds() BoundingBox { return c.bbox }

func (c *CheckBox) SetPosition(x, y float64) {
	c.x, c.y = x, y
}

func (c *CheckBox) Checked() bool { return c.checked }

// SetChecked changes the state without notifying onChange.
func (c *CheckBox) SetChecked(v bool) { c.checked = v }

func (c *CheckBox) Hovered() bool { return c.hover }

func (c *CheckBox) Dehover() {
	c.hover = false
}

func (c *CheckBox) ReceiveMouseOver(x, y float64) {
	if c.bbox.PointIntersects(x, y) {
		c.hover = true
	}
}

func (c *CheckBox) ReceiveClick(x, y float64) {
	if !c.bbox.PointIntersects(x, y) {
		return
	}
	c.checked = !c.checked
	if c.onChange != nil {
		c.onChange(c.checked)
	}
}

func (c *CheckBox) Render(dst surface.Surface) {
	o := c.opts
	c.bbox.Set(c.x, c.y, c.x+o.Width, c.y+o.Height)

	outline := o.OutlineColor
	if c.hover {
		outline = o.HoverOutlineColor
	}
	dst.DrawRect(c.x, c.y, o.Width, o.Height, false, o.OutlineLineWidth, outline)

	if !c.checked {
		return
	}
	near, far := o.BufferPercent, 1.0-o.BufferPercent
	dst.DrawLine(
		c.x+o.Width*near, c.y+o.Height*near,
		c.x+o.Width*far, c.y+o.Height*far,
		o.CheckLineWidth, o.CheckColor)
	dst.DrawLine(
		c.x+o.Width*near, c.y+o.Height*far,
		c.x+o.Width*far, c.y+o.Height*near,
		o.CheckLineWidth, o.CheckColor)
}
