package ui

import (
	"image/color"
	"time"

	"github.com/OpticalFlyer/canvasui/surface"
)

const defaultFont = "Arial"

// ButtonOptions configures a Button. Zero fields take the defaults below.
type ButtonOptions struct {
	Width, Height        float64     // 160 x 30
	BackgroundColor      color.Color // rgb(200,200,200)
	HoverBackgroundColor color.Color // rgb(255,200,200)
	FontSize             float64     // 20
	FontColor            color.Color // black
	Font                 string      // Arial
	CornerRadius         float64     // 0, square corners
}

func (o ButtonOptions) withDefaults() ButtonOptions {
	if o.Width == 0 {
		o.Width = 160
	}
	if o.Height == 0 {
		o.Height = 30
	}
	if o.BackgroundColor == nil {
		o.BackgroundColor = mustColor("rgb(200,200,200)")
	}
	if o.HoverBackgroundColor == nil {
		o.HoverBackgroundColor = mustColor("rgb(255,200,200)")
	}
	if o.FontSize == 0 {
		o.FontSize = 20
	}
	if o.FontColor == nil {
		o.FontColor = color.Black
	}
	if o.Font == "" {
		o.Font = defaultFont
	}
	return o
}

// CheckBoxOptions configures a CheckBox. Zero fields take the defaults below.
type CheckBoxOptions struct {
	Width, Height     float64     // 20 x 20
	OutlineColor      color.Color // black
	HoverOutlineColor color.Color // rgb(255,0,0)
	CheckColor        color.Color // black
	CheckLineWidth    float64     // 2
	OutlineLineWidth  float64     // 1
	// BufferPercent is the fraction of the box left empty around the check mark.
	BufferPercent float64 // 0.2
}

func (o CheckBoxOptions) withDefaults() CheckBoxOptions {
	if o.Width == 0 {
		o.Width = 20
	}
	if o.Height == 0 {
		o.Height = 20
	}
	if o.OutlineColor == nil {
		o.OutlineColor = color.Black
	}
	if o.HoverOutlineColor == nil {
		o.HoverOutlineColor = mustColor("rgb(255,0,0)")
	}
	if o.CheckColor == nil {
		o.CheckColor = color.Black
	}
	if o.CheckLineWidth == 0 {
		o.CheckLineWidth = 2
	}
	if o.OutlineLineWidth == 0 {
		o.OutlineLineWidth = 1
	}
	if o.BufferPercent == 0 {
		o.BufferPercent = 0.2
	}
	return o
}

// TextOptions configures a Text label. Zero fields take the defaults below.
type TextOptions struct {
	FontSize       float64     // 20
	FontColor      color.Color // black
	HoverFontColor color.Color // rgb(100,0,0)
	Font           string      // Arial
	Bold           bool
	Align          surface.Align // left
}

func (o TextOptions) withDefaults() TextOptions {
	if o.FontSize == 0 {
		o.FontSize = 20
	}
	if o.FontColor == nil {
		o.FontColor = color.Black
	}
	if o.HoverFontColor == nil {
		o.HoverFontColor = mustColor("rgb(100,0,0)")
	}
	if o.Font == "" {
		o.Font = defaultFont
	}
	return o
}

// TextFieldOptions configures a TextField. Zero fields take the defaults below.
type TextFieldOptions struct {
	Width, Height     float64       // 160 x 30
	FontSize          float64       // 20
	Font              string        // Arial
	FontColor         color.Color   // rgb(0,0,130)
	OutlineColor      color.Color   // black
	HoverOutlineColor color.Color   // rgb(255,0,0)
	OutlineLineWidth  float64       // 1
	CursorBlinkRate   time.Duration // 500ms
}

func (o TextFieldOptions) withDefaults() TextFieldOptions {
	if o.Width == 0 {
		o.Width = 160
	}
	if o.Height == 0 {
		o.Height = 30
	}
	if o.FontSize == 0 {
		o.FontSize = 20
	}
	if o.Font == "" {
		o.Font = defaultFont
	}
	if o.FontColor == nil {
		o.FontColor = mustColor("rgb(0,0,130)")
	}
	if o.OutlineColor == nil {
		o.OutlineColor = color.Black
	}
	if o.HoverOutlineColor == nil {
		o.HoverOutlineColor = mustColor("rgb(255,0,0)")
	}
	if o.OutlineLineWidth == 0 {
		o.OutlineLineWidth = 1
	}
	if o.CursorBlinkRate <= 0 {
		o.CursorBlinkRate = 500 * time.Millisecond
	}
	return o
}
