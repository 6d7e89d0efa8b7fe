package ui

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"time"

	"github.com/OpticalFlyer/canvasui/surface"
	"github.com/pelletier/go-toml/v2"
)

// Theme holds per-widget styling loaded from a TOML file:
//
//	[button]
//	width = 200
//	background_color = "rgb(220,220,220)"
//	corner_radius = 6
//
//	[textfield]
//	cursor_blink_rate = 400 # milliseconds
//
// Fields left out keep their defaults.
type Theme struct {
	Button    ButtonTheme    `toml:"button"`
	CheckBox  CheckBoxTheme  `toml:"checkbox"`
	Text      TextTheme      `toml:"text"`
	TextField TextFieldTheme `toml:"textfield"`
}

type ButtonTheme struct {
	Width                float64 `toml:"width"`
	Height               float64 `toml:"height"`
	BackgroundColor      *Color  `toml:"background_color"`
	HoverBackgroundColor *Color  `toml:"hover_background_color"`
	FontSize             float64 `toml:"font_size"`
	FontColor            *Color  `toml:"font_color"`
	Font                 string  `toml:"font"`
	CornerRadius         float64 `toml:"corner_radius"`
}

type CheckBoxTheme struct {
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	OutlineColor      *Color  `toml:"outline_color"`
	HoverOutlineColor *Color  `toml:"hover_outline_color"`
	CheckColor        *Color  `toml:"check_color"`
	CheckLineWidth    float64 `toml:"check_line_width"`
	OutlineLineWidth  float64 `toml:"outline_line_width"`
	BufferPercent     float64 `toml:"buffer_percent"`
}

type TextTheme struct {
	FontSize       float64 `toml:"font_size"`
	FontColor      *Color  `toml:"font_color"`
	HoverFontColor *Color  `toml:"hover_font_color"`
	Font           string  `toml:"font"`
	Bold           bool    `toml:"bold"`
	Align          string  `toml:"align"`
}

type TextFieldTheme struct {
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	FontSize          float64 `toml:"font_size"`
	Font              string  `toml:"font"`
	FontColor         *Color  `toml:"font_color"`
	OutlineColor      *Color  `toml:"outline_color"`
	HoverOutlineColor *Color  `toml:"hover_outline_color"`
	OutlineLineWidth  float64 `toml:"outline_line_width"`
	CursorBlinkRate   int64   `toml:"cursor_blink_rate"`
}

// LoadTheme reads a theme file. A missing file yields the zero Theme, whose
// options resolve to the widget defaults.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("theme file not found, using defaults", "path", path)
		return Theme{}, nil
	}
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	t, err := ParseTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// ParseTheme decodes TOML theme data.
func ParseTheme(data []byte) (Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, err
	}
	if _, err := parseAlign(t.Text.Align); err != nil {
		return Theme{}, err
	}
	if t.TextField.CursorBlinkRate < 0 {
		return Theme{}, fmt.Errorf("textfield.cursor_blink_rate must not be negative, got %d", t.TextField.CursorBlinkRate)
	}
	return t, nil
}

func parseAlign(s string) (surface.Align, error) {
	switch s {
	case "", "left":
		return surface.AlignLeft, nil
	case "center":
		return surface.AlignCenter, nil
	case "right":
		return surface.AlignRight, nil
	}
	return surface.AlignLeft, fmt.Errorf("unknown text align %q", s)
}

// colorOrNil keeps a nil *Color as a nil interface so defaults still apply.
func colorOrNil(c *Color) color.Color {
	if c == nil {
		return nil
	}
	return *c
}

// ButtonOptions returns the resolved button options.
func (t Theme) ButtonOptions() ButtonOptions {
	b := t.Button
	return ButtonOptions{
		Width:                b.Width,
		Height:               b.Height,
		BackgroundColor:      colorOrNil(b.BackgroundColor),
		HoverBackgroundColor: colorOrNil(b.HoverBackgroundColor),
		FontSize:             b.FontSize,
		FontColor:            colorOrNil(b.FontColor),
		Font:                 b.Font,
		CornerRadius:         b.CornerRadius,
	}.withDefaults()
}

// CheckBoxOptions returns the resolved checkbox options.
func (t Theme) CheckBoxOptions() CheckBoxOptions {
	c := t.CheckBox
	return CheckBoxOptions{
		Width:             c.Width,
		Height:            c.Height,
		OutlineColor:      colorOrNil(c.OutlineColor),
		HoverOutlineColor: colorOrNil(c.HoverOutlineColor),
		CheckColor:        colorOrNil(c.CheckColor),
		CheckLineWidth:    c.CheckLineWidth,
		OutlineLineWidth:  c.OutlineLineWidth,
		BufferPercent:     c.BufferPercent,
	}.withDefaults()
}

// TextOptions returns the resolved text options. An invalid align falls back
// to left; ParseTheme rejects those up front.
func (t Theme) TextOptions() TextOptions {
	x := t.Text
	align, _ := parseAlign(x.Align)
	return TextOptions{
		FontSize:       x.FontSize,
		FontColor:      colorOrNil(x.FontColor),
		HoverFontColor: colorOrNil(x.HoverFontColor),
		Font:           x.Font,
		Bold:           x.Bold,
		Align:          align,
	}.withDefaults()
}

// TextFieldOptions returns the resolved text field options.
func (t Theme) TextFieldOptions() TextFieldOptions {
	f := t.TextField
	return TextFieldOptions{
		Width:             f.Width,
		Height:            f.Height,
		FontSize:          f.FontSize,
		Font:              f.Font,
		FontColor:         colorOrNil(f.FontColor),
		OutlineColor:      colorOrNil(f.OutlineColor),
		HoverOutlineColor: colorOrNil(f.HoverOutlineColor),
		OutlineLineWidth:  f.OutlineLineWidth,
		CursorBlinkRate:   time.Duration(f.CursorBlinkRate) * time.Millisecond,
	}.withDefaults()
}
