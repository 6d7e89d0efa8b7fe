package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/OpticalFlyer/canvasui/surface"
)

// drawCall is one recorded surface operation.
type drawCall struct {
	Op    string
	Args  []float64
	Text  string
	Color color.Color
	Style surface.TextStyle
}

// recorder is a surface that records draw calls and measures text at a
// fixed advance per rune.
type recorder struct {
	calls     []drawCall
	runeWidth float64
}

func newRecorder() *recorder {
	return &recorder{runeWidth: 10}
}

func (r *recorder) DrawRect(x, y, w, h float64, filled bool, lineWidth float64, clr color.Color) {
	op := "stroke-rect"
	if filled {
		op = "fill-rect"
	}
	r.calls = append(r.calls, drawCall{Op: op, Args: []float64{x, y, w, h, lineWidth}, Color: clr})
}

func (r *recorder) DrawLine(x1, y1, x2, y2, lineWidth float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{Op: "line", Args: []float64{x1, y1, x2, y2, lineWidth}, Color: clr})
}

func (r *recorder) DrawText(x, y float64, clr color.Color, s string, st surface.TextStyle) {
	r.calls = append(r.calls, drawCall{Op: "text", Args: []float64{x, y}, Text: s, Color: clr, Style: st})
}

func (r *recorder) MeasureTextWidth(s string, st surface.TextStyle) float64 {
	return float64(utf8.RuneCountInString(s)) * r.runeWidth
}

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.calls = append(r.calls, drawCall{Op: "clear", Args: []float64{x, y, w, h}})
}

func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

// polyRecorder additionally supports polygon fills.
type polyRecorder struct {
	*recorder
}

func (p polyRecorder) FillPolygon(pts []float64, clr color.Color) {
	p.calls = append(p.calls, drawCall{Op: "polygon", Args: pts, Color: clr})
}
