// Package surface defines the drawing capability widgets render onto.
//
// The package owns no backend state. A concrete implementation lives in
// surface/ebitensurface; tests use a recording fake.
package surface

import "image/color"

// Align is the horizontal anchor of drawn text relative to its x position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of drawn text relative to its y position.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
	BaselineAlphabetic
)

// TextStyle selects the face and anchoring used to draw or measure text.
type TextStyle struct {
	Size     float64
	Font     string
	Bold     bool
	Align    Align
	Baseline Baseline
}

// Surface is a 2D drawing target.
type Surface interface {
	DrawRect(x, y, w, h float64, filled bool, lineWidth float64, clr color.Color)
	DrawLine(x1, y1, x2, y2, lineWidth float64, clr color.Color)
	DrawText(x, y float64, clr color.Color, s string, st TextStyle)
	MeasureTextWidth(s string, st TextStyle) float64
	ClearRect(x, y, w, h float64)
}

// PolygonFiller is implemented by surfaces that can fill arbitrary simple
// polygons. pts holds flattened x,y pairs.
type PolygonFiller interface {
	FillPolygon(pts []float64, clr color.Color)
}
