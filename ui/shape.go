package ui

import "math"

const cornerSegments = 6

// roundedRect returns the outline of a rectangle with circular corners as
// flattened x,y pairs, clockwise in screen space starting at the top-left
// arc. The radius is clamped to half the shorter side.
func roundedRect(x, y, w, h, r float64) []float64 {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return []float64{x, y, x + w, y, x + w, y + h, x, y + h}
	}

	centers := [4][2]float64{
		{x + r, y + r},         // top-left
		{x + w - r, y + r},     // top-right
		{x + w - r, y + h - r}, // bottom-right
		{x + r, y + h - r},     // bottom-left
	}

	pts := make([]float64, 0, 4*(cornerSegments+1)*2)
	for i, c := range centers {
		start := math.Pi + float64(i)*math.Pi/2
		for s := 0; s <= cornerSegments; s++ {
			a := start + float64(s)*(math.Pi/2)/cornerSegments
			pts = append(pts, c[0]+r*math.Cos(a), c[1]+r*math.Sin(a))
		}
	}
	return pts
}
