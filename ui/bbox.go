package ui

import "math"

// BoundingBox is an axis-aligned rectangle used for hit testing.
//
// Point containment is strict (the boundary is outside) while box overlap is
// non-strict (touching edges intersect). Degenerate boxes with min > max are
// not rejected: they contain no point, and BoxIntersects applies the same
// separating-axis test as for any other box.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBoundingBox returns an unbounded box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(-1),
		MaxX: math.Inf(1),
		MinY: math.Inf(-1),
		MaxY: math.Inf(1),
	}
}

// Set replaces all four edges.
func (b *BoundingBox) Set(minX, minY, maxX, maxY float64) {
	b.MinX = minX
	b.MinY = minY
	b.MaxX = maxX
	b.MaxY = maxY
}

// PointIntersects reports whether (x, y) lies strictly inside the box.
func (b BoundingBox) PointIntersects(x, y float64) bool {
	return x > b.MinX && x < b.MaxX && y > b.MinY && y < b.MaxY
}

// BoxIntersects reports whether the two boxes overlap or touch.
func (b BoundingBox) BoxIntersects(o BoundingBox) bool {
	if o.MaxX < b.MinX || o.MinX > b.MaxX || o.MaxY < b.MinY || o.MinY > b.MaxY {
		return false
	}
	return true
}

func (b BoundingBox) Width() float64  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }
