package surface

import (
	"fmt"
	"math"

	earcut "github.com/flywave/go-earcut"
)

// Triangulate tessellates a simple polygon given as flattened x,y pairs and
// returns triangle vertex indices suitable for ebiten.Image.DrawTriangles.
func Triangulate(pts []float64) ([]uint16, error) {
	if len(pts)%2 != 0 {
		return nil, fmt.Errorf("polygon has odd coordinate count %d", len(pts))
	}
	n := len(pts) / 2
	if n < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d", n)
	}
	if n > math.MaxUint16 {
		return nil, fmt.Errorf("polygon has %d points, max %d", n, math.MaxUint16)
	}

	idx, err := earcut.Earcut(pts, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("tessellating polygon: %w", err)
	}

	out := make([]uint16, len(idx))
	for i, v := range idx {
		out[i] = uint16(v)
	}
	return out, nil
}
