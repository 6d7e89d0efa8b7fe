package ui

import (
	"testing"

	"github.com/OpticalFlyer/canvasui/surface"
)

func TestRoundedRectStaysInsideBounds(t *testing.T) {
	tests := []struct {
		name       string
		w, h, r    float64
		wantPoints int
	}{
		{"Square corners", 100, 30, 0, 4},
		{"Rounded", 100, 30, 6, 4 * (cornerSegments + 1)},
		{"Radius clamped", 100, 30, 50, 4 * (cornerSegments + 1)},
	}

	const eps = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := roundedRect(10, 20, tt.w, tt.h, tt.r)
			if got := len(pts) / 2; got != tt.wantPoints {
				t.Fatalf("got %d points; want %d", got, tt.wantPoints)
			}
			for i := 0; i < len(pts); i += 2 {
				x, y := pts[i], pts[i+1]
				if x < 10-eps || x > 10+tt.w+eps || y < 20-eps || y > 20+tt.h+eps {
					t.Errorf("point (%v, %v) outside the rectangle", x, y)
				}
			}
		})
	}
}

func TestRoundedRectTriangulates(t *testing.T) {
	pts := roundedRect(0, 0, 160, 30, 8)
	idx, err := surface.Triangulate(pts)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if n := len(pts) / 2; len(idx) != 3*(n-2) {
		t.Errorf("got %d indices for %d points; want %d", len(idx), n, 3*(n-2))
	}
}
