package surface

import "testing"

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name      string
		pts       []float64
		wantTris  int
		wantError bool
	}{
		{
			name:     "Triangle",
			pts:      []float64{0, 0, 10, 0, 0, 10},
			wantTris: 1,
		},
		{
			name:     "Square",
			pts:      []float64{0, 0, 10, 0, 10, 10, 0, 10},
			wantTris: 2,
		},
		{
			name:     "Convex hexagon",
			pts:      []float64{2, 0, 8, 0, 10, 5, 8, 10, 2, 10, 0, 5},
			wantTris: 4,
		},
		{
			name:      "Too few points",
			pts:       []float64{0, 0, 1, 1},
			wantError: true,
		},
		{
			name:      "Odd coordinate count",
			pts:       []float64{0, 0, 1, 1, 2},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := Triangulate(tt.pts)
			if tt.wantError {
				if err == nil {
					t.Fatalf("Triangulate(%v) = %v; want error", tt.pts, idx)
				}
				return
			}
			if err != nil {
				t.Fatalf("Triangulate(%v) error: %v", tt.pts, err)
			}
			if got := len(idx) / 3; got != tt.wantTris || len(idx)%3 != 0 {
				t.Errorf("got %d indices; want %d triangles", len(idx), tt.wantTris)
			}
			for _, v := range idx {
				if int(v) >= len(tt.pts)/2 {
					t.Errorf("index %d out of range for %d points", v, len(tt.pts)/2)
				}
			}
		})
	}
}
