package render

import (
	"math"
	"testing"

	mandel "github.com/marben/parallel_mandel"
)

func TestMapper(t *testing.T) {
	m := NewMapper(mandel.Viewport{
		Region: mandel.Region{Rmin: -2, Rmax: 1, Imin: -2, Imax: 2},
		Width:  8,
		Height: 8,
	})
	tests := []struct {
		x, y int
		want complex128
	}{
		{0, 0, complex(-2, -2)},
		{4, 4, complex(-0.5, 0)},
		{7, 7, complex(0.625, 1.5)},
		{8, 8, complex(1, 2)},
	}
	for _, tt := range tests {
		got := m.Point(tt.x, tt.y)
		if math.Abs(real(got)-real(tt.want)) > 1e-12 || math.Abs(imag(got)-imag(tt.want)) > 1e-12 {
			t.Errorf("Point(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
