package render

import mandel "github.com/marben/parallel_mandel"

// Mapper converts pixel coordinates to points of the complex plane.
// The per-axis step is computed once so every worker maps a given pixel
// to the same point.
type Mapper struct {
	rmin, imin   float64
	rstep, istep float64
}

func NewMapper(v mandel.Viewport) Mapper {
	return Mapper{
		rmin:  v.Rmin,
		imin:  v.Imin,
		rstep: (v.Rmax - v.Rmin) / float64(v.Width),
		istep: (v.Imax - v.Imin) / float64(v.Height),
	}
}

// Point returns the point of pixel (x, y).
func (m Mapper) Point(x, y int) complex128 {
	return complex(m.Real(x), m.Imag(y))
}

// Real returns the real coordinate of column x.
func (m Mapper) Real(x int) float64 {
	return float64(x)*m.rstep + m.rmin
}

// Imag returns the imaginary coordinate of row y.
func (m Mapper) Imag(y int) float64 {
	return float64(y)*m.istep + m.imin
}
