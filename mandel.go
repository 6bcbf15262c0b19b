package mandel

import (
	"fmt"
	"math"
	"sort"
)

// Region is a rectangle of the complex plane.
type Region struct {
	Rmin, Rmax float64
	Imin, Imax float64
}

// CenteredRegion derives the imaginary range from a real range, an imaginary
// center and the image aspect ratio, so pixels stay square.
func CenteredRegion(rmin, rmax, icenter float64, width, height int) Region {
	iwidth := (rmax - rmin) * float64(height) / float64(width)
	return Region{
		Rmin: rmin,
		Rmax: rmax,
		Imin: icenter - iwidth/2,
		Imax: icenter + iwidth/2,
	}
}

func (r Region) validate() error {
	for _, v := range []float64{r.Rmin, r.Rmax, r.Imin, r.Imax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: region bounds must be finite, got %+v", ErrInvalidConfig, r)
		}
	}
	if r.Rmax <= r.Rmin {
		return fmt.Errorf("%w: real axis max %g <= min %g", ErrInvalidConfig, r.Rmax, r.Rmin)
	}
	if r.Imax <= r.Imin {
		return fmt.Errorf("%w: imaginary axis max %g <= min %g", ErrInvalidConfig, r.Imax, r.Imin)
	}
	return nil
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full set – the whole set at a glance
	FullSet = Region{
		Rmin: -2.0,
		Rmax: 1.0,
		Imin: -1.5,
		Imax: 1.5,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Rmin: -0.8,
		Rmax: -0.7,
		Imin: 0.05,
		Imax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Rmin: -1.85,
		Rmax: -1.75,
		Imin: -0.10,
		Imax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Rmin: -0.7435,
		Rmax: -0.7420,
		Imin: 0.1310,
		Imax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Rmin: -0.7480,
		Rmax: -0.7450,
		Imin: 0.0950,
		Imax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Rmin: -0.7400,
		Rmax: -0.7350,
		Imin: 0.1800,
		Imax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Rmin: -1.7390,
		Rmax: -1.7375,
		Imin: -0.0235,
		Imax: -0.0220,
	}
)

var landmarks = map[string]Region{
	"full":       FullSet,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"spiral":     SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}

// Landmark returns the named landmark region.
func Landmark(name string) (Region, bool) {
	r, ok := landmarks[name]
	return r, ok
}

// LandmarkNames lists the names accepted by Landmark, sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
