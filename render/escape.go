// Package render is the parallel escape-time engine: it splits an image's
// rows across a fixed set of goroutines, iterates every pixel's point and
// reassembles the rows into a grayscale frame that does not depend on how
// the goroutines were scheduled.
package render

import "math"

// escapeR2 is the squared escape radius.
const escapeR2 = 4.0

// Result is the escape verdict for one point.
type Result struct {
	Escaped bool
	// Iterations is the 1-based index k of the first iterate z_k with
	// |z_k| > 2, where z_1 = c. It is 0 for members.
	Iterations int
}

// Escape iterates z <- z*z + c from z = 0 for at most maxIter steps.
func Escape(c complex128, maxIter int) Result {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for k := 1; k <= maxIter; k++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > escapeR2 {
			return Result{Escaped: true, Iterations: k}
		}
	}
	return Result{}
}

// Intensity maps an escape result to an 8-bit gray level. Members are black;
// points that survive longer before escaping glow brighter.
func Intensity(r Result, colorFactor float64) uint8 {
	if !r.Escaped {
		return 0
	}
	v := math.Sqrt(float64(r.Iterations)/colorFactor) * 255
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}
