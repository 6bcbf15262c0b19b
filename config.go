package mandel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

// Viewport maps a Region of the complex plane onto a Width x Height pixel grid.
type Viewport struct {
	Region
	Width, Height int
}

// Budget bounds the escape iteration and controls how survival time maps
// to brightness.
type Budget struct {
	Iterations  int     // maximum iterations before a point counts as a member
	ColorFactor float64 // the "darkness" of the area just outside the set
}

// Config is everything a render needs. It is built once before a render and
// never modified while the render runs.
type Config struct {
	Viewport
	Budget
	Threads int

	// Truncate makes every worker compute exactly Height/Threads rows.
	// Trailing rows that no worker owns stay black.
	Truncate bool
}

// DefaultConfig returns a 400x400 render of the full set on 8 workers.
func DefaultConfig() Config {
	const width, height = 400, 400
	return Config{
		Viewport: Viewport{
			Region: CenteredRegion(-1.8, 0.8, 0, width, height),
			Width:  width,
			Height: height,
		},
		Budget: Budget{
			Iterations:  1000,
			ColorFactor: 300,
		},
		Threads: 8,
	}
}

// Validate reports the first problem that makes cfg unrenderable.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, cfg.Width)
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, cfg.Height)
	}
	if cfg.Threads <= 0 {
		return fmt.Errorf("%w: thread count must be positive, got %d", ErrInvalidConfig, cfg.Threads)
	}
	if cfg.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, cfg.Iterations)
	}
	if !(cfg.ColorFactor > 0) || math.IsInf(cfg.ColorFactor, 0) {
		return fmt.Errorf("%w: color factor must be a positive number, got %g", ErrInvalidConfig, cfg.ColorFactor)
	}
	return cfg.Region.validate()
}
