package render

import (
	"errors"
	"fmt"
	"time"

	mandel "github.com/marben/parallel_mandel"
	"golang.org/x/sync/errgroup"
)

// ErrWorkerFailed is wrapped by the error Render returns when a worker
// terminates abnormally.
var ErrWorkerFailed = errors.New("worker failed")

// computeRows is swapped out by tests to simulate a crashing worker.
var computeRows = RenderRows

// Engine implements mandel.Renderer.
type Engine struct{}

var _ mandel.Renderer = Engine{}

// Render implements mandel.Renderer.
func (Engine) Render(cfg mandel.Config) (*mandel.PixelBuffer, error) {
	return Render(cfg)
}

// Render validates cfg, computes all rows on cfg.Threads goroutines and
// assembles them once every goroutine has returned. If any worker fails no
// buffer is returned.
func Render(cfg mandel.Config) (*mandel.PixelBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := mandel.Logger()
	start := time.Now()

	m := NewMapper(cfg.Viewport)
	assignments := Partition(cfg.Height, cfg.Threads, cfg.Truncate)
	results := make([][][]uint8, len(assignments))
	log.Debug("rows partitioned", "threads", cfg.Threads, "rows_per_worker", cfg.Height/cfg.Threads, "truncate", cfg.Truncate)

	var g errgroup.Group
	for _, a := range assignments {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailed, a.Worker, r)
				}
			}()
			rows := computeRows(a, m, cfg.Width, cfg.Budget)
			// each goroutine writes only its own slot
			results[a.Worker] = rows
			log.Debug("worker finished", "worker", a.Worker, "rows", len(rows))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	buf, err := Assemble(cfg.Width, cfg.Height, results)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	log.Info("render finished",
		"width", cfg.Width,
		"height", cfg.Height,
		"threads", cfg.Threads,
		"iterations", cfg.Iterations,
		"elapsed", time.Since(start))
	return buf, nil
}
