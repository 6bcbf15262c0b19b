package render

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"

	mandel "github.com/marben/parallel_mandel"
)

func scenarioConfig(threads int) mandel.Config {
	return mandel.Config{
		Viewport: mandel.Viewport{
			Region: mandel.Region{Rmin: -2, Rmax: 1, Imin: -2, Imax: 2},
			Width:  8,
			Height: 8,
		},
		Budget:  mandel.Budget{Iterations: 50, ColorFactor: 50},
		Threads: threads,
	}
}

func TestRenderScenario(t *testing.T) {
	buf, err := Render(scenarioConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width() != 8 || buf.Height() != 8 {
		t.Fatalf("buffer is %dx%d, want 8x8", buf.Width(), buf.Height())
	}
	if got := buf.Gray(4, 4); got != 0 {
		t.Errorf("center pixel = %d, want 0 (member)", got)
	}
	if got := buf.Gray(0, 0); got != 36 {
		t.Errorf("corner pixel = %d, want 36", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := mandel.DefaultConfig()
	cfg.Width, cfg.Height = 61, 47
	cfg.Region = mandel.CenteredRegion(-1.8, 0.8, 0, cfg.Width, cfg.Height)
	cfg.Iterations = 200

	var want []uint8
	for _, threads := range []int{1, 1, 3, 7, 8, 47, 64} {
		cfg.Threads = threads
		buf, err := Render(cfg)
		if err != nil {
			t.Fatalf("threads %d: %v", threads, err)
		}
		if want == nil {
			want = buf.Pix()
			continue
		}
		if !bytes.Equal(buf.Pix(), want) {
			t.Errorf("threads %d: buffer differs from single-threaded render", threads)
		}
	}
}

func TestRenderTruncate(t *testing.T) {
	// every point escapes immediately, so every rendered pixel is white
	cfg := mandel.Config{
		Viewport: mandel.Viewport{
			Region: mandel.Region{Rmin: 3, Rmax: 4, Imin: 3, Imax: 4},
			Width:  5,
			Height: 10,
		},
		Budget:   mandel.Budget{Iterations: 10, ColorFactor: 1},
		Threads:  4,
		Truncate: true,
	}
	buf, err := Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		want := uint8(255)
		if y >= 8 {
			want = 0
		}
		for x := 0; x < 5; x++ {
			if got := buf.Gray(x, y); got != want {
				t.Fatalf("Gray(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	cfg.Truncate = false
	buf, err = Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Gray(0, 9); got != 255 {
		t.Errorf("without truncate Gray(0,9) = %d, want 255", got)
	}
}

func TestRenderWorkerFailure(t *testing.T) {
	orig := computeRows
	t.Cleanup(func() { computeRows = orig })
	computeRows = func(a Assignment, m Mapper, width int, b mandel.Budget) [][]uint8 {
		if a.Worker == 1 {
			panic("arithmetic fault")
		}
		return orig(a, m, width, b)
	}

	buf, err := Render(scenarioConfig(3))
	if !errors.Is(err, ErrWorkerFailed) {
		t.Fatalf("Render() error = %v, want ErrWorkerFailed", err)
	}
	if buf != nil {
		t.Error("Render() returned a buffer for a failed render")
	}
}

func TestRenderInvalidConfigSpawnsNothing(t *testing.T) {
	orig := computeRows
	t.Cleanup(func() { computeRows = orig })
	var calls atomic.Int32
	computeRows = func(a Assignment, m Mapper, width int, b mandel.Budget) [][]uint8 {
		calls.Add(1)
		return orig(a, m, width, b)
	}

	cfg := scenarioConfig(0)
	if _, err := Render(cfg); !errors.Is(err, mandel.ErrInvalidConfig) {
		t.Fatalf("Render() error = %v, want ErrInvalidConfig", err)
	}
	cfg = scenarioConfig(2)
	cfg.Rmax = cfg.Rmin
	if _, err := (Engine{}).Render(cfg); !errors.Is(err, mandel.ErrInvalidConfig) {
		t.Fatalf("Engine.Render() error = %v, want ErrInvalidConfig", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("%d workers ran for invalid configs", n)
	}
}
