// Command mandel renders the Mandelbrot set in grayscale on a fixed number of
// goroutines and shows the finished frame once.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	mandel "github.com/marben/parallel_mandel"
	"github.com/marben/parallel_mandel/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// reject bad configuration before anything is spawned or opened
	if err := opts.cfg.Validate(); err != nil {
		return err
	}
	surface, err := newSurface(opts)
	if err != nil {
		return err
	}

	var renderer mandel.Renderer = render.Engine{}
	buf, err := renderer.Render(opts.cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := surface.Present(ctx, buf); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

type options struct {
	cfg     mandel.Config
	surface string
	addr    string
	format  string
	scale   int
	title   string
	verbose bool
}

func parseFlags(args []string) (options, error) {
	def := mandel.DefaultConfig()
	fs := flag.NewFlagSet("mandel", flag.ContinueOnError)
	var (
		width      = fs.Int("width", def.Width, "image width in pixels")
		height     = fs.Int("height", def.Height, "image height in pixels")
		rmin       = fs.Float64("rmin", def.Rmin, "real axis minimum")
		rmax       = fs.Float64("rmax", def.Rmax, "real axis maximum")
		icenter    = fs.Float64("icenter", 0, "imaginary axis center; the range follows the aspect ratio")
		imin       = fs.Float64("imin", 0, "imaginary axis minimum (needs -imax)")
		imax       = fs.Float64("imax", 0, "imaginary axis maximum (needs -imin)")
		region     = fs.String("region", "", "named region, one of: "+strings.Join(mandel.LandmarkNames(), ", "))
		iterations = fs.Int("iterations", def.Iterations, "maximum iterations before a point counts as a member")
		factor     = fs.Float64("factor", def.ColorFactor, "brightness scale factor; higher is darker")
		threads    = fs.Int("threads", def.Threads, "number of worker goroutines")
		truncate   = fs.Bool("truncate", false, "give every worker height/threads rows and leave the remainder black")
	)
	var o options
	fs.StringVar(&o.surface, "surface", "window", "presentation surface, one of: "+strings.Join(surfaceNames(), ", "))
	fs.StringVar(&o.addr, "addr", ":8080", "listen address of the web surface")
	fs.StringVar(&o.format, "format", "png", "frame encoding of the web surface (png or bmp)")
	fs.IntVar(&o.scale, "scale", 1, "integer display zoom")
	fs.StringVar(&o.title, "title", "mandelbrot", "window or page title")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	r := mandel.CenteredRegion(*rmin, *rmax, *icenter, *width, *height)
	switch {
	case *region != "":
		lm, ok := mandel.Landmark(*region)
		if !ok {
			return options{}, fmt.Errorf("%w: unknown region %q", mandel.ErrInvalidConfig, *region)
		}
		r = lm
	case set["imin"] != set["imax"]:
		return options{}, fmt.Errorf("%w: -imin and -imax must be given together", mandel.ErrInvalidConfig)
	case set["imin"]:
		r.Imin, r.Imax = *imin, *imax
	}

	o.cfg = mandel.Config{
		Viewport: mandel.Viewport{Region: r, Width: *width, Height: *height},
		Budget:   mandel.Budget{Iterations: *iterations, ColorFactor: *factor},
		Threads:  *threads,
		Truncate: *truncate,
	}
	return o, nil
}
