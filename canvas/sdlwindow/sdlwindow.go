//go:build sdl

// Package sdlwindow presents a frame in an SDL2 window. It needs the SDL2
// development libraries and is only built with the "sdl" tag.
package sdlwindow

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"runtime"

	mandel "github.com/marben/parallel_mandel"
	"github.com/veandco/go-sdl2/sdl"
)

// Window implements mandel.Surface.
type Window struct {
	Title string
}

var _ mandel.Surface = (*Window)(nil)

// Present opens a window, blits buf once and waits for the window to be
// closed or ctx to be done.
func (w *Window) Present(ctx context.Context, buf *mandel.PixelBuffer) error {
	// SDL must be driven from one OS thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl.Init: %w", err)
	}
	defer sdl.Quit()

	title := w.Title
	if title == "" {
		title = "mandelbrot"
	}
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(buf.Width()), int32(buf.Height()), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl.CreateWindow: %w", err)
	}
	defer win.Destroy()

	surface, err := win.GetSurface()
	if err != nil {
		return fmt.Errorf("window surface: %w", err)
	}
	draw.Draw(surface, surface.Bounds(), buf.RGBA(), image.Point{}, draw.Src)
	if err := win.UpdateSurface(); err != nil {
		return fmt.Errorf("update surface: %w", err)
	}
	mandel.Logger().Info("showing frame in SDL window", "title", title)

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		default:
		}
		sdl.Delay(50)
	}
}
