// Package window presents a frame in a native window.
package window

import (
	"context"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	mandel "github.com/marben/parallel_mandel"
)

// Window implements mandel.Surface. Present blocks until the window is
// closed or ctx is done.
type Window struct {
	Title string
	Scale int // window size multiplier; the frame is stretched to fit
}

var _ mandel.Surface = (*Window)(nil)

func (w *Window) Present(ctx context.Context, buf *mandel.PixelBuffer) error {
	scale := max(w.Scale, 1)
	title := w.Title
	if title == "" {
		title = "mandelbrot"
	}

	ebiten.SetWindowSize(buf.Width()*scale, buf.Height()*scale)
	ebiten.SetWindowTitle(title)
	// the frame never changes, so there is no need to tick faster than input polling
	ebiten.SetTPS(10)

	mandel.Logger().Info("showing frame in window", "title", title)
	if err := ebiten.RunGame(newFrame(ctx, buf.RGBA())); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return context.Cause(ctx)
}

// frame implements ebiten.Game for a single still image.
type frame struct {
	ctx context.Context
	src *image.RGBA
	img *ebiten.Image // uploaded on the first Draw
}

func newFrame(ctx context.Context, src *image.RGBA) *frame {
	return &frame{ctx: ctx, src: src}
}

func (f *frame) Update() error {
	select {
	case <-f.ctx.Done():
		return ebiten.Termination
	default:
		return nil
	}
}

func (f *frame) Draw(screen *ebiten.Image) {
	if f.img == nil {
		f.img = ebiten.NewImageFromImage(f.src)
	}
	screen.DrawImage(f.img, nil)
}

func (f *frame) Layout(int, int) (int, int) {
	b := f.src.Bounds()
	return b.Dx(), b.Dy()
}
