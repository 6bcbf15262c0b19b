package mandel

import "context"

// Renderer computes a complete frame for a configuration.
type Renderer interface {
	Render(cfg Config) (*PixelBuffer, error)
}

// Surface displays a completed frame. Present is called once per frame and
// blocks until the frame has been shown (and, for windows, dismissed).
type Surface interface {
	Present(ctx context.Context, buf *PixelBuffer) error
}
