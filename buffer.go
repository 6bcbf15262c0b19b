package mandel

import (
	"fmt"
	"image"
)

// PixelBuffer is a row-major Width x Height grid of RGB triples.
// Every pixel is gray: the three channels always carry the same intensity.
type PixelBuffer struct {
	width, height int
	pix           []uint8 // 3 bytes per pixel
}

// NewPixelBuffer allocates a black buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the width of the buffer in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// Pix returns the raw RGB data. Callers must not modify it.
func (b *PixelBuffer) Pix() []uint8 { return b.pix }

// SetRow writes one scanline, replicating each intensity across all three
// channels.
func (b *PixelBuffer) SetRow(y int, row []uint8) error {
	if y < 0 || y >= b.height {
		return fmt.Errorf("row %d out of range [0,%d)", y, b.height)
	}
	if len(row) != b.width {
		return fmt.Errorf("row %d has %d pixels, want %d", y, len(row), b.width)
	}
	off := y * b.width * 3
	for x, g := range row {
		i := off + x*3
		b.pix[i+0] = g
		b.pix[i+1] = g
		b.pix[i+2] = g
	}
	return nil
}

// Gray returns the intensity at (x, y).
func (b *PixelBuffer) Gray(x, y int) uint8 {
	return b.pix[(y*b.width+x)*3]
}

// RGBA converts the buffer to an opaque image for presentation.
func (b *PixelBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, j := 0, 0; i < len(b.pix); i, j = i+3, j+4 {
		img.Pix[j+0] = b.pix[i+0]
		img.Pix[j+1] = b.pix[i+1]
		img.Pix[j+2] = b.pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}
