//go:build sdl

package main

import (
	mandel "github.com/marben/parallel_mandel"
	"github.com/marben/parallel_mandel/canvas/sdlwindow"
)

func init() {
	surfaces["sdl"] = func(o options) (mandel.Surface, error) {
		return &sdlwindow.Window{Title: o.title}, nil
	}
}
