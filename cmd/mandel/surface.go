package main

import (
	"fmt"
	"sort"

	mandel "github.com/marben/parallel_mandel"
	"github.com/marben/parallel_mandel/canvas"
	"github.com/marben/parallel_mandel/canvas/web"
	"github.com/marben/parallel_mandel/canvas/window"
)

// surfaces builds a presentation surface by name. Build-tagged files add to it.
var surfaces = map[string]func(options) (mandel.Surface, error){
	"window": func(o options) (mandel.Surface, error) {
		return &window.Window{Title: o.title, Scale: o.scale}, nil
	},
	"web": func(o options) (mandel.Surface, error) {
		f, err := canvas.ParseFormat(o.format)
		if err != nil {
			return nil, err
		}
		return &web.Canvas{Addr: o.addr, Title: o.title, Format: f, Scale: o.scale}, nil
	},
}

func surfaceNames() []string {
	names := make([]string, 0, len(surfaces))
	for n := range surfaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newSurface(o options) (mandel.Surface, error) {
	build, ok := surfaces[o.surface]
	if !ok {
		return nil, fmt.Errorf("unknown surface %q, want one of %v", o.surface, surfaceNames())
	}
	return build(o)
}
