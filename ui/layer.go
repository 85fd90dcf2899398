package ui

import (
	"cmp"
	"slices"

	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/glh"
	"github.com/usharplibs/engine/shaders"
)

// Layer is an ordered set of elements that are setup and rendered together
type Layer struct {
	elements []Renderer
}

func (l *Layer) Add(r ...Renderer) {
	l.elements = append(l.elements, r...)
}

func (l *Layer) Len() int {
	return len(l.elements)
}

// Attach adds r to the layer at any point of the load.
// Before LoadStateGL it is queued for SetupGL, during LoadStateGL it is setup right away,
// and after that it can never be setup so it is refused with a *LoadStateError.
func (l *Layer) Attach(state LoadState, ctx glapi.Context, r Renderer) error {

	if state >= LoadStateGL {
		if err := SetupGL(state, ctx, r); err != nil {
			return err
		}
	}

	l.Add(r)
	return nil
}

// Hit returns the enabled element on top at the point, or nil.
// The highest Z wins, and on equal Z the one rendered last wins.
func (l *Layer) Hit(px, py int32) Renderer {

	var top Renderer
	for i := 0; i < len(l.elements); i++ {

		r := l.elements[i]
		e := r.Elem()
		if !e.IsEnabled || !e.Contains(px, py) {
			continue
		}

		if top == nil || e.Z >= top.Elem().Z {
			top = r
		}
	}

	return top
}

// SetupGL sets up every element, stopping at the first error
func (l *Layer) SetupGL(state LoadState, ctx glapi.Context) error {

	for i := 0; i < len(l.elements); i++ {
		if err := SetupGL(state, ctx, l.elements[i]); err != nil {
			return err
		}
	}

	return nil
}

// Render draws enabled elements back to front (lowest Z first). Elements with the same Z keep insertion order.
func (l *Layer) Render(b *glh.Binder, shader *shaders.Shader, time float64) {

	slices.SortStableFunc(l.elements, func(x, y Renderer) int {
		return cmp.Compare(x.Elem().Z, y.Elem().Z)
	})

	for i := 0; i < len(l.elements); i++ {

		r := l.elements[i]
		if !r.Elem().IsEnabled {
			continue
		}

		r.Render(b, shader, time)
	}
}
