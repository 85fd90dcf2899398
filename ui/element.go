// Package ui has the base for positioned UI rectangles and the gate that controls when they touch GL.
package ui

import (
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/glh"
	"github.com/usharplibs/engine/shaders"
)

// Element is a positioned rectangle. Concrete elements embed it and implement Renderer.
type Element struct {
	X      int16
	Y      int16
	Z      int16
	Width  uint16
	Height uint16

	IsEnabled bool
}

func NewElement(x, y, z int16, width, height uint16) Element {
	return Element{
		X:         x,
		Y:         y,
		Z:         z,
		Width:     width,
		Height:    height,
		IsEnabled: true,
	}
}

func (e *Element) Elem() *Element {
	return e
}

// Contains reports whether the point is inside the rectangle. The right and bottom edges are exclusive.
func (e *Element) Contains(px, py int32) bool {
	return px >= int32(e.X) && px < int32(e.X)+int32(e.Width) &&
		py >= int32(e.Y) && py < int32(e.Y)+int32(e.Height)
}

// Renderer is what every concrete element implements
type Renderer interface {
	Elem() *Element
	// SetupGL creates the GL objects of the element. Only called through SetupGL during LoadStateGL.
	SetupGL(ctx glapi.Context)
	Render(b *glh.Binder, shader *shaders.Shader, time float64)
}

// SetupGL runs r.SetupGL if the client is in LoadStateGL, and returns a *LoadStateError otherwise
func SetupGL(state LoadState, ctx glapi.Context, r Renderer) error {

	if state != LoadStateGL {
		return &LoadStateError{State: state}
	}

	r.SetupGL(ctx)
	return nil
}
