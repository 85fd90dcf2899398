// Package input tracks keyboard, mouse and quit state from SDL events.
//
// Call EventLoopStart once per frame, then pass every event of the frame to HandleEvent.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// button is the state of one key or mouse button. pressed and released only last one frame.
type button struct {
	down     bool
	pressed  bool
	released bool
}

type buttons[K comparable] map[K]button

func (bs buttons[K]) frameStart() {
	for k, b := range bs {
		b.pressed = false
		b.released = false
		bs[k] = b
	}
}

// set records a press or release. Repeats from a held key only refresh down.
func (bs buttons[K]) set(k K, down, repeat bool) {

	b := bs[k]
	if !repeat {
		b.pressed = down && !b.down
		b.released = !down && b.down
	}

	b.down = down
	bs[k] = b
}

var (
	keys      = buttons[sdl.Keycode]{}
	mouseBtns = buttons[uint8]{}

	mouseX, mouseY  int32
	isQuitRequested bool
)

func EventLoopStart() {
	keys.frameStart()
	mouseBtns.frameStart()
	isQuitRequested = false
}

// HandleEvent updates the state from one SDL event. Other event types are ignored.
func HandleEvent(event sdl.Event) {

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		keys.set(e.Keysym.Sym, e.State == sdl.PRESSED, e.Repeat != 0)
	case *sdl.MouseButtonEvent:
		mouseX, mouseY = e.X, e.Y
		mouseBtns.set(e.Button, e.State == sdl.PRESSED, false)
	case *sdl.MouseMotionEvent:
		mouseX, mouseY = e.X, e.Y
	case *sdl.QuitEvent:
		isQuitRequested = true
	}
}

func IsQuitClicked() bool {
	return isQuitRequested
}

// KeyClicked reports whether kc went down this frame
func KeyClicked(kc sdl.Keycode) bool {
	return keys[kc].pressed
}

func KeyDown(kc sdl.Keycode) bool {
	return keys[kc].down
}

// MouseClicked reports whether the button (e.g. sdl.BUTTON_LEFT) went down this frame
func MouseClicked(btn uint8) bool {
	return mouseBtns[btn].pressed
}

// MousePos returns the last known mouse position in window coordinates
func MousePos() (x, y int32) {
	return mouseX, mouseY
}
