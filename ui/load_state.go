package ui

import "fmt"

// LoadState is the phase the client is in. GL objects can only be created during LoadStateGL.
type LoadState uint8

const (
	LoadStatePreInit LoadState = iota
	LoadStateInit
	LoadStateGL
	LoadStatePostGL
	LoadStateDone
)

func (s LoadState) String() string {

	switch s {
	case LoadStatePreInit:
		return "PreInit"
	case LoadStateInit:
		return "Init"
	case LoadStateGL:
		return "GL"
	case LoadStatePostGL:
		return "PostGL"
	case LoadStateDone:
		return "Done"
	default:
		return fmt.Sprintf("LoadState(%d)", uint8(s))
	}
}

// LoadStateError is returned when GL setup is attempted outside LoadStateGL.
// Callers are expected to treat it as fatal.
type LoadStateError struct {
	State LoadState
}

func (e *LoadStateError) Error() string {
	return fmt.Sprintf("cannot setup UiElement OpenGL during %s", e.State)
}
