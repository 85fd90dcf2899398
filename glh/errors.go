package glh

import (
	"fmt"

	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/shaders"
)

type ShaderErrorReason uint8

const (
	ShaderReasonNoHandle ShaderErrorReason = iota + 1
)

func (r ShaderErrorReason) String() string {
	switch r {
	case ShaderReasonNoHandle:
		return "NoHandle"
	default:
		return "Unknown"
	}
}

type ShaderError struct {
	Shader *shaders.Shader
	Reason ShaderErrorReason
}

func (e ShaderError) Error() string {

	name := "<nil>"
	if e.Shader != nil {
		name = e.Shader.Name
	}

	return fmt.Sprintf("cannot bind shader '%s': %s", name, e.Reason)
}

type ModelErrorReason uint8

const (
	ModelReasonNoVAO ModelErrorReason = iota + 1
	ModelReasonWasFreed
)

func (r ModelErrorReason) String() string {
	switch r {
	case ModelReasonNoVAO:
		return "NoVAO"
	case ModelReasonWasFreed:
		return "WasFreed"
	default:
		return "Unknown"
	}
}

type ModelError struct {
	Reason ModelErrorReason
}

func (e ModelError) Error() string {
	return "cannot bind model: " + e.Reason.String()
}

// LogShaderError is the default ShaderErrorHandler. It logs and lets the binder carry on.
func LogShaderError(err ShaderError) {
	logging.Error("Shader bind failed", "err", err.Error(), "reason", err.Reason)
}

// LogModelError is the default ModelErrorHandler. It logs and lets the binder carry on.
func LogModelError(err ModelError) {
	logging.Error("Model bind failed", "err", err.Error(), "reason", err.Reason)
}
