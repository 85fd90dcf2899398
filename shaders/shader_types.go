package shaders

import (
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

type ShaderType int32

func (s ShaderType) ToGl() uint32 {

	switch s {
	case ShaderType_Vertex:
		return glapi.VERTEX_SHADER
	case ShaderType_Fragment:
		return glapi.FRAGMENT_SHADER
	case ShaderType_Geometry:
		return glapi.GEOMETRY_SHADER

	default:
		logging.Fatalf("Unknown shader type '%d'", s)
		return 0
	}
}

func (s ShaderType) String() string {

	switch s {
	case ShaderType_Vertex:
		return "vertex"
	case ShaderType_Fragment:
		return "fragment"
	case ShaderType_Geometry:
		return "geometry"
	default:
		return "unknown"
	}
}

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
	ShaderType_Geometry
)
