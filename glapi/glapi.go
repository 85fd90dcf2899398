// Package glapi describes the subset of OpenGL 4.1 core the engine talks to.
//
// Everything above this package (buffers, shaders, models, the binder) is written
// against Context instead of calling go-gl directly, so it can run against a real
// driver (see glapi/gogl) or against a recording fake in tests (see glapi/glmock).
//
// A Context is bound to the thread that owns the GL context. None of its methods are
// safe for concurrent use.
package glapi

// Enum values are the ones from the OpenGL registry, named as go-gl names them.
const (
	TRIANGLES = 0x0004

	INT          = 0x1404
	UNSIGNED_INT = 0x1405
	FLOAT        = 0x1406

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893

	STREAM_DRAW  = 0x88E0
	STREAM_READ  = 0x88E1
	STREAM_COPY  = 0x88E2
	STATIC_DRAW  = 0x88E4
	STATIC_READ  = 0x88E5
	STATIC_COPY  = 0x88E6
	DYNAMIC_DRAW = 0x88E8
	DYNAMIC_READ = 0x88E9
	DYNAMIC_COPY = 0x88EA

	FRONT_AND_BACK = 0x0408
	LINE           = 0x1B01
	FILL           = 0x1B02

	CULL_FACE  = 0x0B44
	DEPTH_TEST = 0x0B71
	BLEND      = 0x0BE2

	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	GEOMETRY_SHADER = 0x8DD9

	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000

	NO_ERROR = 0
)

type Context interface {
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target, id uint32)
	BufferDataFloat32(target uint32, data []float32, usage uint32)
	BufferDataUint32(target uint32, data []uint32, usage uint32)

	EnableVertexAttribArray(loc uint32)
	VertexAttribPointer(loc uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	CreateProgram() uint32
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	CreateShader(xtype uint32) uint32
	DeleteShader(id uint32)
	ShaderSource(id uint32, src string)
	CompileShader(id uint32)
	// ShaderCompileStatus reports whether the last compile succeeded, and the info log when it didn't
	ShaderCompileStatus(id uint32) (ok bool, infoLog string)
	AttachShader(program, shader uint32)
	LinkProgram(id uint32)
	ProgramLinkStatus(id uint32) (ok bool, infoLog string)
	GetUniformLocation(program uint32, name string) int32
	ProgramUniform1i(program uint32, loc int32, v int32)
	ProgramUniform1f(program uint32, loc int32, v float32)
	ProgramUniformMatrix4(program uint32, loc int32, m *[4][4]float32)

	PolygonMode(face, mode uint32)
	Enable(capability uint32)
	Disable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	GetError() uint32
}
