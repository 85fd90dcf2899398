package shaders

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

// Attribute locations every engine shader declares for Vertex5 data
const (
	PositionLocation = 0
	TextureLocation  = 1
)

// Shader is a linked program ready to be bound through glh.Binder.
// A Handle of 0 means the shader was never loaded or was deleted.
type Shader struct {
	Name   string
	Handle uint32
	Access *Access
}

func NewShader(ctx glapi.Context, name string, combinedSrc []byte) (*Shader, error) {

	prog, err := LoadAndCompileCombinedShaderSrc(ctx, combinedSrc)
	if err != nil {
		return nil, err
	}

	return &Shader{
		Name:   name,
		Handle: prog.Id,
		Access: newAccess(ctx, prog.Id),
	}, nil
}

func (s *Shader) Delete(ctx glapi.Context) {

	if s.Handle == 0 {
		return
	}

	ctx.DeleteProgram(s.Handle)
	s.Handle = 0
	s.Access.program = 0
}

// Access sets uniforms on one program. Locations are looked up once and cached.
type Access struct {
	gl       glapi.Context
	program  uint32
	unifLocs map[string]int32
}

func newAccess(ctx glapi.Context, program uint32) *Access {
	return &Access{
		gl:       ctx,
		program:  program,
		unifLocs: map[string]int32{},
	}
}

func (a *Access) Program() uint32 {
	return a.program
}

// GetUnifLoc returns the uniform location, or -1 with a warning if the program has no such uniform
func (a *Access) GetUnifLoc(uniformName string) int32 {

	loc, ok := a.unifLocs[uniformName]
	if ok {
		return loc
	}

	loc = a.gl.GetUniformLocation(a.program, uniformName)
	if loc == -1 {
		logging.Warn("Uniform doesn't exist on shader program", "uniform", uniformName, "programId", a.program)
	}

	a.unifLocs[uniformName] = loc
	return loc
}

func (a *Access) SetInt32(uniformName string, val int32) {
	if loc := a.GetUnifLoc(uniformName); loc != -1 {
		a.gl.ProgramUniform1i(a.program, loc, val)
	}
}

func (a *Access) SetFloat32(uniformName string, val float32) {
	if loc := a.GetUnifLoc(uniformName); loc != -1 {
		a.gl.ProgramUniform1f(a.program, loc, val)
	}
}

func (a *Access) SetMat4(uniformName string, mat4 *gglm.Mat4) {
	if loc := a.GetUnifLoc(uniformName); loc != -1 {
		a.gl.ProgramUniformMatrix4(a.program, loc, &mat4.Data)
	}
}
