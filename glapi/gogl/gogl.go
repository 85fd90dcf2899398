// Package gogl implements glapi.Context on top of go-gl's OpenGL 4.1 core bindings.
package gogl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

var _ glapi.Context = &Context{}

// Context forwards every call to the GL context current on the calling thread.
// gl.Init must have succeeded (see Init) before any method is used.
type Context struct{}

func Init() (*Context, error) {

	if err := gl.Init(); err != nil {
		return nil, err
	}

	logging.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return &Context{}, nil
}

func (c *Context) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (c *Context) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (c *Context) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (c *Context) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (c *Context) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (c *Context) BindBuffer(target, id uint32) {
	gl.BindBuffer(target, id)
}

func (c *Context) BufferDataFloat32(target uint32, data []float32, usage uint32) {

	if len(data) == 0 {
		gl.BufferData(target, 0, gl.Ptr(nil), usage)
		return
	}

	gl.BufferData(target, len(data)*4, gl.Ptr(&data[0]), usage)
}

func (c *Context) BufferDataUint32(target uint32, data []uint32, usage uint32) {

	if len(data) == 0 {
		gl.BufferData(target, 0, gl.Ptr(nil), usage)
		return
	}

	gl.BufferData(target, len(data)*4, gl.Ptr(&data[0]), usage)
}

func (c *Context) EnableVertexAttribArray(loc uint32) {
	gl.EnableVertexAttribArray(loc)
}

func (c *Context) VertexAttribPointer(loc uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(loc, size, xtype, normalized, stride, offset)
}

func (c *Context) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (c *Context) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (c *Context) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (c *Context) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (c *Context) ShaderSource(id uint32, src string) {
	cStr, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(id, 1, cStr, nil)
}

func (c *Context) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (c *Context) ShaderCompileStatus(id uint32) (bool, string) {

	var compiledSuccessfully int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetShaderInfoLog(id, logLength, nil, log)
	return false, gl.GoStr(log)
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) LinkProgram(id uint32) {
	gl.LinkProgram(id)
}

func (c *Context) ProgramLinkStatus(id uint32) (bool, string) {

	var linkedSuccessfully int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetProgramInfoLog(id, logLength, nil, log)
	return false, gl.GoStr(log)
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) ProgramUniform1i(program uint32, loc int32, v int32) {
	gl.ProgramUniform1i(program, loc, v)
}

func (c *Context) ProgramUniform1f(program uint32, loc int32, v float32) {
	gl.ProgramUniform1f(program, loc, v)
}

func (c *Context) ProgramUniformMatrix4(program uint32, loc int32, m *[4][4]float32) {
	gl.ProgramUniformMatrix4fv(program, loc, 1, false, &m[0][0])
}

func (c *Context) PolygonMode(face, mode uint32) {
	gl.PolygonMode(face, mode)
}

func (c *Context) Enable(capability uint32) {
	gl.Enable(capability)
}

func (c *Context) Disable(capability uint32) {
	gl.Disable(capability)
}

func (c *Context) BlendFunc(sfactor, dfactor uint32) {
	gl.BlendFunc(sfactor, dfactor)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (c *Context) GetError() uint32 {
	return gl.GetError()
}
