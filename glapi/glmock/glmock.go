// Package glmock provides a glapi.Context that records calls instead of talking to a driver.
//
// Handles are handed out sequentially starting at 1, and buffer uploads are stored against
// whichever buffer is bound to the target at the time, mirroring how GL itself behaves.
package glmock

import (
	"github.com/usharplibs/engine/glapi"
)

var _ glapi.Context = &Context{}

type AttribPointer struct {
	Loc        uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr

	// Vbo is the buffer bound to ARRAY_BUFFER when the pointer was described
	Vbo uint32
	Vao uint32
}

type Draw struct {
	Mode   uint32
	Count  int32
	Type   uint32
	Offset uintptr
	Vao    uint32
	Ebo    uint32
}

type Context struct {
	calls map[string]int

	nextId uint32

	BoundVao     uint32
	BoundBuffers map[uint32]uint32
	// ElementBinding is the index buffer each vao has captured, with 0 being the default vao
	ElementBinding map[uint32]uint32

	LiveVaos    map[uint32]bool
	LiveBuffers map[uint32]bool

	FloatData map[uint32][]float32
	UintData  map[uint32][]uint32
	Usage     map[uint32]uint32

	AttribPointers []AttribPointer
	EnabledAttribs map[uint32]bool
	Draws          []Draw

	CurrentProgram uint32
	ShaderSources  map[uint32]string
	ShaderTypes    map[uint32]uint32
	Attached       map[uint32][]uint32
	DeletedShaders []uint32
	Uniforms       map[string]int32
	UniformValues  map[int32]any

	// FailCompile makes every ShaderCompileStatus report failure with InfoLog
	FailCompile bool
	// FailCompileType makes only shaders of this type (e.g. glapi.FRAGMENT_SHADER) fail to compile
	FailCompileType uint32
	FailLink        bool
	InfoLog     string
	// MissingUniforms are reported with location -1
	MissingUniforms map[string]bool

	Capabilities map[uint32]bool
	PolygonModes map[uint32]uint32
	Viewports    [][4]int32
	Clears       []uint32
	Errors       []uint32
}

func New() *Context {
	return &Context{
		calls:           map[string]int{},
		BoundBuffers:    map[uint32]uint32{},
		ElementBinding:  map[uint32]uint32{},
		LiveVaos:        map[uint32]bool{},
		LiveBuffers:     map[uint32]bool{},
		FloatData:       map[uint32][]float32{},
		UintData:        map[uint32][]uint32{},
		Usage:           map[uint32]uint32{},
		EnabledAttribs:  map[uint32]bool{},
		ShaderSources:   map[uint32]string{},
		ShaderTypes:     map[uint32]uint32{},
		Attached:        map[uint32][]uint32{},
		Uniforms:        map[string]int32{},
		UniformValues:   map[int32]any{},
		MissingUniforms: map[string]bool{},
		Capabilities:    map[uint32]bool{},
		PolygonModes:    map[uint32]uint32{},
	}
}

// Count returns how many times the named Context method was called
func (c *Context) Count(method string) int {
	return c.calls[method]
}

// TotalCalls returns the number of calls made to any method
func (c *Context) TotalCalls() int {
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}

// ResetCounts zeroes call counts while keeping the recorded GL state
func (c *Context) ResetCounts() {
	c.calls = map[string]int{}
}

func (c *Context) record(method string) {
	c.calls[method]++
}

func (c *Context) newId() uint32 {
	c.nextId++
	return c.nextId
}

func (c *Context) GenVertexArray() uint32 {
	c.record("GenVertexArray")
	id := c.newId()
	c.LiveVaos[id] = true
	return id
}

func (c *Context) DeleteVertexArray(id uint32) {
	c.record("DeleteVertexArray")
	delete(c.LiveVaos, id)
	if c.BoundVao == id {
		c.BoundVao = 0
	}
}

func (c *Context) BindVertexArray(id uint32) {
	c.record("BindVertexArray")
	c.BoundVao = id
	c.BoundBuffers[glapi.ELEMENT_ARRAY_BUFFER] = c.ElementBinding[id]
}

func (c *Context) GenBuffer() uint32 {
	c.record("GenBuffer")
	id := c.newId()
	c.LiveBuffers[id] = true
	return id
}

func (c *Context) DeleteBuffer(id uint32) {
	c.record("DeleteBuffer")
	delete(c.LiveBuffers, id)
	delete(c.FloatData, id)
	delete(c.UintData, id)
	for target, bound := range c.BoundBuffers {
		if bound == id {
			c.BoundBuffers[target] = 0
		}
	}
	for vao, bound := range c.ElementBinding {
		if bound == id {
			c.ElementBinding[vao] = 0
		}
	}
}

func (c *Context) BindBuffer(target, id uint32) {
	c.record("BindBuffer")
	c.BoundBuffers[target] = id
	if target == glapi.ELEMENT_ARRAY_BUFFER {
		c.ElementBinding[c.BoundVao] = id
	}
}

func (c *Context) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	c.record("BufferData")
	id := c.BoundBuffers[target]
	c.FloatData[id] = append([]float32(nil), data...)
	c.Usage[id] = usage
}

func (c *Context) BufferDataUint32(target uint32, data []uint32, usage uint32) {
	c.record("BufferData")
	id := c.BoundBuffers[target]
	c.UintData[id] = append([]uint32(nil), data...)
	c.Usage[id] = usage
}

func (c *Context) EnableVertexAttribArray(loc uint32) {
	c.record("EnableVertexAttribArray")
	c.EnabledAttribs[loc] = true
}

func (c *Context) VertexAttribPointer(loc uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	c.record("VertexAttribPointer")
	c.AttribPointers = append(c.AttribPointers, AttribPointer{
		Loc:        loc,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
		Vbo:        c.BoundBuffers[glapi.ARRAY_BUFFER],
		Vao:        c.BoundVao,
	})
}

func (c *Context) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	c.record("DrawElements")
	c.Draws = append(c.Draws, Draw{
		Mode:   mode,
		Count:  count,
		Type:   xtype,
		Offset: offset,
		Vao:    c.BoundVao,
		Ebo:    c.BoundBuffers[glapi.ELEMENT_ARRAY_BUFFER],
	})
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram")
	return c.newId()
}

func (c *Context) DeleteProgram(id uint32) {
	c.record("DeleteProgram")
}

func (c *Context) UseProgram(id uint32) {
	c.record("UseProgram")
	c.CurrentProgram = id
}

func (c *Context) CreateShader(xtype uint32) uint32 {
	c.record("CreateShader")
	id := c.newId()
	c.ShaderTypes[id] = xtype
	return id
}

func (c *Context) DeleteShader(id uint32) {
	c.record("DeleteShader")
	c.DeletedShaders = append(c.DeletedShaders, id)
}

func (c *Context) ShaderSource(id uint32, src string) {
	c.record("ShaderSource")
	c.ShaderSources[id] = src
}

func (c *Context) CompileShader(id uint32) {
	c.record("CompileShader")
}

func (c *Context) ShaderCompileStatus(id uint32) (bool, string) {
	c.record("ShaderCompileStatus")
	if c.FailCompile || (c.FailCompileType != 0 && c.ShaderTypes[id] == c.FailCompileType) {
		return false, c.InfoLog
	}
	return true, ""
}

func (c *Context) AttachShader(program, shader uint32) {
	c.record("AttachShader")
	c.Attached[program] = append(c.Attached[program], shader)
}

func (c *Context) LinkProgram(id uint32) {
	c.record("LinkProgram")
}

func (c *Context) ProgramLinkStatus(id uint32) (bool, string) {
	c.record("ProgramLinkStatus")
	if c.FailLink {
		return false, c.InfoLog
	}
	return true, ""
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.record("GetUniformLocation")

	if c.MissingUniforms[name] {
		return -1
	}

	loc, ok := c.Uniforms[name]
	if !ok {
		loc = int32(len(c.Uniforms))
		c.Uniforms[name] = loc
	}

	return loc
}

func (c *Context) ProgramUniform1i(program uint32, loc int32, v int32) {
	c.record("ProgramUniform1i")
	c.UniformValues[loc] = v
}

func (c *Context) ProgramUniform1f(program uint32, loc int32, v float32) {
	c.record("ProgramUniform1f")
	c.UniformValues[loc] = v
}

func (c *Context) ProgramUniformMatrix4(program uint32, loc int32, m *[4][4]float32) {
	c.record("ProgramUniformMatrix4")
	c.UniformValues[loc] = *m
}

func (c *Context) PolygonMode(face, mode uint32) {
	c.record("PolygonMode")
	c.PolygonModes[face] = mode
}

func (c *Context) Enable(capability uint32) {
	c.record("Enable")
	c.Capabilities[capability] = true
}

func (c *Context) Disable(capability uint32) {
	c.record("Disable")
	c.Capabilities[capability] = false
}

func (c *Context) BlendFunc(sfactor, dfactor uint32) {
	c.record("BlendFunc")
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport")
	c.Viewports = append(c.Viewports, [4]int32{x, y, width, height})
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor")
}

func (c *Context) Clear(mask uint32) {
	c.record("Clear")
	c.Clears = append(c.Clears, mask)
}

// GetError pops queued errors in order, and returns NO_ERROR once they run out
func (c *Context) GetError() uint32 {
	c.record("GetError")
	if len(c.Errors) == 0 {
		return glapi.NO_ERROR
	}

	e := c.Errors[0]
	c.Errors = c.Errors[1:]
	return e
}
