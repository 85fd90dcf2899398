package buffers

import (
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer
	gl          glapi.Context
}

func (va *VertexArray) Bind() {
	va.gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	va.gl.BindVertexArray(0)
}

// AddVertexBuffer binds the vao and vbo, then describes the vbo layout on attribute locations 0..n-1
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer) {
	va.DescribeLayout(vbo)
	va.Vbos = append(va.Vbos, vbo)
}

// DescribeLayout points the attributes of this vao at vbo without keeping track of it.
// Used when one vao is reused to draw several vbos in turn.
func (va *VertexArray) DescribeLayout(vbo VertexBuffer) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]

		va.gl.EnableVertexAttribArray(uint32(i))
		va.gl.VertexAttribPointer(uint32(i), l.ElementType.CompCount(), l.ElementType.GLType(), false, vbo.Stride, uintptr(l.Offset))
	}
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete frees the vao along with the vbos and index buffer attached to it
func (va *VertexArray) Delete() {

	for i := 0; i < len(va.Vbos); i++ {
		va.Vbos[i].Delete()
	}
	va.Vbos = va.Vbos[:0]

	va.IndexBuffer.Delete()

	if va.Id != 0 {
		va.gl.DeleteVertexArray(va.Id)
		va.Id = 0
	}
}

func NewVertexArray(ctx glapi.Context) VertexArray {

	vao := VertexArray{gl: ctx}

	vao.Id = ctx.GenVertexArray()
	if vao.Id == 0 {
		logging.Error("Failed to create OpenGL vertex array object")
	}

	return vao
}
