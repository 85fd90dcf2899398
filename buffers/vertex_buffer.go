package buffers

import (
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

type VertexBuffer struct {
	Id     uint32
	Stride int32
	layout []Element
	gl     glapi.Context
}

func (vb *VertexBuffer) Bind() {
	vb.gl.BindBuffer(glapi.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	vb.gl.BindBuffer(glapi.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) SetData(values []float32, usage BufUsage) {
	vb.Bind()
	vb.gl.BufferDataFloat32(glapi.ARRAY_BUFFER, values, usage.ToGL())
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

func (vb *VertexBuffer) SetLayout(layout ...Element) {

	vb.Stride = 0
	vb.layout = layout

	for i := 0; i < len(vb.layout); i++ {

		vb.layout[i].Offset = int(vb.Stride)
		vb.Stride += vb.layout[i].Size()
	}
}

// Delete frees the GL buffer. The VertexBuffer must not be used afterwards.
func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	vb.gl.DeleteBuffer(vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(ctx glapi.Context, layout ...Element) VertexBuffer {

	vb := VertexBuffer{gl: ctx}

	vb.Id = ctx.GenBuffer()
	if vb.Id == 0 {
		logging.Error("Failed to create OpenGL buffer")
	}

	vb.SetLayout(layout...)
	return vb
}
