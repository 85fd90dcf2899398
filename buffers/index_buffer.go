package buffers

import (
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
)

type IndexBuffer struct {
	Id uint32
	// IndexBufCount is the number of elements in the index buffer. Updated in IndexBuffer.SetData
	IndexBufCount int32
	gl            glapi.Context
}

func (ib *IndexBuffer) Bind() {
	ib.gl.BindBuffer(glapi.ELEMENT_ARRAY_BUFFER, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	ib.gl.BindBuffer(glapi.ELEMENT_ARRAY_BUFFER, 0)
}

func (ib *IndexBuffer) SetData(values []uint32, usage BufUsage) {
	ib.Bind()
	ib.IndexBufCount = int32(len(values))
	ib.gl.BufferDataUint32(glapi.ELEMENT_ARRAY_BUFFER, values, usage.ToGL())
}

func (ib *IndexBuffer) Delete() {

	if ib.Id == 0 {
		return
	}

	ib.gl.DeleteBuffer(ib.Id)
	ib.Id = 0
	ib.IndexBufCount = 0
}

func NewIndexBuffer(ctx glapi.Context) IndexBuffer {

	ib := IndexBuffer{gl: ctx}

	ib.Id = ctx.GenBuffer()
	if ib.Id == 0 {
		logging.Error("Failed to create OpenGL buffer")
	}

	return ib
}
