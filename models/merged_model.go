package models

import (
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/shaders"
	"github.com/usharplibs/engine/vertex"
)

// vertex5Layout matches the attribute locations in package shaders:
// position is 3 floats at offset 0 and texcoord is 2 floats at offset 12, stride 20
func vertex5Layout() []buffers.Element {

	layout := make([]buffers.Element, 2)
	layout[shaders.PositionLocation] = buffers.Element{ElementType: buffers.DataTypeVec3}
	layout[shaders.TextureLocation] = buffers.Element{ElementType: buffers.DataTypeVec2}
	return layout
}

// mergedModel merges all its meshes into a single VAO+VBO+EBO
type mergedModel struct {
	base
	meshes meshList[vertex.Vertex5]
	vbo    buffers.VertexBuffer
	ibo    buffers.IndexBuffer
	merged meshes.Merged
}

func newMergedModel(ctx glapi.Context, bufferHint buffers.BufUsage) mergedModel {
	return mergedModel{
		base: base{
			gl:           ctx,
			BufferHint:   bufferHint,
			IfBuildEmpty: OnEmptyWarn,
			isDirty:      true,
		},
	}
}

func (m *mergedModel) setupGL() {

	if !m.canSetup(m.meshes.len()) {
		return
	}

	m.wasSetup = true

	m.Vao = buffers.NewVertexArray(m.gl)
	m.vbo = buffers.NewVertexBuffer(m.gl, vertex5Layout()...)
	m.ibo = buffers.NewIndexBuffer(m.gl)

	m.upload()
}

func (m *mergedModel) upload() {

	m.merged = meshes.Merge(m.meshes.meshes)

	m.Vao.Bind()

	m.vbo.SetData(m.merged.Vertices, m.BufferHint)
	m.Vao.DescribeLayout(m.vbo)

	// Bound while the vao is bound so the vao captures it
	m.ibo.SetData(m.merged.Indices, m.BufferHint)
	m.Vao.IndexBuffer = m.ibo

	m.Vao.UnBind()

	m.isDirty = false
}

// Draw issues one indexed triangle draw for all merged meshes. The model must be bound.
func (m *mergedModel) Draw() {
	m.gl.DrawElements(glapi.TRIANGLES, int32(len(m.merged.Indices)), glapi.UNSIGNED_INT, 0)
}

// Free deletes the GPU buffers. A freed model can not be bound again.
func (m *mergedModel) Free() {

	if !m.wasSetup || m.wasFreed {
		return
	}

	m.vbo.Delete()
	m.ibo.Delete()
	m.Vao.IndexBuffer = buffers.IndexBuffer{}
	m.Vao.Delete()

	m.wasFreed = true
}

func (m *mergedModel) MeshCount() int {
	return m.meshes.len()
}

// VertexCache is the merged vertex data of the last upload
func (m *mergedModel) VertexCache() []float32 {
	return m.merged.Vertices
}

// IndexCache is the merged index data of the last upload
func (m *mergedModel) IndexCache() []uint32 {
	return m.merged.Indices
}

// SubMeshes returns where each mesh landed in the caches during the last upload
func (m *mergedModel) SubMeshes() []meshes.SubMesh {
	return m.merged.SubMeshes
}

func (m *mergedModel) VboId() uint32 {
	return m.vbo.Id
}

func (m *mergedModel) EboId() uint32 {
	return m.ibo.Id
}

func (m *mergedModel) warnIfFreed(op string) bool {

	if m.wasFreed {
		logging.Warn("Tried to use a model that was freed", "op", op)
		return true
	}

	return false
}
