package models

import (
	"github.com/usharplibs/engine/assert"
	"github.com/usharplibs/engine/buffers"
	"github.com/usharplibs/engine/glapi"
	"github.com/usharplibs/engine/logging"
	"github.com/usharplibs/engine/meshes"
	"github.com/usharplibs/engine/vertex"
)

// BufferData is the GPU side of one mesh of a MutableModel
type BufferData struct {
	Vbo   buffers.VertexBuffer
	Ebo   buffers.IndexBuffer
	Count int32
}

// MutableModel keeps one VBO/EBO pair per mesh. The attribute layout comes from V.Arrangement.
type MutableModel[V vertex.Vertex] struct {
	base
	buildMesh meshList[V]
	builtMesh []BufferData
}

func NewMutableModel[V vertex.Vertex](ctx glapi.Context, bufferHint buffers.BufUsage) *MutableModel[V] {
	return &MutableModel[V]{
		base: base{
			gl:           ctx,
			BufferHint:   bufferHint,
			IfBuildEmpty: OnEmptySilentlyFail,
		},
	}
}

func (m *MutableModel[V]) AddMesh(ms ...meshes.Mesh[V]) {
	if m.buildMesh.add(ms...) {
		m.isDirty = true
	}
}

func (m *MutableModel[V]) Clear() {
	m.buildMesh.clear()
	m.isDirty = true
}

func (m *MutableModel[V]) MeshCount() int {
	return m.buildMesh.len()
}

// BuiltMesh returns the buffers made by the last Build, one per mesh in order
func (m *MutableModel[V]) BuiltMesh() []BufferData {
	return m.builtMesh
}

func (m *MutableModel[V]) IsBuildMeshEmpty() bool {
	return m.buildMesh.len() == 0
}

func (m *MutableModel[V]) IsDrawDataEmpty() bool {
	return len(m.builtMesh) == 0
}

func (m *MutableModel[V]) CanBuild() bool {
	return m.isDirty
}

func (m *MutableModel[V]) Setup() {

	if !m.canSetup(m.buildMesh.len()) {
		return
	}

	m.wasSetup = true
	m.Vao = buffers.NewVertexArray(m.gl)
	m.Build()
}

// Build throws away every buffer from the previous build and uploads each mesh into a
// fresh VBO/EBO pair. It does nothing if no mesh changed since the last build.
//
// Like DynamicModel.RefreshModelData it leaves vao 0 bound, so a glh.Binder in use must be
// told with InvalidateModel.
func (m *MutableModel[V]) Build() {

	if !m.CanBuild() {
		return
	}

	if m.wasFreed || !m.wasSetup {
		logging.Warn("Tried to build a model that is not setup or was freed!")
		return
	}

	m.isDirty = false
	m.deleteBuilt()

	var v V
	for i := 0; i < len(m.buildMesh.meshes); i++ {

		mesh := &m.buildMesh.meshes[i]

		vbo := buffers.NewVertexBuffer(m.gl, buffers.LayoutFromArrangement(v.Arrangement())...)
		assert.T(vbo.Stride == vertex.Stride[V](), "Vertex arrangement %v does not add up to %d floats", v.Arrangement(), v.Len())
		ebo := buffers.NewIndexBuffer(m.gl)

		m.Vao.Bind()
		vbo.SetData(mesh.CollectVertices(), m.BufferHint)
		m.Vao.DescribeLayout(vbo)
		ebo.SetData(mesh.Indices, m.BufferHint)

		m.builtMesh = append(m.builtMesh, BufferData{Vbo: vbo, Ebo: ebo, Count: int32(len(mesh.Indices))})
	}

	m.Vao.UnBind()
}

func (m *MutableModel[V]) deleteBuilt() {

	for i := 0; i < len(m.builtMesh); i++ {
		m.builtMesh[i].Vbo.Delete()
		m.builtMesh[i].Ebo.Delete()
	}

	m.builtMesh = m.builtMesh[:0]
}

// Draw issues one indexed draw per mesh, pointing the vao at each mesh's buffers in turn.
// The model must be bound.
func (m *MutableModel[V]) Draw() {

	for i := 0; i < len(m.builtMesh); i++ {

		bd := &m.builtMesh[i]
		m.Vao.DescribeLayout(bd.Vbo)
		bd.Ebo.Bind()
		m.gl.DrawElements(glapi.TRIANGLES, bd.Count, glapi.UNSIGNED_INT, 0)
	}
}

func (m *MutableModel[V]) Free() {

	if !m.wasSetup || m.wasFreed {
		return
	}

	m.deleteBuilt()
	m.Vao.Delete()
	m.wasFreed = true
}
