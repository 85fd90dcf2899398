package meshes

import (
	"github.com/usharplibs/engine/assert"
	"github.com/usharplibs/engine/vertex"
)

// SubMesh is where one source mesh ended up after merging
type SubMesh struct {
	// Index of the first vertex of this mesh in the merged vertex list
	BaseVertex int32
	// Which index (in the merged index list) this mesh starts from
	BaseIndex uint32
	// How many indices in this submesh
	IndexCount int32
	// Offset added to every index of this mesh
	IndexOffset uint32
}

// Mesh is a batch of vertices plus indices that are local to the mesh.
// Models treat the slices as read only once the mesh is added.
type Mesh[V vertex.Vertex] struct {
	Name     string
	Vertices []V
	Indices  []uint32
}

func NewMesh[V vertex.Vertex](name string, vertices []V, indices []uint32) Mesh[V] {
	return Mesh[V]{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// CollectVertices flattens the vertices into their float components, in order
func (m *Mesh[V]) CollectVertices() []float32 {

	if len(m.Vertices) == 0 {
		return []float32{}
	}

	compCount := int(m.Vertices[0].Len())
	out := make([]float32, 0, len(m.Vertices)*compCount)
	for i := 0; i < len(m.Vertices); i++ {

		v := m.Vertices[i]
		for c := uint8(0); c < v.Len(); c++ {
			out = append(out, v.At(c))
		}
	}

	return out
}

// HighestIndex returns the largest index of the mesh, and false if it has no indices
func (m *Mesh[V]) HighestIndex() (uint32, bool) {

	if len(m.Indices) == 0 {
		return 0, false
	}

	var highest uint32
	for _, i := range m.Indices {
		if i > highest {
			highest = i
		}
	}

	return highest, true
}

// Merged is the flat form of several meshes, ready for a single VBO+EBO upload
type Merged struct {
	Vertices    []float32
	Indices     []uint32
	VertexCount int
	SubMeshes   []SubMesh
}

// Merge concatenates the meshes in order.
//
// Each mesh's indices are offset by the highest merged index so far plus one,
// so indices of different meshes never overlap. Meshes without indices
// contribute vertices but do not move the offset.
func Merge[V vertex.Vertex](meshes []Mesh[V]) Merged {

	vertCount := 0
	indexCount := 0
	compCount := 0
	for i := 0; i < len(meshes); i++ {
		vertCount += len(meshes[i].Vertices)
		indexCount += len(meshes[i].Indices)
	}

	if vertCount > 0 {
		var v V
		compCount = int(v.Len())
	}

	merged := Merged{
		Vertices:  make([]float32, 0, vertCount*compCount),
		Indices:   make([]uint32, 0, indexCount),
		SubMeshes: make([]SubMesh, 0, len(meshes)),
	}

	var indexOffset uint32
	for i := 0; i < len(meshes); i++ {

		m := &meshes[i]
		merged.SubMeshes = append(merged.SubMeshes, SubMesh{
			BaseVertex:  int32(merged.VertexCount),
			BaseIndex:   uint32(len(merged.Indices)),
			IndexCount:  int32(len(m.Indices)),
			IndexOffset: indexOffset,
		})

		merged.Vertices = append(merged.Vertices, m.CollectVertices()...)
		merged.VertexCount += len(m.Vertices)

		for _, idx := range m.Indices {
			merged.Indices = append(merged.Indices, idx+indexOffset)
		}

		if highest, ok := m.HighestIndex(); ok {
			indexOffset += highest + 1
		}
	}

	assert.T(len(merged.Vertices) == merged.VertexCount*compCount, "Merged vertex data has %d floats but expected %d", len(merged.Vertices), merged.VertexCount*compCount)
	return merged
}
