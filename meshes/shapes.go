package meshes

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/usharplibs/engine/assert"
	"github.com/usharplibs/engine/vertex"
)

// NewVertex5Mesh pairs positions with uvs one to one
func NewVertex5Mesh(name string, positions []gglm.Vec3, uvs []gglm.Vec2, indices []uint32) Mesh[vertex.Vertex5] {

	assert.T(len(positions) == len(uvs), "Mesh '%s' has %d positions but %d uvs", name, len(positions), len(uvs))

	verts := make([]vertex.Vertex5, len(positions))
	for i := 0; i < len(positions); i++ {
		verts[i] = vertex.NewVertex5FromVecs(&positions[i], &uvs[i])
	}

	return NewMesh(name, verts, indices)
}

// NewQuad returns a quad on the XY plane centered on center, wound counter clockwise
func NewQuad(name string, center gglm.Vec3, width, height float32) Mesh[vertex.Vertex5] {

	hw := width / 2
	hh := height / 2
	x, y, z := center.X(), center.Y(), center.Z()

	positions := []gglm.Vec3{
		gglm.NewVec3(x-hw, y-hh, z),
		gglm.NewVec3(x+hw, y-hh, z),
		gglm.NewVec3(x+hw, y+hh, z),
		gglm.NewVec3(x-hw, y+hh, z),
	}

	uvs := []gglm.Vec2{
		{Data: [2]float32{0, 0}},
		{Data: [2]float32{1, 0}},
		{Data: [2]float32{1, 1}},
		{Data: [2]float32{0, 1}},
	}

	return NewVertex5Mesh(name, positions, uvs, []uint32{0, 1, 2, 2, 3, 0})
}

// NewTriangle returns a single counter clockwise triangle from a, b, c
func NewTriangle(name string, a, b, c gglm.Vec3) Mesh[vertex.Vertex5] {

	uvs := []gglm.Vec2{
		{Data: [2]float32{0, 0}},
		{Data: [2]float32{1, 0}},
		{Data: [2]float32{0.5, 1}},
	}

	return NewVertex5Mesh(name, []gglm.Vec3{a, b, c}, uvs, []uint32{0, 1, 2})
}
