package vertex

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
)

var _ Vertex = Vertex5{}

var vertex5Arrangement = [...]uint8{3, 2}

// Vertex5 is a position+uv vertex. The memory layout is exactly 5 packed float32
// values (x,y,z,u,v), 20 bytes with no padding:
//
//	X: 0-4, Y: 4-8, Z: 8-12, U: 12-16, V: 16-20
type Vertex5 struct {
	X float32
	Y float32
	Z float32
	U float32
	V float32
}

func NewVertex5(x, y, z, u, v float32) Vertex5 {
	return Vertex5{X: x, Y: y, Z: z, U: u, V: v}
}

func NewVertex5FromVecs(pos *gglm.Vec3, uv *gglm.Vec2) Vertex5 {
	return Vertex5{
		X: pos.X(),
		Y: pos.Y(),
		Z: pos.Z(),
		U: uv.X(),
		V: uv.Y(),
	}
}

func (v Vertex5) Len() uint8 {
	return 5
}

// Arrangement is {3, 2}: a vec3 position followed by a vec2 texture coordinate
func (v Vertex5) Arrangement() []uint8 {
	return vertex5Arrangement[:]
}

// At returns component i, where 0-2 are x,y,z and 3-4 are u,v. Any other index panics.
func (v Vertex5) At(i uint8) float32 {

	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.U
	case 4:
		return v.V
	default:
		panic(fmt.Sprintf("vertex5 index out of range: %d", i))
	}
}

func (v Vertex5) Pos() gglm.Vec3 {
	return gglm.Vec3{Data: [3]float32{v.X, v.Y, v.Z}}
}

func (v Vertex5) UV() gglm.Vec2 {
	return gglm.Vec2{Data: [2]float32{v.U, v.V}}
}

func (v Vertex5) String() string {
	return fmt.Sprintf("Vertex5(X: %v, Y: %v, Z: %v, U: %v, V: %v)", v.X, v.Y, v.Z, v.U, v.V)
}
