package buffers

import (
	"github.com/usharplibs/engine/assert"
	"github.com/usharplibs/engine/glapi"
)

// Element represents an element that makes up a buffer (e.g. Vec3 at an offset of 12 bytes)
type Element struct {
	Offset int
	ElementType
}

// ElementType is the type of an element thats makes up a buffer (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4
)

// FloatElementType returns the float element with compCount components (e.g. 3 is Vec3)
func FloatElementType(compCount uint8) ElementType {

	switch compCount {
	case 1:
		return DataTypeFloat32
	case 2:
		return DataTypeVec2
	case 3:
		return DataTypeVec3
	case 4:
		return DataTypeVec4

	default:
		assert.T(false, "Vertex attributes must have 1-4 float components, got %d", compCount)
		return DataTypeUnknown
	}
}

// LayoutFromArrangement turns a vertex arrangement (e.g. {3, 2}) into float elements
func LayoutFromArrangement(arrangement []uint8) []Element {

	layout := make([]Element, len(arrangement))
	for i := 0; i < len(arrangement); i++ {
		layout[i] = Element{ElementType: FloatElementType(arrangement[i])}
	}

	return layout
}

func (dt ElementType) GLType() uint32 {

	switch dt {

	case DataTypeUint32:
		return glapi.UNSIGNED_INT
	case DataTypeInt32:
		return glapi.INT

	case DataTypeFloat32:
		fallthrough
	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		fallthrough
	case DataTypeVec4:
		return glapi.FLOAT

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompSize returns the size in bytes for one component of the type (e.g. for Vec2 its 4)
func (dt ElementType) CompSize() int32 {

	switch dt {

	case DataTypeUint32:
		fallthrough
	case DataTypeFloat32:
		fallthrough
	case DataTypeInt32:
		fallthrough
	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		fallthrough
	case DataTypeVec4:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeUint32:
		fallthrough
	case DataTypeFloat32:
		fallthrough
	case DataTypeInt32:
		return 1

	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompSize() * dt.CompCount()
}

func (dt ElementType) String() string {

	switch dt {

	case DataTypeUint32:
		return "uint32"
	case DataTypeFloat32:
		return "float32"
	case DataTypeInt32:
		return "int32"

	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"

	default:
		return "Unknown"
	}
}
