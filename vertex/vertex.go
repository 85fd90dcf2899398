// Package vertex defines the vertex formats models can upload.
package vertex

// Vertex is a fixed size record of float32 components.
//
// Arrangement lists how the components are grouped into shader attributes, in order.
// For example {3, 2} means attribute 0 takes 3 floats and attribute 1 takes the next 2.
// The sum of Arrangement must equal Len. Arrangement and Len must not depend on the
// receiver's value, since they are called on the zero value to describe a layout.
type Vertex interface {
	Len() uint8
	At(i uint8) float32
	Arrangement() []uint8
}

// Stride returns the size in bytes of one vertex of type V
func Stride[V Vertex]() int32 {
	var v V
	return int32(v.Len()) * 4
}
