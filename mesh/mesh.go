// Package mesh holds the geometry drawn by the boilerplate: a colored quad by
// default, or the faces of a Wavefront OBJ file.
package mesh

import (
	"unsafe"

	"github.com/xlab/linmath"
)

const (
	// Stride is the size in bytes of one interleaved vertex.
	Stride = int32(5 * unsafe.Sizeof(float32(0)))

	// ColorOffset is where the color starts within an interleaved vertex.
	ColorOffset = uintptr(2 * unsafe.Sizeof(float32(0)))
)

// Vertex is a 2D position with an RGB color.
type Vertex struct {
	Pos   linmath.Vec2
	Color linmath.Vec3
}

// Mesh is indexed triangle geometry.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Quad returns a rectangle made of two triangles which share the diagonal
// corners. The corners are red, green, blue and white going clockwise from the
// top left.
func Quad() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Pos: linmath.Vec2{-0.5, 0.5}, Color: linmath.Vec3{1, 0, 0}},
			{Pos: linmath.Vec2{0.5, 0.5}, Color: linmath.Vec3{0, 1, 0}},
			{Pos: linmath.Vec2{0.5, -0.5}, Color: linmath.Vec3{0, 0, 1}},
			{Pos: linmath.Vec2{-0.5, -0.5}, Color: linmath.Vec3{1, 1, 1}},
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

// Interleave lays the vertices out as x, y, r, g, b floats, one vertex after
// the other.
func (m Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*5)
	for _, v := range m.Vertices {
		out = append(out, v.Pos[0], v.Pos[1], v.Color[0], v.Color[1], v.Color[2])
	}
	return out
}
