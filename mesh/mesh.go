package mesh

import (
	"errors"
	"fmt"
)

const floatSize = 4

// Attribute describes one float vector attribute inside an interleaved vertex.
type Attribute struct {
	Location uint32
	Size     int32 // number of float components
}

// Mesh is interleaved vertex data with an index list drawn as triangles.
type Mesh struct {
	Vertices   []float32
	Indices    []uint32
	Attributes []Attribute
}

var (
	ErrNoAttributes = errors.New("mesh has no attributes")
	ErrBadVertices  = errors.New("vertex data does not match attribute layout")
	ErrBadIndices   = errors.New("index out of range")
)

// Components is the number of floats per vertex.
func (m *Mesh) Components() int {
	n := 0
	for _, a := range m.Attributes {
		n += int(a.Size)
	}
	return n
}

// Stride is the size of one vertex in bytes.
func (m *Mesh) Stride() int32 {
	return int32(m.Components() * floatSize)
}

// Offset returns the byte offset of attribute i inside a vertex.
func (m *Mesh) Offset(i int) int {
	off := 0
	for _, a := range m.Attributes[:i] {
		off += int(a.Size)
	}
	return off * floatSize
}

func (m *Mesh) VertexCount() int {
	c := m.Components()
	if c == 0 {
		return 0
	}
	return len(m.Vertices) / c
}

func (m *Mesh) Validate() error {
	c := m.Components()
	if c == 0 {
		return ErrNoAttributes
	}
	if len(m.Vertices) == 0 || len(m.Vertices)%c != 0 {
		return fmt.Errorf("%w: %d floats, %d per vertex", ErrBadVertices, len(m.Vertices), c)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrBadIndices, len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: indices[%d] = %d, %d vertices", ErrBadIndices, i, idx, n)
		}
	}
	return nil
}

// Quad is a coloured rectangle built from two triangles: position (location 0)
// and colour (location 1).
func Quad() *Mesh {
	return &Mesh{
		Vertices: []float32{
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0,   // top right
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0,  // bottom right
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, // bottom left
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0,  // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		Attributes: []Attribute{
			{Location: 0, Size: 3},
			{Location: 1, Size: 3},
		},
	}
}

// TexturedQuad is Quad with texture coordinates at location 2.
func TexturedQuad() *Mesh {
	return &Mesh{
		Vertices: []float32{
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		Attributes: []Attribute{
			{Location: 0, Size: 3},
			{Location: 1, Size: 3},
			{Location: 2, Size: 2},
		},
	}
}
