package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Buffers holds the GPU objects for one uploaded mesh.
type Buffers struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// Upload copies m into a new vertex array with its vertex and element buffers.
func Upload(m *Mesh) (*Buffers, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	b := &Buffers{count: int32(len(m.Indices))}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*floatSize, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	// the element buffer binding is recorded in the VAO
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := m.Stride()
	for i, a := range m.Attributes {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(m.Offset(i)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b, nil
}

// Draw renders the indexed triangles.
func (b *Buffers) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (b *Buffers) Destroy() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
}
