package mesh

import (
	"errors"
	"testing"
)

func TestQuadLayout(t *testing.T) {
	m := Quad()
	if err := m.Validate(); err != nil {
		t.Fatalf("Quad invalid: %v", err)
	}
	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount = %d, want 4", got)
	}
	if got := m.Stride(); got != 6*4 {
		t.Errorf("Stride = %d, want 24", got)
	}
	if got := m.Offset(0); got != 0 {
		t.Errorf("position offset = %d, want 0", got)
	}
	if got := m.Offset(1); got != 3*4 {
		t.Errorf("colour offset = %d, want 12", got)
	}
	if len(m.Indices) != 6 {
		t.Errorf("len(Indices) = %d, want 6", len(m.Indices))
	}
}

func TestTexturedQuadLayout(t *testing.T) {
	m := TexturedQuad()
	if err := m.Validate(); err != nil {
		t.Fatalf("TexturedQuad invalid: %v", err)
	}
	if got := m.Stride(); got != 8*4 {
		t.Errorf("Stride = %d, want 32", got)
	}
	if got := m.Offset(2); got != 6*4 {
		t.Errorf("uv offset = %d, want 24", got)
	}

	// positions and colours agree with the plain quad
	q := Quad()
	for v := 0; v < 4; v++ {
		for c := 0; c < 6; c++ {
			if q.Vertices[v*6+c] != m.Vertices[v*8+c] {
				t.Fatalf("vertex %d component %d differs", v, c)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		m    Mesh
		want error
	}{
		{
			name: "no attributes",
			m:    Mesh{Vertices: []float32{0, 0, 0}},
			want: ErrNoAttributes,
		},
		{
			name: "ragged vertices",
			m: Mesh{
				Vertices:   []float32{0, 0, 0, 1},
				Attributes: []Attribute{{Location: 0, Size: 3}},
			},
			want: ErrBadVertices,
		},
		{
			name: "index past end",
			m: Mesh{
				Vertices:   []float32{0, 0, 0, 1, 1, 1, 2, 2, 2},
				Indices:    []uint32{0, 1, 3},
				Attributes: []Attribute{{Location: 0, Size: 3}},
			},
			want: ErrBadIndices,
		},
		{
			name: "partial triangle",
			m: Mesh{
				Vertices:   []float32{0, 0, 0, 1, 1, 1, 2, 2, 2},
				Indices:    []uint32{0, 1},
				Attributes: []Attribute{{Location: 0, Size: 3}},
			},
			want: ErrBadIndices,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
