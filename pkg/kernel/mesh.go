package kernel

import (
	"errors"
	"fmt"
)

// ErrInconsistent is returned when a mesh's buffers disagree on vertex count
// or an index points past the last vertex.
var ErrInconsistent = errors.New("inconsistent mesh buffers")

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices, colors and normals have 3 floats per vertex,
// indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Colors   []float32 `json:"colors"`   // [r0,g0,b0, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...] not unit length
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Validate checks that all per-vertex buffers describe the same number of
// vertices, that indices form whole triangles and that every index is in
// range.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("%w: %d position floats", ErrInconsistent, len(m.Vertices))
	}
	if len(m.Colors) != len(m.Vertices) {
		return fmt.Errorf("%w: %d color floats for %d vertices", ErrInconsistent, len(m.Colors), m.VertexCount())
	}
	if len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("%w: %d normal floats for %d vertices", ErrInconsistent, len(m.Normals), m.VertexCount())
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInconsistent, len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d = %d, only %d vertices", ErrInconsistent, i, idx, n)
		}
	}
	return nil
}

// Clone returns a deep copy so the caller can hand buffers to a consumer
// without sharing backing arrays.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]float32(nil), m.Vertices...),
		Colors:   append([]float32(nil), m.Colors...),
		Normals:  append([]float32(nil), m.Normals...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}
