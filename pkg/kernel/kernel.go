// Package kernel defines the mesh buffers exchanged between surface
// extractors and their consumers. Extractors (march, sdfx) implement Mesher;
// renderers and exporters implement Sink. The abstraction allows swapping
// either side without touching the terrain code.
package kernel

import (
	"github.com/chazu/strata/pkg/field"
)

// Mesher turns a scalar field into a triangle mesh at the given isolevel.
// Implementations must be deterministic for the same field and isolevel.
type Mesher interface {
	Mesh(f *field.Field, isolevel float32) *Mesh
}

// Sink receives the flat buffers of a mesh. All four setters are called with
// consistent vertex counts before the consumer draws.
type Sink interface {
	SetPositions(xyz []float32)
	SetColors(rgb []float32)
	SetNormals(xyz []float32)
	SetIndices(indices []uint32)
}

// Upload validates m and hands its buffers to s, indices last so a sink can
// treat SetIndices as the commit point.
func Upload(s Sink, m *Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.SetPositions(m.Vertices)
	s.SetColors(m.Colors)
	s.SetNormals(m.Normals)
	s.SetIndices(m.Indices)
	return nil
}

// Buffer is an in-memory Sink. It keeps the most recent buffers and counts
// commits, which makes it handy for tests and for headless callers.
type Buffer struct {
	Mesh
	Uploads int
}

// Compile-time interface check.
var _ Sink = (*Buffer)(nil)

func (b *Buffer) SetPositions(xyz []float32) { b.Vertices = xyz }
func (b *Buffer) SetColors(rgb []float32)    { b.Colors = rgb }
func (b *Buffer) SetNormals(xyz []float32)   { b.Normals = xyz }

func (b *Buffer) SetIndices(indices []uint32) {
	b.Indices = indices
	b.Uploads++
}
