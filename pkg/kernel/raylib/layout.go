// Package raylib uploads terrain meshes to the GPU through raylib.
//
// The GPU sink needs cgo and a window, so it is only compiled with the
// "raylib" build tag. Without it New() returns an error.
//
// Build with: go build -tags=raylib
package raylib

// MaxIndexedVertices is the largest vertex count raylib can address with
// its 16-bit index buffer.
const MaxIndexedVertices = 1<<16 - 1

// layout is a mesh rearranged for raylib: RGBA8 colors, 16-bit indices,
// or no indices at all when the vertex count does not fit.
type layout struct {
	positions []float32
	normals   []float32
	colors    []uint8
	indices   []uint16
}

func (l *layout) vertexCount() int   { return len(l.positions) / 3 }
func (l *layout) triangleCount() int {
	if l.indices != nil {
		return len(l.indices) / 3
	}
	return l.vertexCount() / 3
}

// buildLayout converts flat kernel buffers. Meshes above
// MaxIndexedVertices are expanded so every triangle owns its vertices.
func buildLayout(positions, colors, normals []float32, indices []uint32) *layout {
	n := len(positions) / 3
	if n <= MaxIndexedVertices {
		l := &layout{
			positions: positions,
			normals:   normals,
			colors:    rgba(colors),
			indices:   make([]uint16, len(indices)),
		}
		for i, idx := range indices {
			l.indices[i] = uint16(idx)
		}
		return l
	}

	l := &layout{
		positions: make([]float32, 0, len(indices)*3),
		normals:   make([]float32, 0, len(indices)*3),
	}
	flat := make([]float32, 0, len(indices)*3)
	for _, idx := range indices {
		i := int(idx) * 3
		l.positions = append(l.positions, positions[i:i+3]...)
		l.normals = append(l.normals, normals[i:i+3]...)
		flat = append(flat, colors[i:i+3]...)
	}
	l.colors = rgba(flat)
	return l
}

// rgba converts [0,1] RGB floats to opaque RGBA bytes.
func rgba(rgb []float32) []uint8 {
	out := make([]uint8, len(rgb)/3*4)
	for i := 0; i < len(rgb)/3; i++ {
		for c := 0; c < 3; c++ {
			out[i*4+c] = channel(rgb[i*3+c])
		}
		out[i*4+3] = 255
	}
	return out
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
