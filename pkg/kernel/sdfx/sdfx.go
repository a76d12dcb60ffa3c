// Package sdfx meshes terrain fields with the github.com/deadsy/sdfx
// marching cubes renderer. The result is an unshared triangle soup with
// flat face normals, which makes it a reference to check the native march
// package against, and it gives terrains an STL export path.
package sdfx

import (
	"fmt"
	"math"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/strata/pkg/field"
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/march"
)

// Compile-time interface checks.
var (
	_ sdf.SDF3      = (*FieldSDF)(nil)
	_ kernel.Mesher = Mesher{}
)

// FieldSDF presents a field as an sdf.SDF3. Corner weights are blended
// trilinearly and Evaluate returns isolevel - weight, so solid regions
// (weight at or above the isolevel) are negative. World placement matches
// the march package: grid origin at -(n+1)*spacing/2 on every axis.
type FieldSDF struct {
	f        *field.Field
	isolevel float64
	spacing  float64
	min      v3.Vec
}

// NewFieldSDF wraps f at the given isolevel.
func NewFieldSDF(f *field.Field, isolevel float32) *FieldSDF {
	b := f.Bounds()
	s := float64(f.Spacing())
	return &FieldSDF{
		f:        f,
		isolevel: float64(isolevel),
		spacing:  s,
		min: v3.Vec{
			X: -float64(b.Cols+1) * s / 2,
			Y: -float64(b.Layers+1) * s / 2,
			Z: -float64(b.Rows+1) * s / 2,
		},
	}
}

// BoundingBox returns the world-space extent of the grid.
func (s *FieldSDF) BoundingBox() sdf.Box3 {
	b := s.f.Bounds()
	return sdf.Box3{
		Min: s.min,
		Max: v3.Vec{
			X: s.min.X + float64(b.Cols)*s.spacing,
			Y: s.min.Y + float64(b.Layers)*s.spacing,
			Z: s.min.Z + float64(b.Rows)*s.spacing,
		},
	}
}

// Evaluate samples the field at p. Points outside the grid take the value
// of the nearest point on its boundary.
func (s *FieldSDF) Evaluate(p v3.Vec) float64 {
	b := s.f.Bounds()
	x0, x1, tx := split((p.X-s.min.X)/s.spacing, b.Cols)
	y0, y1, ty := split((p.Y-s.min.Y)/s.spacing, b.Layers)
	z0, z1, tz := split((p.Z-s.min.Z)/s.spacing, b.Rows)

	w := func(x, y, z int) float64 { return float64(s.f.Weight(x, y, z)) }
	c00 := lerp(w(x0, y0, z0), w(x1, y0, z0), tx)
	c10 := lerp(w(x0, y1, z0), w(x1, y1, z0), tx)
	c01 := lerp(w(x0, y0, z1), w(x1, y0, z1), tx)
	c11 := lerp(w(x0, y1, z1), w(x1, y1, z1), tx)
	c0 := lerp(c00, c10, ty)
	c1 := lerp(c01, c11, ty)
	return s.isolevel - lerp(c0, c1, tz)
}

// split clamps grid coordinate g to [0, n] and returns the bracketing
// corner indices and the fraction between them.
func split(g float64, n int) (i0, i1 int, t float64) {
	g = math.Max(0, math.Min(g, float64(n)))
	i0 = int(math.Floor(g))
	if i0 >= n {
		i0 = n - 1
	}
	if i0 < 0 {
		return 0, 0, 0
	}
	return i0, i0 + 1, g - float64(i0)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Mesher is a kernel.Mesher backed by sdfx's uniform marching cubes.
type Mesher struct {
	// Cells is the number of renderer cells along the longest axis.
	// Zero uses the field's own resolution.
	Cells int
	// Color is given to every vertex. The zero value means march.DefaultColor.
	Color [3]float32
}

func (m Mesher) cells(f *field.Field) int {
	if m.Cells > 0 {
		return m.Cells
	}
	b := f.Bounds()
	return max(b.Cols, b.Rows, b.Layers)
}

// Mesh implements kernel.Mesher. Fields without cells yield an empty mesh.
func (m Mesher) Mesh(f *field.Field, isolevel float32) *kernel.Mesh {
	b := f.Bounds()
	if b.Cols == 0 || b.Rows == 0 || b.Layers == 0 {
		return &kernel.Mesh{}
	}

	color := m.Color
	if color == [3]float32{} {
		color = march.DefaultColor
	}

	renderer := render.NewMarchingCubesUniform(m.cells(f))
	triangles := render.ToTriangles(NewFieldSDF(f, isolevel), renderer)

	numVerts := len(triangles) * 3
	mesh := &kernel.Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Colors:   make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
	}

	for i, tri := range triangles {
		n := tri.Normal()
		for j := 0; j < 3; j++ {
			v := tri[j]
			mesh.Vertices = append(mesh.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Colors = append(mesh.Colors, color[0], color[1], color[2])
			mesh.Normals = append(mesh.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			mesh.Indices = append(mesh.Indices, uint32(i*3+j))
		}
	}
	return mesh
}

// WriteSTL renders f at isolevel straight to an STL file at path.
// cells has the same meaning as Mesher.Cells.
func WriteSTL(path string, f *field.Field, isolevel float32, cells int) error {
	b := f.Bounds()
	if b.Cols == 0 || b.Rows == 0 || b.Layers == 0 {
		return fmt.Errorf("sdfx: cannot export %dx%dx%d field", b.Cols, b.Layers, b.Rows)
	}
	m := Mesher{Cells: cells}
	render.ToSTL(NewFieldSDF(f, isolevel), path, render.NewMarchingCubesUniform(m.cells(f)))
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("sdfx: STL not written: %w", err)
	}
	return nil
}
