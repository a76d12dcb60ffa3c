// Package march extracts triangle meshes from scalar fields with the
// marching cubes algorithm.
//
// A corner is below the surface when its weight is less than the isolevel.
// Triangles are wound so that their face normals point from the solid side
// (weights at or above the isolevel) toward the empty side.
package march

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/strata/pkg/field"
	"github.com/chazu/strata/pkg/kernel"
)

// DefaultColor is the earthy brown given to every vertex unless another
// coloring is selected.
var DefaultColor = mgl32.Vec3{0.5, 0.25, 0.1}

// Vertex is one surface point produced by Extract.
type Vertex struct {
	Cell         [3]int // grid cell that created the vertex
	Position     mgl32.Vec3
	Color        mgl32.Vec3
	Normal       mgl32.Vec3 // accumulated, not unit length
	Multiplicity int        // triangles that reference the vertex
}

// Result is the output of one extraction pass.
type Result struct {
	Vertices []Vertex
	Indices  []uint32
}

// ColorFunc picks a vertex color from its position in grid units
// (cell coordinates plus the position along the crossed edge).
type ColorFunc func(grid mgl32.Vec3, b field.Bounds) mgl32.Vec3

// Fixed colors every vertex c.
func Fixed(c mgl32.Vec3) ColorFunc {
	return func(mgl32.Vec3, field.Bounds) mgl32.Vec3 { return c }
}

// HeightGradient blends linearly from low at the bottom layer to high at the
// top layer.
func HeightGradient(low, high mgl32.Vec3) ColorFunc {
	return func(grid mgl32.Vec3, b field.Bounds) mgl32.Vec3 {
		if b.Layers == 0 {
			return low
		}
		h := mgl32.Clamp(grid.Y()/float32(b.Layers), 0, 1)
		return low.Add(high.Sub(low).Mul(h))
	}
}

// Option configures Extract.
type Option func(*options)

type options struct {
	color ColorFunc
}

// WithColor selects how vertices are colored.
func WithColor(fn ColorFunc) Option {
	return func(o *options) { o.color = fn }
}

// Extract walks every cell of f, z outermost and x innermost, and returns
// the triangles where the field crosses isolevel.
//
// Vertices are shared between the triangles of a single cell only; cells
// that touch emit their own copies of a common edge vertex. Each finished
// triangle adds its face normal, divided by the vertex's multiplicity at
// that moment, to all three of its vertices.
func Extract(f *field.Field, isolevel float32, opts ...Option) *Result {
	o := options{color: Fixed(DefaultColor)}
	for _, opt := range opts {
		opt(&o)
	}

	b := f.Bounds()
	spacing := f.Spacing()
	center := mgl32.Vec3{
		-float32(b.Cols+1) * spacing / 2,
		-float32(b.Layers+1) * spacing / 2,
		-float32(b.Rows+1) * spacing / 2,
	}

	res := &Result{}
	var (
		w    [8]float32
		seen [NumEdges]int32
		tri  [3]uint32
	)
	for z := 0; z < b.Rows; z++ {
		for y := 0; y < b.Layers; y++ {
			for x := 0; x < b.Cols; x++ {
				var mask uint8
				for i, c := range corners {
					w[i] = f.Weight(x+c[0], y+c[1], z+c[2])
					if w[i] < isolevel {
						mask |= 1 << i
					}
				}
				row := shapes[mask]
				if len(row) == 0 {
					continue
				}

				for i := range seen {
					seen[i] = -1
				}
				cell := mgl32.Vec3{float32(x), float32(y), float32(z)}
				for i, e := range row {
					idx := seen[e]
					if idx < 0 {
						a, c := e.Corners()
						grid := cell.Add(e.Interpolate(isolevel, w[a], w[c]))
						idx = int32(len(res.Vertices))
						res.Vertices = append(res.Vertices, Vertex{
							Cell:         [3]int{x, y, z},
							Position:     grid.Mul(spacing).Add(center),
							Color:        o.color(grid, b),
							Multiplicity: 1,
						})
						seen[e] = idx
					} else {
						res.Vertices[idx].Multiplicity++
					}
					tri[i%3] = uint32(idx)
					res.Indices = append(res.Indices, uint32(idx))
					if i%3 == 2 {
						res.accumulate(tri)
					}
				}
			}
		}
	}
	return res
}

func (r *Result) accumulate(tri [3]uint32) {
	v0 := r.Vertices[tri[0]].Position
	v1 := r.Vertices[tri[1]].Position
	v2 := r.Vertices[tri[2]].Position
	n := v1.Sub(v0).Cross(v2.Sub(v0))
	for _, i := range tri {
		v := &r.Vertices[i]
		v.Normal = v.Normal.Add(n.Mul(1 / float32(v.Multiplicity)))
	}
}

// Mesh flattens the result into the parallel buffers a kernel.Sink takes.
func (r *Result) Mesh() *kernel.Mesh {
	m := &kernel.Mesh{
		Vertices: make([]float32, 0, 3*len(r.Vertices)),
		Colors:   make([]float32, 0, 3*len(r.Vertices)),
		Normals:  make([]float32, 0, 3*len(r.Vertices)),
		Indices:  append([]uint32(nil), r.Indices...),
	}
	for _, v := range r.Vertices {
		m.Vertices = append(m.Vertices, v.Position[0], v.Position[1], v.Position[2])
		m.Colors = append(m.Colors, v.Color[0], v.Color[1], v.Color[2])
		m.Normals = append(m.Normals, v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return m
}

// Mesher is the native kernel.Mesher.
type Mesher struct {
	Options []Option
}

// Compile-time interface check.
var _ kernel.Mesher = Mesher{}

// Mesh implements kernel.Mesher.
func (m Mesher) Mesh(f *field.Field, isolevel float32) *kernel.Mesh {
	return Extract(f, isolevel, m.Options...).Mesh()
}
