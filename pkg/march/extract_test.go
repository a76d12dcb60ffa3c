package march

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/strata/pkg/field"
)

// cell builds a one-cell field with the given corner weights, indexed by
// mask bit.
func cell(w [8]float32) *field.Field {
	f := field.New(1, 1, 1, 1)
	f.Fill(field.Func(func(x, y, z int) float32 {
		for i, c := range corners {
			if c == [3]int{x, y, z} {
				return w[i]
			}
		}
		panic("unreachable")
	}))
	return f
}

// maskCell puts 0 on every corner whose bit is set in mask and 1 elsewhere.
func maskCell(mask uint8) *field.Field {
	var w [8]float32
	for i := range w {
		if mask&(1<<i) == 0 {
			w[i] = 1
		}
	}
	return cell(w)
}

func checkIndices(t *testing.T, r *Result) {
	t.Helper()
	if len(r.Indices)%3 != 0 {
		t.Fatalf("%d indices, not a multiple of 3", len(r.Indices))
	}
	for i, idx := range r.Indices {
		if int(idx) >= len(r.Vertices) {
			t.Fatalf("index %d = %d, only %d vertices", i, idx, len(r.Vertices))
		}
	}
}

// --- Worked example: a horizontal sheet through one cell ---

func TestExtractHorizontalSheet(t *testing.T) {
	r := Extract(cell([8]float32{0, 0, 0, 0, 1, 1, 1, 1}), 0.5)

	wantIdx := []uint32{0, 1, 2, 1, 3, 2}
	if !reflect.DeepEqual(r.Indices, wantIdx) {
		t.Fatalf("Indices = %v, want %v", r.Indices, wantIdx)
	}
	want := []Vertex{
		{Cell: [3]int{0, 0, 0}, Position: mgl32.Vec3{0, -0.5, -1}, Color: DefaultColor, Normal: mgl32.Vec3{0, -1, 0}, Multiplicity: 1},
		{Cell: [3]int{0, 0, 0}, Position: mgl32.Vec3{0, -0.5, 0}, Color: DefaultColor, Normal: mgl32.Vec3{0, -1.5, 0}, Multiplicity: 2},
		{Cell: [3]int{0, 0, 0}, Position: mgl32.Vec3{-1, -0.5, -1}, Color: DefaultColor, Normal: mgl32.Vec3{0, -1.5, 0}, Multiplicity: 2},
		{Cell: [3]int{0, 0, 0}, Position: mgl32.Vec3{-1, -0.5, 0}, Color: DefaultColor, Normal: mgl32.Vec3{0, -1, 0}, Multiplicity: 1},
	}
	if len(r.Vertices) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(r.Vertices), len(want))
	}
	for i := range want {
		if r.Vertices[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, r.Vertices[i], want[i])
		}
	}
}

func TestExtractMeshFlattening(t *testing.T) {
	m := Extract(cell([8]float32{0, 0, 0, 0, 1, 1, 1, 1}), 0.5).Mesh()
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if m.VertexCount() != 4 || m.TriangleCount() != 2 {
		t.Fatalf("mesh has %d vertices, %d triangles, want 4 and 2", m.VertexCount(), m.TriangleCount())
	}
	wantPos := []float32{0, -0.5, -1, 0, -0.5, 0, -1, -0.5, -1, -1, -0.5, 0}
	if !reflect.DeepEqual(m.Vertices, wantPos) {
		t.Errorf("Vertices = %v, want %v", m.Vertices, wantPos)
	}
	if m.Colors[0] != 0.5 || m.Colors[1] != 0.25 || m.Colors[2] != 0.1 {
		t.Errorf("first color = %v, want default", m.Colors[:3])
	}
	if m.Normals[4] != -1.5 {
		t.Errorf("second normal y = %v, want -1.5", m.Normals[4])
	}
}

// --- Properties ---

func TestExtractIsolevelOutsideRange(t *testing.T) {
	f := field.New(6, 5, 4, 1)
	f.Fill(field.Random{Seed: 3})
	min, max := f.Range()
	for _, iso := range []float32{min - 0.1, -1, max + 0.01, 2} {
		r := Extract(f, iso)
		if len(r.Vertices) != 0 || len(r.Indices) != 0 {
			t.Errorf("isolevel %v outside [%v, %v]: %d vertices, %d indices, want none",
				iso, min, max, len(r.Vertices), len(r.Indices))
		}
	}
}

func TestExtractConstantField(t *testing.T) {
	f := field.New(4, 4, 4, 1)
	f.Fill(field.Constant(0.5))
	for _, iso := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if r := Extract(f, iso); len(r.Vertices) != 0 || len(r.Indices) != 0 {
			t.Errorf("isolevel %v: %d vertices, %d indices, want none", iso, len(r.Vertices), len(r.Indices))
		}
	}
}

func TestExtractEmptyGrid(t *testing.T) {
	tests := []struct {
		name               string
		cols, rows, layers int
	}{
		{"all zero", 0, 0, 0},
		{"no rows", 3, 0, 3},
		{"no layers", 3, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := field.New(tt.cols, tt.rows, tt.layers, 1)
			f.Fill(field.Random{Seed: 1})
			r := Extract(f, 0.5)
			if len(r.Vertices) != 0 || len(r.Indices) != 0 {
				t.Errorf("got %d vertices, %d indices, want none", len(r.Vertices), len(r.Indices))
			}
			if !r.Mesh().IsEmpty() {
				t.Error("Mesh() is not empty")
			}
		})
	}
}

func TestExtractSplitCellTriangleCount(t *testing.T) {
	masks := []uint8{0b00001111, 0b10101010, 0b01010101, 0b00110011, 0b11000011, 0b01101001}
	for _, mask := range masks {
		r := Extract(maskCell(mask), 0.5)
		checkIndices(t, r)
		want := len(EdgesFor(mask)) / 3
		if got := len(r.Indices) / 3; got != want {
			t.Errorf("mask %08b: %d triangles, want %d", mask, got, want)
		}
	}
}

func TestExtractEveryMask(t *testing.T) {
	for m := 0; m < 256; m++ {
		mask := uint8(m)
		r := Extract(maskCell(mask), 0.5)
		checkIndices(t, r)
		row := EdgesFor(mask)
		if len(r.Indices) != len(row) {
			t.Errorf("mask %d: %d indices, want %d", m, len(r.Indices), len(row))
		}
		distinct := map[Edge]bool{}
		for _, e := range row {
			distinct[e] = true
		}
		if len(r.Vertices) != len(distinct) {
			t.Errorf("mask %d: %d vertices, want one per distinct edge (%d)", m, len(r.Vertices), len(distinct))
		}
		refs := make([]int, len(r.Vertices))
		for _, idx := range r.Indices {
			refs[idx]++
		}
		for i, v := range r.Vertices {
			if v.Multiplicity != refs[i] {
				t.Errorf("mask %d: vertex %d multiplicity %d, referenced %d times", m, i, v.Multiplicity, refs[i])
			}
		}
	}
}

// Face normals must point down the weight gradient, toward the corners that
// are below the isolevel.
func TestExtractWinding(t *testing.T) {
	for m := 1; m < 255; m++ {
		mask := uint8(m)
		var w [8]float32
		for i := range w {
			if mask&(1<<i) == 0 {
				w[i] = 1
			}
		}
		r := Extract(cell(w), 0.5)
		for i := 0; i < len(r.Indices); i += 3 {
			p0 := r.Vertices[r.Indices[i]].Position
			p1 := r.Vertices[r.Indices[i+1]].Position
			p2 := r.Vertices[r.Indices[i+2]].Position
			n := p1.Sub(p0).Cross(p2.Sub(p0))
			// Undo the centering offset of a 1x1x1 grid.
			c := p0.Add(p1).Add(p2).Mul(1.0 / 3).Add(mgl32.Vec3{1, 1, 1})
			if d := n.Dot(gradient(w, c)); d >= 0 {
				t.Errorf("mask %08b triangle %d: normal %v against gradient (dot %v)", mask, i/3, n, d)
			}
		}
	}
}

// gradient of the trilinear interpolation of w at p in the unit cube.
func gradient(w [8]float32, p mgl32.Vec3) mgl32.Vec3 {
	var g mgl32.Vec3
	for i, c := range corners {
		for k := 0; k < 3; k++ {
			d := float32(1)
			for axis := 0; axis < 3; axis++ {
				switch {
				case axis == k && c[axis] == 1:
				case axis == k:
					d = -d
				case c[axis] == 1:
					d *= p[axis]
				default:
					d *= 1 - p[axis]
				}
			}
			g[k] += w[i] * d
		}
	}
	return g
}

func TestExtractDeterministic(t *testing.T) {
	f := field.New(10, 10, 10, 0.5)
	f.Fill(field.NewNoise(0.15, 11, true))
	a := Extract(f, 0.45)
	b := Extract(f, 0.45)
	if len(a.Indices) == 0 {
		t.Fatal("noise field produced no geometry")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two extractions of the same field differ")
	}
	checkIndices(t, a)
}

func TestExtractSpacingScalesPositions(t *testing.T) {
	f := field.New(1, 1, 1, 2)
	f.Fill(field.Func(func(x, y, z int) float32 { return float32(y) }))
	r := Extract(f, 0.5)
	// Centering is -(n+1)*spacing/2 = -2 on every axis.
	want := mgl32.Vec3{0, -1, -2}
	if got := r.Vertices[0].Position; got != want {
		t.Errorf("first vertex = %v, want %v", got, want)
	}
}

func TestExtractDuplicatesAcrossCells(t *testing.T) {
	// Two cells side by side share the face at x = 1; each cell keeps its
	// own copy of the vertices on that face.
	f := field.New(2, 1, 1, 1)
	f.Fill(field.Func(func(x, y, z int) float32 { return float32(y) }))
	r := Extract(f, 0.5)
	if len(r.Vertices) != 8 {
		t.Errorf("got %d vertices, want 8", len(r.Vertices))
	}
	if len(r.Indices) != 12 {
		t.Errorf("got %d indices, want 12", len(r.Indices))
	}
}

// --- Coloring ---

func TestHeightGradient(t *testing.T) {
	low := mgl32.Vec3{0, 0, 0}
	high := mgl32.Vec3{1, 1, 1}
	f := field.New(1, 1, 2, 1)
	f.Fill(field.Func(func(x, y, z int) float32 {
		if y == 0 {
			return 0
		}
		return 1
	}))
	r := Extract(f, 0.5, WithColor(HeightGradient(low, high)))
	if len(r.Vertices) == 0 {
		t.Fatal("no vertices")
	}
	// The sheet sits half way up the bottom layer of two.
	want := mgl32.Vec3{0.25, 0.25, 0.25}
	for i, v := range r.Vertices {
		if !v.Color.ApproxEqual(want) {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, want)
		}
	}
}

func TestFixedColor(t *testing.T) {
	red := mgl32.Vec3{1, 0, 0}
	r := Extract(cell([8]float32{0, 0, 0, 0, 1, 1, 1, 1}), 0.5, WithColor(Fixed(red)))
	for i, v := range r.Vertices {
		if v.Color != red {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, red)
		}
	}
}

func TestMesherImplementsKernel(t *testing.T) {
	f := cell([8]float32{0, 0, 0, 0, 1, 1, 1, 1})
	m := Mesher{}.Mesh(f, 0.5)
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
}
