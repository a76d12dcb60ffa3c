package sdfx

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/strata/pkg/field"
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/march"
)

// sphereField returns a 12^3 field whose weight falls off linearly from 1
// at the grid center, crossing 0.5 four cells out.
func sphereField() *field.Field {
	f := field.New(12, 12, 12, 1)
	f.Fill(field.Func(func(x, y, z int) float32 {
		dx, dy, dz := float64(x-6), float64(y-6), float64(z-6)
		d := math.Sqrt(dx*dx + dy*dy + dz*dz)
		return float32(1 - d/8)
	}))
	return f
}

// sphereCenter is the world position of grid corner (6, 6, 6).
var sphereCenter = [3]float32{-0.5, -0.5, -0.5}

func radius(m *kernel.Mesh, i int) float64 {
	var sum float64
	for a := 0; a < 3; a++ {
		d := float64(m.Vertices[i*3+a] - sphereCenter[a])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func checkSphere(t *testing.T, name string, m *kernel.Mesh) {
	t.Helper()
	if m.IsEmpty() {
		t.Fatalf("%s: mesh is empty", name)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("%s: Validate() = %v", name, err)
	}
	for i := 0; i < m.VertexCount(); i++ {
		if r := radius(m, i); r < 3 || r > 5 {
			t.Fatalf("%s: vertex %d at radius %.3f, want within [3, 5]", name, i, r)
		}
	}
}

// ---------------------------------------------------------------------------
// FieldSDF
// ---------------------------------------------------------------------------

func TestEvaluateAtCorners(t *testing.T) {
	f := field.New(3, 4, 2, 2)
	f.Fill(field.Random{Seed: 5})
	s := NewFieldSDF(f, 0.4)
	box := s.BoundingBox()

	for z := 0; z <= 4; z++ {
		for y := 0; y <= 2; y++ {
			for x := 0; x <= 3; x++ {
				p := v3.Vec{
					X: box.Min.X + float64(x)*2,
					Y: box.Min.Y + float64(y)*2,
					Z: box.Min.Z + float64(z)*2,
				}
				got := s.Evaluate(p)
				want := 0.4 - float64(f.Weight(x, y, z))
				if math.Abs(got-want) > 1e-5 {
					t.Errorf("Evaluate(corner %d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

func TestEvaluateBetweenCorners(t *testing.T) {
	// Weight equals the y index, so the value is linear in world y.
	f := field.New(1, 1, 1, 1)
	f.Fill(field.Func(func(x, y, z int) float32 { return float32(y) }))
	s := NewFieldSDF(f, 0.5)
	min := s.BoundingBox().Min

	tests := []struct {
		y    float64
		want float64
	}{
		{0, 0.5},
		{0.25, 0.25},
		{0.5, 0},
		{1, -0.5},
		{-3, 0.5}, // clamped below
		{9, -0.5}, // clamped above
	}
	for _, tt := range tests {
		got := s.Evaluate(v3.Vec{X: min.X + 0.5, Y: min.Y + tt.y, Z: min.Z + 0.5})
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Evaluate(y=%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	f := field.New(4, 6, 2, 2)
	box := NewFieldSDF(f, 0.5).BoundingBox()
	wantMin := v3.Vec{X: -5, Y: -3, Z: -7}
	wantMax := v3.Vec{X: 3, Y: 1, Z: 5}
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("BoundingBox() = %v..%v, want %v..%v", box.Min, box.Max, wantMin, wantMax)
	}
}

// ---------------------------------------------------------------------------
// Mesher
// ---------------------------------------------------------------------------

func TestMeshSphere(t *testing.T) {
	m := Mesher{}.Mesh(sphereField(), 0.5)
	checkSphere(t, "sdfx", m)

	// Every vertex is emitted once per triangle.
	if len(m.Indices) != m.VertexCount() {
		t.Errorf("%d indices for %d vertices, want a triangle soup", len(m.Indices), m.VertexCount())
	}
	for i, idx := range m.Indices {
		if idx != uint32(i) {
			t.Fatalf("Indices[%d] = %d, want %d", i, idx, i)
		}
	}
	if m.Colors[0] != march.DefaultColor[0] || m.Colors[2] != march.DefaultColor[2] {
		t.Errorf("color = %v, want default", m.Colors[:3])
	}

	// Normals face away from the solid core.
	outward := 0
	for i := 0; i < m.VertexCount(); i++ {
		var dot float32
		for a := 0; a < 3; a++ {
			dot += m.Normals[i*3+a] * (m.Vertices[i*3+a] - sphereCenter[a])
		}
		if dot > 0 {
			outward++
		}
	}
	if outward < m.VertexCount()*9/10 {
		t.Errorf("%d of %d normals point outward", outward, m.VertexCount())
	}
}

func TestMatchesNativeMesher(t *testing.T) {
	f := sphereField()
	checkSphere(t, "march", march.Mesher{}.Mesh(f, 0.5))
	checkSphere(t, "sdfx", Mesher{Cells: 24}.Mesh(f, 0.5))
}

func TestMeshCustomColor(t *testing.T) {
	m := Mesher{Color: [3]float32{0, 1, 0}}.Mesh(sphereField(), 0.5)
	if m.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if m.Colors[0] != 0 || m.Colors[1] != 1 {
		t.Errorf("color = %v, want green", m.Colors[:3])
	}
}

func TestMeshEmptyField(t *testing.T) {
	m := Mesher{}.Mesh(field.New(0, 4, 4, 1), 0.5)
	if !m.IsEmpty() {
		t.Errorf("empty field produced %d vertices", m.VertexCount())
	}
}

func TestWriteSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.stl")
	if err := WriteSTL(path, sphereField(), 0.5, 0); err != nil {
		t.Fatalf("WriteSTL() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("STL file is empty")
	}

	if err := WriteSTL(path, field.New(2, 0, 2, 1), 0.5, 0); err == nil {
		t.Error("WriteSTL() succeeded for an empty field")
	}
}
