package raylib

import (
	"reflect"
	"testing"
)

func TestChannel(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{0.25, 64},
		{1, 255},
		{3, 255},
	}
	for _, tt := range tests {
		if got := channel(tt.in); got != tt.want {
			t.Errorf("channel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRGBA(t *testing.T) {
	got := rgba([]float32{1, 0, 0.5, 0, 1, 0})
	want := []uint8{255, 0, 128, 255, 0, 255, 0, 255}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rgba() = %v, want %v", got, want)
	}
}

func TestBuildLayoutIndexed(t *testing.T) {
	positions := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0}
	colors := make([]float32, 12)
	normals := make([]float32, 12)
	l := buildLayout(positions, colors, normals, []uint32{0, 1, 2, 1, 3, 2})

	if l.vertexCount() != 4 || l.triangleCount() != 2 {
		t.Errorf("counts = %d vertices, %d triangles, want 4, 2", l.vertexCount(), l.triangleCount())
	}
	if want := []uint16{0, 1, 2, 1, 3, 2}; !reflect.DeepEqual(l.indices, want) {
		t.Errorf("indices = %v, want %v", l.indices, want)
	}
	if len(l.colors) != 16 || l.colors[3] != 255 {
		t.Errorf("colors = %v", l.colors)
	}
}

func TestBuildLayoutExpandsLargeMeshes(t *testing.T) {
	n := MaxIndexedVertices + 1
	positions := make([]float32, n*3)
	colors := make([]float32, n*3)
	normals := make([]float32, n*3)
	for i := 0; i < n; i++ {
		positions[i*3] = float32(i)
		colors[i*3+1] = 1
	}
	last := uint32(n - 1)
	l := buildLayout(positions, colors, normals, []uint32{0, 1, last, last, 1, 2})

	if l.indices != nil {
		t.Fatalf("got %d indices, want none", len(l.indices))
	}
	if l.vertexCount() != 6 || l.triangleCount() != 2 {
		t.Errorf("counts = %d vertices, %d triangles, want 6, 2", l.vertexCount(), l.triangleCount())
	}
	if l.positions[2*3] != float32(last) || l.positions[3*3] != float32(last) {
		t.Errorf("expanded positions = %v", l.positions)
	}
	if l.colors[1] != 255 || l.colors[0] != 0 {
		t.Errorf("expanded colors = %v", l.colors[:4])
	}
}
