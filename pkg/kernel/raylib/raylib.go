//go:build raylib

package raylib

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/chazu/strata/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Sink = (*Sink)(nil)

// Sink keeps the latest uploaded mesh as a raylib model. It must be used
// from the goroutine that owns the window.
type Sink struct {
	positions []float32
	colors    []float32
	normals   []float32

	model  rl.Model
	loaded bool
}

// New creates a sink. rl.InitWindow must have been called.
func New() (kernel.Sink, error) {
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib sink: window not initialized")
	}
	return &Sink{}, nil
}

func (s *Sink) SetPositions(xyz []float32) { s.positions = xyz }
func (s *Sink) SetColors(rgb []float32)    { s.colors = rgb }
func (s *Sink) SetNormals(xyz []float32)   { s.normals = xyz }

// SetIndices completes an upload, replacing the previous model.
func (s *Sink) SetIndices(indices []uint32) {
	s.Unload()
	if len(indices) == 0 {
		return
	}

	l := buildLayout(s.positions, s.colors, s.normals, indices)
	var mesh rl.Mesh
	mesh.VertexCount = int32(l.vertexCount())
	mesh.TriangleCount = int32(l.triangleCount())
	mesh.Vertices = (*float32)(cCopy(unsafe.Pointer(&l.positions[0]), len(l.positions)*4))
	mesh.Normals = (*float32)(cCopy(unsafe.Pointer(&l.normals[0]), len(l.normals)*4))
	mesh.Colors = (*uint8)(cCopy(unsafe.Pointer(&l.colors[0]), len(l.colors)))
	if len(l.indices) > 0 {
		mesh.Indices = (*uint16)(cCopy(unsafe.Pointer(&l.indices[0]), len(l.indices)*2))
	}

	rl.UploadMesh(&mesh, false)
	s.model = rl.LoadModelFromMesh(mesh)
	s.loaded = true
	s.positions, s.colors, s.normals = nil, nil, nil
}

// Model returns the current model and whether one is loaded.
func (s *Sink) Model() (rl.Model, bool) { return s.model, s.loaded }

// Draw renders the current model at the origin.
func (s *Sink) Draw() {
	if s.loaded {
		rl.DrawModel(s.model, rl.NewVector3(0, 0, 0), 1, rl.White)
	}
}

// Unload frees the current model. raylib releases the C buffers.
func (s *Sink) Unload() {
	if s.loaded {
		rl.UnloadModel(s.model)
		s.model = rl.Model{}
		s.loaded = false
	}
}

// cCopy copies size bytes at data into malloc'd memory that raylib may free.
func cCopy(data unsafe.Pointer, size int) unsafe.Pointer {
	ptr := C.malloc(C.size_t(size))
	copy(unsafe.Slice((*byte)(ptr), size), unsafe.Slice((*byte)(data), size))
	return ptr
}
