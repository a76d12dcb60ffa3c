// Package terrain owns a scalar field together with the isolevel it is
// meshed at, and regenerates the mesh lazily when either changes.
//
// A Terrain is single-writer, single-reader: mutate it, then call GetMesh.
// It does no locking of its own.
package terrain

import (
	"log"
	"math"
	"time"

	"github.com/chazu/strata/pkg/field"
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/march"
)

// DefaultIsoLevel is the threshold new terrains are meshed at.
const DefaultIsoLevel = 0.5

// State tells whether the cached mesh matches the field and isolevel.
type State int

const (
	// Dirty means the field or isolevel changed since the last GetMesh.
	Dirty State = iota
	// Clean means the cached mesh is current.
	Clean
)

func (s State) String() string {
	switch s {
	case Dirty:
		return "dirty"
	case Clean:
		return "clean"
	default:
		return "unknown"
	}
}

// Terrain is a meshable block of scalar weights.
type Terrain struct {
	field    *field.Field
	isolevel float32
	state    State

	mesher kernel.Mesher
	sink   kernel.Sink
	logger *log.Logger

	mesh          *kernel.Mesh
	regenerations int
}

// Option configures a Terrain.
type Option func(*Terrain)

// WithMesher replaces the default marching cubes mesher.
func WithMesher(m kernel.Mesher) Option {
	return func(t *Terrain) { t.mesher = m }
}

// WithSink hands every regenerated mesh to s.
func WithSink(s kernel.Sink) Option {
	return func(t *Terrain) { t.sink = s }
}

// WithLogger redirects regeneration logging. A nil logger silences it.
func WithLogger(l *log.Logger) Option {
	return func(t *Terrain) { t.logger = l }
}

// New creates a terrain of cols x layers x rows cells with zeroed weights.
// It starts Dirty so the first GetMesh always builds a mesh.
func New(cols, rows, layers int, spacing float32, opts ...Option) *Terrain {
	t := &Terrain{
		field:    field.New(cols, rows, layers, spacing),
		isolevel: DefaultIsoLevel,
		state:    Dirty,
		mesher:   march.Mesher{},
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Field returns the underlying field. Writing to it directly bypasses the
// dirty tracking; use Fill instead.
func (t *Terrain) Field() *field.Field { return t.field }

// State returns whether the cached mesh is current.
func (t *Terrain) State() State { return t.state }

// IsoLevel returns the current surface threshold.
func (t *Terrain) IsoLevel() float32 { return t.isolevel }

// Regenerations returns how many times the mesh has been rebuilt.
func (t *Terrain) Regenerations() int { return t.regenerations }

// Fill overwrites every weight from s and marks the terrain Dirty.
func (t *Terrain) Fill(s field.Strategy) {
	t.field.Fill(s)
	t.state = Dirty
}

// FillRandom fills with uniform values in [0, 1) from a seeded source.
func (t *Terrain) FillRandom(seed int64) {
	t.Fill(field.Random{Seed: seed})
}

// FillNoise fills with simplex noise at the given frequency. The sampling
// offset is derived from seed. With border set the outer shell is solid.
func (t *Terrain) FillNoise(scale float32, seed int64, border bool) {
	t.Fill(field.NewNoise(scale, seed, border))
}

// FillDebug fills with the even-coordinate lattice pattern.
func (t *Terrain) FillDebug() {
	t.Fill(field.Debug{})
}

// SetIsoLevel clamps v to [0, 1] and marks the terrain Dirty.
// NaN is ignored and keeps the current isolevel.
func (t *Terrain) SetIsoLevel(v float32) {
	switch {
	case math.IsNaN(float64(v)):
		return
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	t.isolevel = v
	t.state = Dirty
}

// GetMesh returns the mesh for the current field and isolevel, rebuilding it
// first if the terrain is Dirty. Repeated calls without an intervening
// mutation return the same mesh.
func (t *Terrain) GetMesh() *kernel.Mesh {
	if t.state == Dirty {
		t.regenerate()
		t.state = Clean
	}
	return t.mesh
}

func (t *Terrain) regenerate() {
	start := time.Now()
	t.mesh = t.mesher.Mesh(t.field, t.isolevel)
	t.regenerations++
	if t.sink != nil {
		if err := kernel.Upload(t.sink, t.mesh); err != nil {
			t.logf("terrain: upload failed: %v", err)
		}
	}
	t.logf("terrain: generated %d vertices, %d triangles in %v",
		t.mesh.VertexCount(), t.mesh.TriangleCount(), time.Since(start))
}

func (t *Terrain) logf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}
