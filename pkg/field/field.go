// Package field holds the scalar weight grid that terrain meshes are
// extracted from. Weights live on grid corners, so a field of
// cols x layers x rows cells stores (cols+1) x (layers+1) x (rows+1) samples.
package field

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Bounds are the cell counts of a field along each axis.
// Cols run along x, Layers along y and Rows along z.
type Bounds struct {
	Cols   int
	Rows   int
	Layers int
}

// OnBoundary reports whether corner (x, y, z) lies on the outer shell.
func (b Bounds) OnBoundary(x, y, z int) bool {
	return x == 0 || y == 0 || z == 0 || x == b.Cols || y == b.Layers || z == b.Rows
}

// Corners returns the number of weight samples a field with these bounds holds.
func (b Bounds) Corners() int {
	return (b.Cols + 1) * (b.Layers + 1) * (b.Rows + 1)
}

// addressable reports whether Corners fits in an int.
func (b Bounds) addressable() bool {
	n := uint64(1)
	for _, d := range [...]int{b.Cols, b.Rows, b.Layers} {
		hi, lo := bits.Mul64(n, uint64(d)+1)
		if hi != 0 || lo > math.MaxInt {
			return false
		}
		n = lo
	}
	return true
}

// Field is a dense grid of corner weights with uniform spacing.
// It is owned by a single terrain and is not safe for concurrent mutation.
type Field struct {
	bounds  Bounds
	spacing float32
	weights []float32
}

// New allocates a zeroed field. Negative dimensions or a non-positive
// spacing are programming errors and panic. Zero dimensions are allowed and
// produce a field with no cells.
func New(cols, rows, layers int, spacing float32) *Field {
	if cols < 0 || rows < 0 || layers < 0 {
		panic(fmt.Sprintf("field: invalid dimensions %dx%dx%d", cols, rows, layers))
	}
	if !(spacing > 0) || math.IsInf(float64(spacing), 0) {
		panic(fmt.Sprintf("field: invalid spacing %v", spacing))
	}
	b := Bounds{Cols: cols, Rows: rows, Layers: layers}
	if !b.addressable() {
		panic(fmt.Sprintf("field: %dx%dx%d is too large to allocate", cols, rows, layers))
	}
	return &Field{
		bounds:  b,
		spacing: spacing,
		weights: make([]float32, b.Corners()),
	}
}

// Bounds returns the cell counts of the field.
func (f *Field) Bounds() Bounds { return f.bounds }

// Cols returns the number of cells along x.
func (f *Field) Cols() int { return f.bounds.Cols }

// Rows returns the number of cells along z.
func (f *Field) Rows() int { return f.bounds.Rows }

// Layers returns the number of cells along y.
func (f *Field) Layers() int { return f.bounds.Layers }

// Spacing returns the world-space distance between adjacent corners.
func (f *Field) Spacing() float32 { return f.spacing }

// Weight returns the sample at corner (x, y, z). Each coordinate must lie in
// [0, dimension]; anything else panics.
func (f *Field) Weight(x, y, z int) float32 {
	return f.weights[f.index(x, y, z)]
}

func (f *Field) index(x, y, z int) int {
	b := f.bounds
	if x < 0 || x > b.Cols || y < 0 || y > b.Layers || z < 0 || z > b.Rows {
		panic(fmt.Sprintf("field: corner (%d, %d, %d) outside %dx%dx%d grid",
			x, y, z, b.Cols, b.Layers, b.Rows))
	}
	return (x*(b.Layers+1)+y)*(b.Rows+1) + z
}

// Fill overwrites every corner with values from s. Corners are visited with
// z outermost and x innermost, which fixes the order in which seeded
// strategies consume their random streams.
func (f *Field) Fill(s Strategy) {
	sample := s.Sampler(f.bounds)
	for z := 0; z <= f.bounds.Rows; z++ {
		for y := 0; y <= f.bounds.Layers; y++ {
			for x := 0; x <= f.bounds.Cols; x++ {
				f.weights[f.index(x, y, z)] = sample(x, y, z)
			}
		}
	}
}

// Range returns the smallest and largest weights in the field.
func (f *Field) Range() (min, max float32) {
	min, max = f.weights[0], f.weights[0]
	for _, w := range f.weights[1:] {
		if w < min {
			min = w
		}
		if w > max {
			max = w
		}
	}
	return min, max
}

// Fingerprint hashes the dimensions, spacing and weights. Two fields with
// equal fingerprints produce identical meshes at the same isolevel.
func (f *Field) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [4]byte
	for _, v := range []uint32{
		uint32(f.bounds.Cols), uint32(f.bounds.Rows), uint32(f.bounds.Layers),
		math.Float32bits(f.spacing),
	} {
		binary.LittleEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}
	for _, w := range f.weights {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(w))
		h.Write(buf[:])
	}
	return h.Sum64()
}
