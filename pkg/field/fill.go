package field

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// SampleFunc produces the weight for one corner.
type SampleFunc func(x, y, z int) float32

// Strategy produces corner weights for a field of the given bounds.
// Sampler is called once per fill; the returned function is then called for
// every corner in fill order.
type Strategy interface {
	Sampler(b Bounds) SampleFunc
}

// Func adapts a plain function into a Strategy.
type Func SampleFunc

// Sampler implements Strategy.
func (fn Func) Sampler(Bounds) SampleFunc { return SampleFunc(fn) }

// Constant fills every corner with the same weight.
type Constant float32

// Sampler implements Strategy.
func (c Constant) Sampler(Bounds) SampleFunc {
	return func(int, int, int) float32 { return float32(c) }
}

// Random fills corners with uniform values in [0, 1).
type Random struct {
	Seed int64
}

// Sampler implements Strategy.
func (r Random) Sampler(Bounds) SampleFunc {
	rng := rand.New(rand.NewSource(r.Seed))
	return func(int, int, int) float32 { return rng.Float32() }
}

// Noise fills corners with 3-D simplex noise sampled at
// (coord + Offset) * Scale and remapped from [-1, 1] to [0, 1].
// With Border set, every corner on the outer shell is forced to 1, which
// walls the terrain in.
type Noise struct {
	Scale  float32
	Seed   int64
	Offset float32
	Border bool
}

// NewNoise returns a Noise strategy whose offset is derived from seed.
func NewNoise(scale float32, seed int64, border bool) Noise {
	return Noise{Scale: scale, Seed: seed, Offset: OffsetForSeed(seed), Border: border}
}

// OffsetForSeed maps a seed to a sampling offset in [0, 100).
func OffsetForSeed(seed int64) float32 {
	return rand.New(rand.NewSource(seed)).Float32() * 100
}

// Sampler implements Strategy.
func (n Noise) Sampler(b Bounds) SampleFunc {
	gen := opensimplex.New32(n.Seed)
	return func(x, y, z int) float32 {
		if n.Border && b.OnBoundary(x, y, z) {
			return 1
		}
		v := gen.Eval3(
			(float32(x)+n.Offset)*n.Scale,
			(float32(y)+n.Offset)*n.Scale,
			(float32(z)+n.Offset)*n.Scale,
		)
		return (v + 1) / 2
	}
}

// Debug fills a sparse lattice: 1 where every coordinate is even, else 0.
type Debug struct{}

// Sampler implements Strategy.
func (Debug) Sampler(Bounds) SampleFunc {
	return func(x, y, z int) float32 {
		if x%2 == 0 && y%2 == 0 && z%2 == 0 {
			return 1
		}
		return 0
	}
}
