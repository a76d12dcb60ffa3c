// Package recipe describes a terrain as plain data: the grid, how its
// weights are filled, the isolevel and how vertices are colored.
// A recipe is produced by the script engine or the config file and turned
// into a terrain by the tessellate package.
package recipe

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/strata/pkg/field"
	"github.com/chazu/strata/pkg/march"
)

// Grid is the cell layout of the field.
type Grid struct {
	Cols    int     `json:"cols"`
	Rows    int     `json:"rows"`
	Layers  int     `json:"layers"`
	Spacing float32 `json:"spacing"`
}

// Corners returns the number of weight samples the grid holds. It is zero
// when any dimension is negative and saturates at math.MaxUint64.
func (g Grid) Corners() uint64 {
	n := uint64(1)
	for _, d := range [...]int{g.Cols, g.Rows, g.Layers} {
		if d < 0 {
			return 0
		}
		hi, lo := bits.Mul64(n, uint64(d)+1)
		if hi != 0 {
			return math.MaxUint64
		}
		n = lo
	}
	return n
}

// FillKind selects a fill strategy.
type FillKind int

const (
	FillNone FillKind = iota // weights stay zero
	FillRandom
	FillNoise
	FillDebug
)

var fillNames = map[FillKind]string{
	FillNone:   "none",
	FillRandom: "random",
	FillNoise:  "noise",
	FillDebug:  "debug",
}

func (k FillKind) String() string {
	if s, ok := fillNames[k]; ok {
		return s
	}
	return fmt.Sprintf("FillKind(%d)", int(k))
}

// ParseFillKind is the inverse of String.
func ParseFillKind(s string) (FillKind, error) {
	for k, name := range fillNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return FillNone, fmt.Errorf("unknown fill kind %q", s)
}

// MarshalText writes the kind by name so config files stay readable.
func (k FillKind) MarshalText() ([]byte, error) {
	if _, ok := fillNames[k]; !ok {
		return nil, fmt.Errorf("unknown fill kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FillKind) UnmarshalText(text []byte) error {
	v, err := ParseFillKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Fill holds the parameters of every fill strategy; only those relevant to
// Kind are read.
type Fill struct {
	Kind   FillKind `json:"kind"`
	Seed   int64    `json:"seed"`
	Scale  float32  `json:"scale,omitempty"`
	Border bool     `json:"border,omitempty"`
	// Offset overrides the noise offset that is otherwise derived from Seed.
	Offset *float32 `json:"offset,omitempty"`
}

// ColorMode selects how vertices are colored.
type ColorMode int

const (
	ColorFixed ColorMode = iota
	ColorHeight
)

func (m ColorMode) String() string {
	switch m {
	case ColorFixed:
		return "fixed"
	case ColorHeight:
		return "height"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	if m != ColorFixed && m != ColorHeight {
		return nil, fmt.Errorf("unknown color mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "fixed":
		*m = ColorFixed
	case "height":
		*m = ColorHeight
	default:
		return fmt.Errorf("unknown color mode %q", text)
	}
	return nil
}

// Coloring is the vertex coloring scheme.
type Coloring struct {
	Mode  ColorMode  `json:"mode"`
	Fixed [3]float32 `json:"fixed"`
	Low   [3]float32 `json:"low"`
	High  [3]float32 `json:"high"`
}

// DefaultColoring paints everything brown, with a brown-to-grass gradient
// ready for height mode.
func DefaultColoring() Coloring {
	return Coloring{
		Mode:  ColorFixed,
		Fixed: march.DefaultColor,
		Low:   march.DefaultColor,
		High:  [3]float32{0.3, 0.6, 0.2},
	}
}

// Recipe is a complete terrain description.
type Recipe struct {
	Grid     Grid     `json:"grid"`
	Fill     Fill     `json:"fill"`
	IsoLevel float32  `json:"isolevel"`
	Coloring Coloring `json:"coloring"`
}

// Default returns a 64^3 noise terrain, the scene the viewer opens with.
func Default() *Recipe {
	return &Recipe{
		Grid: Grid{Cols: 64, Rows: 64, Layers: 64, Spacing: 4},
		Fill: Fill{
			Kind:  FillNoise,
			Seed:  1,
			Scale: 0.1,
		},
		IsoLevel: 0.5,
		Coloring: DefaultColoring(),
	}
}

// Strategy returns the field strategy for the fill, or nil for FillNone.
func (r *Recipe) Strategy() field.Strategy {
	f := r.Fill
	switch f.Kind {
	case FillRandom:
		return field.Random{Seed: f.Seed}
	case FillNoise:
		n := field.NewNoise(f.Scale, f.Seed, f.Border)
		if f.Offset != nil {
			n.Offset = *f.Offset
		}
		return n
	case FillDebug:
		return field.Debug{}
	default:
		return nil
	}
}

// MarchOptions returns the extractor options that realise the coloring.
func (r *Recipe) MarchOptions() []march.Option {
	c := r.Coloring
	switch c.Mode {
	case ColorHeight:
		return []march.Option{march.WithColor(march.HeightGradient(mgl32.Vec3(c.Low), mgl32.Vec3(c.High)))}
	default:
		return []march.Option{march.WithColor(march.Fixed(mgl32.Vec3(c.Fixed)))}
	}
}
