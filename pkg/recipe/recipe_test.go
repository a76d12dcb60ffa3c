package recipe

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/chazu/strata/pkg/field"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func hasError(errs []ValidationError, param string) bool {
	for _, e := range errs {
		if e.Severity == SeverityError && e.Param == param {
			return true
		}
	}
	return false
}

func hasWarning(errs []ValidationError, param string) bool {
	for _, e := range errs {
		if e.Severity == SeverityWarning && e.Param == param {
			return true
		}
	}
	return false
}

func small() *Recipe {
	r := Default()
	r.Grid = Grid{Cols: 4, Rows: 4, Layers: 4, Spacing: 1}
	return r
}

// ---------------------------------------------------------------------------
// Defaults and strategies
// ---------------------------------------------------------------------------

func TestDefaultIsValid(t *testing.T) {
	if errs := Validate(Default()); len(errs) != 0 {
		t.Errorf("Validate(Default()) = %v, want none", errs)
	}
}

func TestStrategy(t *testing.T) {
	off := float32(3)
	tests := []struct {
		name string
		fill Fill
		want field.Strategy
	}{
		{"none", Fill{Kind: FillNone}, nil},
		{"random", Fill{Kind: FillRandom, Seed: 9}, field.Random{Seed: 9}},
		{"debug", Fill{Kind: FillDebug}, field.Debug{}},
		{"noise", Fill{Kind: FillNoise, Seed: 4, Scale: 0.2, Border: true}, field.NewNoise(0.2, 4, true)},
		{"noise with offset", Fill{Kind: FillNoise, Seed: 4, Scale: 0.2, Offset: &off},
			field.Noise{Scale: 0.2, Seed: 4, Offset: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := small()
			r.Fill = tt.fill
			if got := r.Strategy(); got != tt.want {
				t.Errorf("Strategy() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMarchOptions(t *testing.T) {
	r := small()
	if n := len(r.MarchOptions()); n != 1 {
		t.Errorf("fixed coloring: %d options, want 1", n)
	}
	r.Coloring.Mode = ColorHeight
	if n := len(r.MarchOptions()); n != 1 {
		t.Errorf("height coloring: %d options, want 1", n)
	}
}

func TestParseFillKind(t *testing.T) {
	for k, name := range fillNames {
		got, err := ParseFillKind(strings.ToUpper(name))
		if err != nil || got != k {
			t.Errorf("ParseFillKind(%q) = %v, %v; want %v", name, got, err, k)
		}
	}
	if _, err := ParseFillKind("perlin"); err == nil {
		t.Error("ParseFillKind(perlin) succeeded, want error")
	}
}

func TestRecipeJSON(t *testing.T) {
	r := small()
	r.Fill.Kind = FillDebug
	r.Coloring.Mode = ColorHeight
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"kind":"debug"`) || !strings.Contains(string(data), `"mode":"height"`) {
		t.Errorf("JSON = %s, want kinds by name", data)
	}
	var back Recipe
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Fill.Kind != FillDebug || back.Coloring.Mode != ColorHeight || back.Grid != r.Grid {
		t.Errorf("round trip = %+v, want %+v", back, *r)
	}
	if err := json.Unmarshal([]byte(`{"fill":{"kind":"lava"}}`), &back); err == nil {
		t.Error("Unmarshal accepted unknown fill kind")
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name        string
		mutate      func(r *Recipe)
		wantError   string
		wantWarning string
	}{
		{"zero cols", func(r *Recipe) { r.Grid.Cols = 0 }, "grid.cols", ""},
		{"negative rows", func(r *Recipe) { r.Grid.Rows = -2 }, "grid.rows", ""},
		{"zero layers", func(r *Recipe) { r.Grid.Layers = 0 }, "grid.layers", ""},
		{"zero spacing", func(r *Recipe) { r.Grid.Spacing = 0 }, "grid.spacing", ""},
		{"NaN spacing", func(r *Recipe) { r.Grid.Spacing = nan }, "grid.spacing", ""},
		{"unknown fill", func(r *Recipe) { r.Fill.Kind = FillKind(42) }, "fill.kind", ""},
		{"NaN scale", func(r *Recipe) { r.Fill.Scale = nan }, "fill.scale", ""},
		{"NaN isolevel", func(r *Recipe) { r.IsoLevel = nan }, "isolevel", ""},
		{"unknown color mode", func(r *Recipe) { r.Coloring.Mode = ColorMode(7) }, "coloring.mode", ""},
		{"isolevel high", func(r *Recipe) { r.IsoLevel = 1.5 }, "", "isolevel"},
		{"isolevel low", func(r *Recipe) { r.IsoLevel = -0.1 }, "", "isolevel"},
		{"zero scale", func(r *Recipe) { r.Fill.Scale = 0 }, "", "fill.scale"},
		{"no fill", func(r *Recipe) { r.Fill.Kind = FillNone }, "", "fill.kind"},
		{"huge grid", func(r *Recipe) { r.Grid = Grid{Cols: 300, Rows: 300, Layers: 300, Spacing: 1} }, "", "grid"},
		{"oversized grid", func(r *Recipe) { r.Grid = Grid{Cols: 1000, Rows: 1000, Layers: 1000, Spacing: 1} }, "grid", ""},
		{"overflowing grid", func(r *Recipe) { r.Grid = Grid{Cols: 3000000, Rows: 3000000, Layers: 3000000, Spacing: 1} }, "grid", ""},
		{"bright color", func(r *Recipe) { r.Coloring.Fixed = [3]float32{2, 0, 0} }, "", "coloring.fixed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := small()
			tt.mutate(r)
			errs := Validate(r)
			if tt.wantError != "" && !hasError(errs, tt.wantError) {
				t.Errorf("Validate() = %v, want error on %s", errs, tt.wantError)
			}
			if tt.wantWarning != "" {
				if !hasWarning(errs, tt.wantWarning) {
					t.Errorf("Validate() = %v, want warning on %s", errs, tt.wantWarning)
				}
				if res := ValidateAll(r); res.Err() != nil {
					t.Errorf("warning-only recipe has Err() = %v", res.Err())
				}
			}
		})
	}
}

func TestGridCorners(t *testing.T) {
	tests := []struct {
		name string
		g    Grid
		want uint64
	}{
		{"unit", Grid{Cols: 1, Rows: 1, Layers: 1}, 8},
		{"flat", Grid{Cols: 4, Rows: 2, Layers: 0}, 15},
		{"negative", Grid{Cols: 4, Rows: -2, Layers: 3}, 0},
		{"large", Grid{Cols: 1000, Rows: 1000, Layers: 1000}, 1003003001},
		{"overflow", Grid{Cols: 3000000, Rows: 3000000, Layers: 3000000}, math.MaxUint64},
		{"max int", Grid{Cols: math.MaxInt, Rows: math.MaxInt, Layers: 2}, math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Corners(); got != tt.want {
				t.Errorf("Corners() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateAllSeparatesFindings(t *testing.T) {
	r := small()
	r.Grid.Cols = 0
	r.IsoLevel = 2
	res := ValidateAll(r)
	if len(res.Errors) != 1 || len(res.Warnings) != 1 {
		t.Fatalf("got %d errors, %d warnings, want 1 and 1", len(res.Errors), len(res.Warnings))
	}
	err := res.Err()
	if err == nil || !strings.Contains(err.Error(), "grid.cols") {
		t.Errorf("Err() = %v, want mention of grid.cols", err)
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	r := small()
	r.IsoLevel = 3
	before := *r
	Validate(r)
	if *r != before {
		t.Error("Validate mutated the recipe")
	}
}
