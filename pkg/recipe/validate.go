package recipe

import (
	"errors"
	"fmt"
	"math"
)

// Grid size limits, in weight samples. Grids above SlowCorners validate
// with a warning; grids above MaxCorners are rejected.
const (
	SlowCorners = 256 * 256 * 256
	MaxCorners  = 512 * 512 * 512
)

// Severity indicates whether a validation finding blocks meshing or is
// merely informational.
type Severity int

const (
	SeverityError   Severity = iota // blocks meshing
	SeverityWarning                 // informational
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Param    string   // recipe parameter at fault, e.g. "grid.cols"
	Message  string   // human-readable description
	Severity Severity // error or warning
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Param, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Param   string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Err joins the blocking errors, or returns nil when there are none.
func (r ValidationResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Validate checks r and returns every finding. An empty slice means the
// recipe is valid. Validate never mutates the recipe.
func Validate(r *Recipe) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateGrid(r.Grid)...)
	errs = append(errs, validateFill(r.Fill)...)
	errs = append(errs, validateIsoLevel(r.IsoLevel)...)
	errs = append(errs, validateColoring(r.Coloring)...)
	return errs
}

// ValidateAll runs Validate and separates errors from warnings.
func ValidateAll(r *Recipe) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(r) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Param:   e.Param,
				Message: e.Message,
			})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}
	return result
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validateGrid(g Grid) []ValidationError {
	var errs []ValidationError
	dims := []struct {
		name string
		n    int
	}{
		{"grid.cols", g.Cols},
		{"grid.rows", g.Rows},
		{"grid.layers", g.Layers},
	}
	for _, d := range dims {
		if d.n <= 0 {
			errs = append(errs, ValidationError{
				Param:    d.name,
				Message:  fmt.Sprintf("must be positive, got %d", d.n),
				Severity: SeverityError,
			})
		}
	}
	if !(g.Spacing > 0) || !finite(g.Spacing) {
		errs = append(errs, ValidationError{
			Param:    "grid.spacing",
			Message:  fmt.Sprintf("must be a positive number, got %v", g.Spacing),
			Severity: SeverityError,
		})
	}
	if len(errs) > 0 {
		return errs
	}
	switch n := g.Corners(); {
	case n > MaxCorners:
		errs = append(errs, ValidationError{
			Param:    "grid",
			Message:  fmt.Sprintf("%dx%dx%d cells exceeds the limit of %d corners", g.Cols, g.Layers, g.Rows, MaxCorners),
			Severity: SeverityError,
		})
	case n > SlowCorners:
		errs = append(errs, ValidationError{
			Param:    "grid",
			Message:  fmt.Sprintf("%d corners exceeds %d; meshing will be slow", n, SlowCorners),
			Severity: SeverityWarning,
		})
	}
	return errs
}

func validateFill(f Fill) []ValidationError {
	var errs []ValidationError
	switch f.Kind {
	case FillNone:
		errs = append(errs, ValidationError{
			Param:    "fill.kind",
			Message:  "no fill; the field is all zeros and the mesh will be empty",
			Severity: SeverityWarning,
		})
	case FillRandom, FillDebug:
	case FillNoise:
		if !finite(f.Scale) {
			errs = append(errs, ValidationError{
				Param:    "fill.scale",
				Message:  fmt.Sprintf("must be finite, got %v", f.Scale),
				Severity: SeverityError,
			})
		} else if f.Scale == 0 {
			errs = append(errs, ValidationError{
				Param:    "fill.scale",
				Message:  "zero scale samples a single noise value; the field is constant",
				Severity: SeverityWarning,
			})
		}
		if f.Offset != nil && !finite(*f.Offset) {
			errs = append(errs, ValidationError{
				Param:    "fill.offset",
				Message:  fmt.Sprintf("must be finite, got %v", *f.Offset),
				Severity: SeverityError,
			})
		}
	default:
		errs = append(errs, ValidationError{
			Param:    "fill.kind",
			Message:  fmt.Sprintf("unknown fill kind %v", f.Kind),
			Severity: SeverityError,
		})
	}
	return errs
}

func validateIsoLevel(v float32) []ValidationError {
	if math.IsNaN(float64(v)) {
		return []ValidationError{{
			Param:    "isolevel",
			Message:  "must be a number",
			Severity: SeverityError,
		}}
	}
	if v < 0 || v > 1 {
		return []ValidationError{{
			Param:    "isolevel",
			Message:  fmt.Sprintf("%v is outside [0, 1] and will be clamped", v),
			Severity: SeverityWarning,
		}}
	}
	return nil
}

func validateColoring(c Coloring) []ValidationError {
	var errs []ValidationError
	check := func(name string, rgb [3]float32) {
		for _, v := range rgb {
			if v < 0 || v > 1 || !finite(v) {
				errs = append(errs, ValidationError{
					Param:    name,
					Message:  fmt.Sprintf("component %v is outside [0, 1]", v),
					Severity: SeverityWarning,
				})
				return
			}
		}
	}
	switch c.Mode {
	case ColorFixed:
		check("coloring.fixed", c.Fixed)
	case ColorHeight:
		check("coloring.low", c.Low)
		check("coloring.high", c.High)
	default:
		errs = append(errs, ValidationError{
			Param:    "coloring.mode",
			Message:  fmt.Sprintf("unknown color mode %v", c.Mode),
			Severity: SeverityError,
		})
	}
	return errs
}
