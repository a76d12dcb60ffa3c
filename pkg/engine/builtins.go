package engine

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/strata/pkg/recipe"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource rewrites terrain script source before passing it to
// zygomys:
//
//  1. Keyword conversion: :seed -> "__kw_seed" (string literal), so
//     keywords never collide with user variables of the same name.
//  2. Kebab-case to underscore: fill-noise -> fill_noise. zygomys reads a
//     hyphen inside an identifier as subtraction.
//  3. ; line comments become // comments.
//
// String literals and comments are left untouched.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch {
		case b[i] == '"' || b[i] == '`':
			j := skipString(b, i)
			result = append(result, b[i:j]...)
			i = j

		case b[i] == ';':
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}

		case b[i] == ':' && i+1 < len(b) && b[i+1] == '=':
			result = append(result, ':', '=')
			i += 2

		case b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			result = append(result, '"')
			result = append(result, kwPrefix...)
			result = append(result, b[i+1:j]...)
			result = append(result, '"')
			i = j

		case b[i] == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			// Only a hyphen between identifier characters; a minus stays.
			result = append(result, '_')
			i++

		default:
			result = append(result, b[i])
			i++
		}
	}
	return string(result)
}

// skipString returns the index just past the string literal starting at i.
// Double-quoted literals honour backslash escapes; backtick literals do not.
func skipString(b []byte, i int) int {
	quote := b[i]
	j := i + 1
	for j < len(b) && b[j] != quote {
		if quote == '"' && b[j] == '\\' && j+1 < len(b) {
			j++
		}
		j++
	}
	if j < len(b) {
		j++
	}
	return j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			// Trailing keyword with no value is a flag.
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// checkKeywords rejects keywords a builtin does not understand, which
// catches typos such as :sacle.
func (a kwArgs) checkKeywords(builtin string, allowed ...string) error {
	for name := range a.kw {
		known := false
		for _, k := range allowed {
			if name == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%s: unknown keyword :%s", builtin, name)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func describe(s zygo.Sexp) string {
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

// toFloat32 is toFloat64 narrowed for field parameters.
func toFloat32(s zygo.Sexp) (float32, error) {
	f, err := toFloat64(s)
	return float32(f), err
}

// toInt extracts an integer. Floats are accepted when they are whole.
func toInt(s zygo.Sexp) (int64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return v.Val, nil
	case *zygo.SexpFloat:
		if v.Val == math.Trunc(v.Val) {
			return int64(v.Val), nil
		}
		return 0, fmt.Errorf("expected integer, got %v", v.Val)
	}
	return 0, fmt.Errorf("expected integer, got %s", describe(s))
}

// toBool accepts true/false; a bare trailing keyword counts as true.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return true, nil
		}
	}
	return false, fmt.Errorf("expected true or false, got %s", describe(s))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %s", describe(s))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toRGB reads three numbers starting at args[0].
func toRGB(args []zygo.Sexp) ([3]float32, error) {
	var rgb [3]float32
	if len(args) < 3 {
		return rgb, fmt.Errorf("expected 3 color components, got %d", len(args))
	}
	for i := range rgb {
		v, err := toFloat32(args[i])
		if err != nil {
			return rgb, fmt.Errorf("component %d: %w", i, err)
		}
		rgb[i] = v
	}
	return rgb, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the terrain DSL into a zygomys environment.
// Every builtin edits r in place; a later call overrides an earlier one.
//
// Source code must be preprocessed with preprocessSource() so that
// :keyword tokens and kebab-case names are recognizable.
func registerBuiltins(env *zygo.Zlisp, r *recipe.Recipe) {

	// -----------------------------------------------------------------------
	// (grid :cols 32 :rows 32 :layers 16 :spacing 1.0)
	// -----------------------------------------------------------------------
	env.AddFunction("grid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.checkKeywords("grid", "cols", "rows", "layers", "spacing"); err != nil {
			return zygo.SexpNull, err
		}
		dims := []struct {
			kw  string
			dst *int
		}{
			{"cols", &r.Grid.Cols},
			{"rows", &r.Grid.Rows},
			{"layers", &r.Grid.Layers},
		}
		for _, d := range dims {
			if v, ok := pa.kw[d.kw]; ok {
				n, err := toInt(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("grid: %s: %w", d.kw, err)
				}
				*d.dst = int(n)
			}
		}
		if v, ok := pa.kw["spacing"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("grid: spacing: %w", err)
			}
			r.Grid.Spacing = f
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (fill-random :seed 7)
	// -----------------------------------------------------------------------
	env.AddFunction("fill_random", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.checkKeywords("fill-random", "seed"); err != nil {
			return zygo.SexpNull, err
		}
		f := recipe.Fill{Kind: recipe.FillRandom}
		if v, ok := pa.kw["seed"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill-random: seed: %w", err)
			}
			f.Seed = n
		}
		r.Fill = f
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (fill-noise :scale 0.1 :seed 7 :border true :offset 12.5)
	// -----------------------------------------------------------------------
	env.AddFunction("fill_noise", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.checkKeywords("fill-noise", "scale", "seed", "border", "offset"); err != nil {
			return zygo.SexpNull, err
		}
		f := recipe.Fill{Kind: recipe.FillNoise, Scale: 0.1}
		if v, ok := pa.kw["scale"]; ok {
			s, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill-noise: scale: %w", err)
			}
			f.Scale = s
		}
		if v, ok := pa.kw["seed"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill-noise: seed: %w", err)
			}
			f.Seed = n
		}
		if v, ok := pa.kw["border"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill-noise: border: %w", err)
			}
			f.Border = b
		}
		if v, ok := pa.kw["offset"]; ok {
			o, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill-noise: offset: %w", err)
			}
			f.Offset = &o
		}
		r.Fill = f
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (fill-debug)
	// -----------------------------------------------------------------------
	env.AddFunction("fill_debug", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 0 {
			return zygo.SexpNull, fmt.Errorf("fill-debug takes no arguments, got %d", len(args))
		}
		r.Fill = recipe.Fill{Kind: recipe.FillDebug}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (isolevel 0.45)
	// -----------------------------------------------------------------------
	env.AddFunction("isolevel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("isolevel requires exactly 1 argument, got %d", len(args))
		}
		v, err := toFloat32(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("isolevel: %w", err)
		}
		r.IsoLevel = v
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (color :fixed 0.5 0.25 0.1)
	// (color :height)
	// (color :height 0.5 0.25 0.1 0.3 0.6 0.2)   ; low then high
	// -----------------------------------------------------------------------
	env.AddFunction("color", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("color requires a mode (:fixed or :height)")
		}
		mode, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("color: mode: %w", err)
		}
		c := recipe.DefaultColoring()
		rest := args[1:]
		switch mode {
		case "fixed":
			rgb, err := toRGB(rest)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("color: fixed: %w", err)
			}
			c.Mode = recipe.ColorFixed
			c.Fixed = rgb
		case "height":
			c.Mode = recipe.ColorHeight
			switch len(rest) {
			case 0:
			case 6:
				if c.Low, err = toRGB(rest[:3]); err != nil {
					return zygo.SexpNull, fmt.Errorf("color: low: %w", err)
				}
				if c.High, err = toRGB(rest[3:]); err != nil {
					return zygo.SexpNull, fmt.Errorf("color: high: %w", err)
				}
			default:
				return zygo.SexpNull, fmt.Errorf("color: height takes 0 or 6 components, got %d", len(rest))
			}
		default:
			return zygo.SexpNull, fmt.Errorf("color: unknown mode %q, expected fixed or height", mode)
		}
		r.Coloring = c
		return zygo.SexpNull, nil
	})
}
