package main

import (
	"fmt"
	"log"

	"github.com/chazu/strata/pkg/config"
	"github.com/chazu/strata/pkg/engine"
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/recipe"
	"github.com/chazu/strata/pkg/tessellate"
	"github.com/chazu/strata/pkg/terrain"
)

// App ties the script engine, the tessellator and the current terrain
// together. Commands and the stream server drive it; it is not safe for
// concurrent use.
type App struct {
	cfg     *config.Config
	engine  *engine.Engine
	opts    []terrain.Option
	recipe  *recipe.Recipe
	terrain *terrain.Terrain
}

// MeshData is the JSON-serializable mesh format returned to callers.
type MeshData struct {
	Vertices  []float32 `json:"vertices"`
	Colors    []float32 `json:"colors"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
	Triangles int       `json:"triangles"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// EvalResult is the full result of an evaluation.
type EvalResult struct {
	Mesh     *MeshData       `json:"mesh"`
	IsoLevel float32         `json:"isolevel"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// OK reports whether the evaluation produced a mesh.
func (r EvalResult) OK() bool { return len(r.Errors) == 0 && r.Mesh != nil }

// NewApp creates an App from cfg (nil means config.Default()). opts are
// applied to every terrain the app builds.
func NewApp(cfg *config.Config, opts ...terrain.Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	return &App{
		cfg:    cfg,
		engine: cfg.Engine(),
		opts:   opts,
	}
}

func newResult() EvalResult {
	return EvalResult{
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}
}

// Evaluate takes script source and returns mesh data + errors.
// On failure the previous terrain is kept.
func (a *App) Evaluate(source string) EvalResult {
	result := newResult()

	// Step 1: Evaluate the script into a recipe.
	r, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Validate the recipe. Warnings are reported but do not block.
	vr := recipe.ValidateAll(r)
	for _, w := range vr.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Param: w.Param, Message: w.Message})
	}
	if len(vr.Errors) > 0 {
		for _, e := range vr.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Param: e.Param, Message: e.Message})
		}
		return result
	}

	// Step 3: Build the terrain.
	t, err := tessellate.Build(r, a.cfg.MesherFor(r), a.opts...)
	if err != nil {
		log.Printf("Build error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "build failed: " + err.Error()})
		return result
	}
	a.recipe = r
	a.terrain = t

	// Step 4: Mesh it.
	return a.meshResult(result)
}

// SetIsoLevel re-meshes the current terrain at v, clamped to [0,1].
func (a *App) SetIsoLevel(v float32) EvalResult {
	result := newResult()
	if a.terrain == nil {
		result.Errors = append(result.Errors, EvalErrorData{Message: "no terrain: evaluate a script first"})
		return result
	}
	a.terrain.SetIsoLevel(v)
	a.recipe.IsoLevel = a.terrain.IsoLevel()
	return a.meshResult(result)
}

func (a *App) meshResult(result EvalResult) EvalResult {
	m := a.terrain.GetMesh()
	if err := m.Validate(); err != nil {
		log.Printf("Mesh error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: fmt.Sprintf("meshing failed: %v", err)})
		return result
	}
	result.IsoLevel = a.terrain.IsoLevel()
	result.Mesh = &MeshData{
		Vertices:  m.Vertices,
		Colors:    m.Colors,
		Normals:   m.Normals,
		Indices:   m.Indices,
		Triangles: m.TriangleCount(),
	}
	return result
}

// Terrain returns the current terrain, or nil before a successful Evaluate.
func (a *App) Terrain() *terrain.Terrain { return a.terrain }

// Recipe returns the recipe of the current terrain.
func (a *App) Recipe() *recipe.Recipe { return a.recipe }

// Mesh returns the current mesh, or nil before a successful Evaluate.
func (a *App) Mesh() *kernel.Mesh {
	if a.terrain == nil {
		return nil
	}
	return a.terrain.GetMesh()
}
