// Package config loads and saves the JSON settings file used by the
// strata command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chazu/strata/pkg/engine"
	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/kernel/sdfx"
	"github.com/chazu/strata/pkg/march"
	"github.com/chazu/strata/pkg/recipe"
)

// DefaultPath is the file name used when no path is given.
const DefaultPath = "strata.json"

// Backend selects the mesher.
type Backend string

const (
	BackendMarch Backend = "march"
	BackendSdfx  Backend = "sdfx"
)

// UnmarshalText accepts the backend names case-insensitively.
func (b *Backend) UnmarshalText(text []byte) error {
	switch v := Backend(strings.ToLower(string(text))); v {
	case BackendMarch, BackendSdfx:
		*b = v
		return nil
	}
	return fmt.Errorf("config: unknown mesher %q (want march or sdfx)", text)
}

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	*d = Duration(v)
	return nil
}

// Config holds the settings of the strata command.
type Config struct {
	// Terrain
	Grid     recipe.Grid     `json:"grid"`
	Fill     recipe.Fill     `json:"fill"`
	IsoLevel float32         `json:"isolevel"`
	Coloring recipe.Coloring `json:"coloring"`

	// Meshing
	Mesher    Backend `json:"mesher"`
	SdfxCells int     `json:"sdfx_cells"` // 0 uses the grid resolution

	// Scripts
	EvalTimeout Duration `json:"eval_timeout"`

	// Streaming
	ListenAddr string `json:"listen_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	r := recipe.Default()
	return &Config{
		Grid:        r.Grid,
		Fill:        r.Fill,
		IsoLevel:    r.IsoLevel,
		Coloring:    r.Coloring,
		Mesher:      BackendMarch,
		EvalTimeout: Duration(engine.EvalTimeout),
		ListenAddr:  "127.0.0.1:8080",
	}
}

// Load reads the configuration at path over the defaults. A missing file
// yields the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate reports settings that cannot be used. Recipe warnings are
// not errors here.
func (c *Config) Validate() error {
	var errs []error
	switch c.Mesher {
	case BackendMarch, BackendSdfx:
	default:
		errs = append(errs, fmt.Errorf("config: unknown mesher %q", c.Mesher))
	}
	if c.SdfxCells < 0 {
		errs = append(errs, fmt.Errorf("config: sdfx_cells must be >= 0, got %d", c.SdfxCells))
	}
	if c.EvalTimeout < 0 {
		errs = append(errs, fmt.Errorf("config: eval_timeout must not be negative"))
	}
	if err := recipe.ValidateAll(c.Recipe()).Err(); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	return errors.Join(errs...)
}

// Recipe returns the terrain settings as a recipe.
func (c *Config) Recipe() *recipe.Recipe {
	return &recipe.Recipe{
		Grid:     c.Grid,
		Fill:     c.Fill,
		IsoLevel: c.IsoLevel,
		Coloring: c.Coloring,
	}
}

// MesherFor returns the configured mesher for r. The sdfx backend colors
// every vertex with the fixed color since it has no height information.
func (c *Config) MesherFor(r *recipe.Recipe) kernel.Mesher {
	if c.Mesher == BackendSdfx {
		return sdfx.Mesher{Cells: c.SdfxCells, Color: r.Coloring.Fixed}
	}
	return march.Mesher{Options: r.MarchOptions()}
}

// Engine returns a script engine using the configured timeout.
func (c *Config) Engine() *engine.Engine {
	e := engine.NewEngine()
	e.SetTimeout(time.Duration(c.EvalTimeout))
	return e
}
