// Package tessellate turns a recipe into a terrain and its triangle mesh
// using a kernel.Mesher. The tessellator never mutates the recipe.
package tessellate

import (
	"fmt"

	"github.com/chazu/strata/pkg/kernel"
	"github.com/chazu/strata/pkg/march"
	"github.com/chazu/strata/pkg/recipe"
	"github.com/chazu/strata/pkg/terrain"
)

// Build validates r and returns a filled terrain ready for GetMesh.
// A nil mesher selects march.Mesher configured with the recipe's coloring.
// Warnings do not stop the build; any blocking finding does.
func Build(r *recipe.Recipe, m kernel.Mesher, opts ...terrain.Option) (*terrain.Terrain, error) {
	if r == nil {
		return nil, fmt.Errorf("tessellate: nil recipe")
	}
	if err := recipe.ValidateAll(r).Err(); err != nil {
		return nil, fmt.Errorf("tessellate: invalid recipe: %w", err)
	}

	if m == nil {
		m = march.Mesher{Options: r.MarchOptions()}
	}
	opts = append([]terrain.Option{terrain.WithMesher(m)}, opts...)

	g := r.Grid
	t := terrain.New(g.Cols, g.Rows, g.Layers, g.Spacing, opts...)
	if s := r.Strategy(); s != nil {
		t.Fill(s)
	}
	t.SetIsoLevel(r.IsoLevel)
	return t, nil
}

// Tessellate builds the terrain for r and returns its mesh.
func Tessellate(r *recipe.Recipe, m kernel.Mesher, opts ...terrain.Option) (*kernel.Mesh, error) {
	t, err := Build(r, m, opts...)
	if err != nil {
		return nil, err
	}
	mesh := t.GetMesh()
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("tessellate: mesher produced a bad mesh: %w", err)
	}
	return mesh, nil
}
