// Package export writes terrain meshes to files: binary glTF for viewers
// and compact checksummed snapshots for caching.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/chazu/strata/pkg/kernel"
)

// ErrEmpty is returned when asked to export a mesh without triangles.
var ErrEmpty = errors.New("export: mesh has no triangles")

// Generator is recorded in the asset block of every document.
const Generator = "strata"

// Document converts m into a single-node glTF document. Normals are
// normalized copies, since accumulated normals are not unit length.
func Document(m *kernel.Mesh) (*gltf.Document, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if m.TriangleCount() == 0 {
		return nil, ErrEmpty
	}

	positions := vec3s(m.Vertices)
	normals := vec3s(m.Normals)
	for i, n := range normals {
		v := mgl32.Vec3(n)
		if l := v.Len(); l > 0 {
			normals[i] = v.Mul(1 / l)
		}
	}
	colors := make([][4]float32, m.VertexCount())
	for i := range colors {
		colors[i] = [4]float32{m.Colors[i*3], m.Colors[i*3+1], m.Colors[i*3+2], 1}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = Generator

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(modeler.WritePosition(doc, positions)),
			gltf.NORMAL:   uint32(modeler.WriteNormal(doc, normals)),
			gltf.COLOR_0:  uint32(modeler.WriteColor(doc, colors)),
		},
		Indices:  gltf.Index(uint32(modeler.WriteIndices(doc, m.Indices))),
		Material: gltf.Index(0),
	}

	doc.Materials = []*gltf.Material{{
		Name:      "terrain",
		AlphaMode: gltf.AlphaOpaque,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}}
	doc.Meshes = []*gltf.Mesh{{Name: "Terrain", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "Terrain", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// WriteGLB encodes m as a binary glTF stream.
func WriteGLB(w io.Writer, m *kernel.Mesh) error {
	doc, err := Document(m)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode glb: %w", err)
	}
	return nil
}

// SaveGLB writes m to a .glb file at path.
func SaveGLB(path string, m *kernel.Mesh) error {
	doc, err := Document(m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// vec3s views a flat xyz buffer as triples. The result is a copy.
func vec3s(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/3)
	for i := range out {
		out[i] = [3]float32{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return out
}
