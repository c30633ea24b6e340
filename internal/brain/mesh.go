package brain

import (
	"slices"

	"github.com/Faultbox/brainview/internal/colormap"
	"github.com/Faultbox/brainview/pkg/math"
)

// ColoredMesh is a geometry paired with one RGBA color per vertex.
// It is immutable; recoloring means building a new mesh.
type ColoredMesh struct {
	name     string
	geometry *Geometry
	colors   []uint8
}

// NewColoredMesh pairs g with precomputed colors, which must hold 4 bytes
// per vertex.
func NewColoredMesh(g *Geometry, colors []uint8) (*ColoredMesh, error) {
	if want := g.VertexCount() * 4; len(colors) != want {
		return nil, &ShapeMismatchError{What: "vertex color bytes", Want: want, Got: len(colors)}
	}
	return &ColoredMesh{geometry: g, colors: slices.Clone(colors)}, nil
}

// FromScalars colors g by encoding one value per vertex through gradient.
// A nil gradient selects the default one.
func FromScalars(g *Geometry, values []float32, gradient colormap.Gradient) (*ColoredMesh, error) {
	return FromSource(g, NewScalarSource(values, gradient))
}

// FromSource colors g with the output of src.
func FromSource(g *Geometry, src VertexColorSource) (*ColoredMesh, error) {
	colors, err := src.Colors()
	if err != nil {
		return nil, err
	}
	return NewColoredMesh(g, colors)
}

// WithName returns a copy of m carrying a display name.
func (m *ColoredMesh) WithName(name string) *ColoredMesh {
	c := *m
	c.name = name
	return &c
}

// Name returns the display name, usually the surface file name.
func (m *ColoredMesh) Name() string {
	return m.name
}

// Geometry returns the mesh geometry.
func (m *ColoredMesh) Geometry() *Geometry {
	return m.geometry
}

// Colors returns a copy of the RGBA bytes.
func (m *ColoredMesh) Colors() []uint8 {
	return slices.Clone(m.colors)
}

// VertexCount returns the number of vertices.
func (m *ColoredMesh) VertexCount() int {
	return m.geometry.VertexCount()
}

// Vertex returns the position of vertex i.
func (m *ColoredMesh) Vertex(i int) math.Vec3 {
	return m.geometry.Vertex(i)
}

// RenderData returns the parallel arrays handed to the renderer: xyz
// positions, triangle indices and RGBA bytes.
func (m *ColoredMesh) RenderData() (positions []float32, indices []uint32, colors []uint8) {
	return m.geometry.Positions(), m.geometry.Indices(), m.Colors()
}
