package brain

import (
	"slices"

	"github.com/Faultbox/brainview/pkg/freesurfer"
	"github.com/Faultbox/brainview/pkg/math"
)

// Geometry is an immutable triangle mesh: xyz per vertex and three vertex
// indices per triangle.
type Geometry struct {
	positions []float32
	indices   []uint32
}

// NewGeometry validates and copies positions and indices.
func NewGeometry(positions []float32, indices []uint32) (*Geometry, error) {
	if len(positions)%3 != 0 {
		return nil, &ShapeMismatchError{What: "position components", Want: len(positions) / 3 * 3, Got: len(positions)}
	}
	if len(indices)%3 != 0 {
		return nil, &ShapeMismatchError{What: "triangle indices", Want: len(indices) / 3 * 3, Got: len(indices)}
	}
	n := uint32(len(positions) / 3)
	for _, idx := range indices {
		if idx >= n {
			return nil, &ShapeMismatchError{What: "triangle vertex index bound", Want: int(n), Got: int(idx) + 1}
		}
	}
	return &Geometry{positions: slices.Clone(positions), indices: slices.Clone(indices)}, nil
}

// GeometryFromSurface converts a decoded surface.
func GeometryFromSurface(s *freesurfer.Surface) (*Geometry, error) {
	indices := make([]uint32, len(s.Faces))
	for i, f := range s.Faces {
		if f < 0 {
			return nil, &ShapeMismatchError{What: "non-negative triangle vertex index", Want: 0, Got: int(f)}
		}
		indices[i] = uint32(f)
	}
	return NewGeometry(s.Vertices, indices)
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.positions) / 3
}

// FaceCount returns the number of triangles.
func (g *Geometry) FaceCount() int {
	return len(g.indices) / 3
}

// Vertex returns the position of vertex i.
func (g *Geometry) Vertex(i int) math.Vec3 {
	p := g.positions[i*3 : i*3+3]
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Positions returns a copy of the flat xyz array.
func (g *Geometry) Positions() []float32 {
	return slices.Clone(g.positions)
}

// Indices returns a copy of the flat triangle index array.
func (g *Geometry) Indices() []uint32 {
	return slices.Clone(g.indices)
}
