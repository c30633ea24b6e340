// Package scene computes the extent of the meshes in view.
package scene

import (
	"errors"

	"github.com/Faultbox/brainview/pkg/math"
)

// ErrEmptyScene is returned when bounds are requested for a scene without
// any vertex.
var ErrEmptyScene = errors.New("scene has no vertices")

// Geometry is anything with indexed vertex positions.
type Geometry interface {
	VertexCount() int
	Vertex(i int) math.Vec3
}

// Bounds is the axis-aligned box around a set of meshes.
type Bounds struct {
	Box    math.Box3
	Center math.Vec3
	// Radius is half the largest single-axis extent.
	Radius float32
}

// ComputeBounds returns the union box of all vertices of all meshes.
func ComputeBounds(meshes ...Geometry) (Bounds, error) {
	box := math.EmptyBox()
	for _, m := range meshes {
		for i := range m.VertexCount() {
			box = box.ExpandByPoint(m.Vertex(i))
		}
	}
	if box.IsEmpty() {
		return Bounds{}, ErrEmptyScene
	}
	return Bounds{
		Box:    box,
		Center: box.Center(),
		Radius: box.Size().MaxComponent() / 2,
	}, nil
}
