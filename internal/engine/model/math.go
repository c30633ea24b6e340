// Package model derives per-vertex shading attributes from triangle meshes.
package model

import (
	"github.com/Faultbox/brainview/pkg/math"
)

// fallbackNormal is used for vertices that belong to no non-degenerate face.
var fallbackNormal = math.Vec3{Y: 1}

// VertexNormals returns one unit normal (xyz) per vertex, the area-weighted
// average of the normals of the faces around it. Face winding is
// counter-clockwise.
func VertexNormals(positions []float32, indices []uint32) []float32 {
	n := len(positions) / 3
	acc := make([]math.Vec3, n)

	for f := 0; f+2 < len(indices); f += 3 {
		i0, i1, i2 := indices[f], indices[f+1], indices[f+2]
		if int(i0) >= n || int(i1) >= n || int(i2) >= n {
			continue
		}
		p0 := vertex(positions, i0)
		// Unnormalized cross product is proportional to face area.
		fn := vertex(positions, i1).Sub(p0).Cross(vertex(positions, i2).Sub(p0))
		acc[i0] = acc[i0].Add(fn)
		acc[i1] = acc[i1].Add(fn)
		acc[i2] = acc[i2].Add(fn)
	}

	out := make([]float32, 0, n*3)
	for _, v := range acc {
		nv := fallbackNormal
		if v.Length() > 1e-12 {
			nv = v.Normalize()
		}
		out = append(out, nv.X, nv.Y, nv.Z)
	}
	return out
}

func vertex(positions []float32, i uint32) math.Vec3 {
	return math.Vec3{X: positions[3*i], Y: positions[3*i+1], Z: positions[3*i+2]}
}
