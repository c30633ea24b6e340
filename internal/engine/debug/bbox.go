// Package debug provides debug overlays and screenshot capture.
package debug

import "github.com/Faultbox/brainview/pkg/math"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// BoundsWireframe returns the wireframe of box grown by a fraction of its
// largest extent on every side, so the lines do not z-fight the surface.
func BoundsWireframe(box math.Box3, padding float32) []float32 {
	pad := box.Size().MaxComponent() * padding
	lo := box.Min.Sub(math.Vec3{X: pad, Y: pad, Z: pad})
	hi := box.Max.Add(math.Vec3{X: pad, Y: pad, Z: pad})
	return GenerateBBoxWireframeVertices(lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
}

// DefaultBoundsPadding is the default padding as a fraction of the box size.
const DefaultBoundsPadding = 0.02
