package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/brainview/internal/brain"
	"github.com/Faultbox/brainview/internal/engine/camera"
	"github.com/Faultbox/brainview/internal/engine/debug"
	"github.com/Faultbox/brainview/internal/engine/scene"
	"github.com/Faultbox/brainview/internal/logger"
)

// Uploader receives mesh data before the loop starts.
type Uploader interface {
	AddMesh(name string, positions []float32, indices []uint32, colors []uint8) (int, error)
	SetBounds(lines []float32)
}

// Upload computes the scene bounds, sends every mesh and the bounds
// wireframe to u and frames cam on the scene.
func Upload(u Uploader, cam *camera.Controller, meshes ...*brain.ColoredMesh) (scene.Bounds, error) {
	geoms := make([]scene.Geometry, len(meshes))
	for i, m := range meshes {
		geoms[i] = m
	}
	bounds, err := scene.ComputeBounds(geoms...)
	if err != nil {
		return scene.Bounds{}, err
	}
	lo, hi := bounds.Box.Min.Array(), bounds.Box.Max.Array()
	logger.Info("scene bounds",
		zap.Float32s("min", lo[:]),
		zap.Float32s("max", hi[:]),
		zap.Float32("radius", bounds.Radius),
	)

	for _, m := range meshes {
		positions, indices, colors := m.RenderData()
		if _, err := u.AddMesh(m.Name(), positions, indices, colors); err != nil {
			return scene.Bounds{}, fmt.Errorf("uploading %s: %w", m.Name(), err)
		}
	}
	u.SetBounds(debug.BoundsWireframe(bounds.Box, debug.DefaultBoundsPadding))

	cam.Frame(bounds.Center, bounds.Radius)
	return bounds, nil
}
