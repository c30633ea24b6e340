// Package app wires configuration, data loading and the viewer together.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/brainview/internal/config"
	"github.com/Faultbox/brainview/internal/engine/camera"
	"github.com/Faultbox/brainview/internal/engine/debug"
	"github.com/Faultbox/brainview/internal/engine/input"
	"github.com/Faultbox/brainview/internal/engine/renderer"
	"github.com/Faultbox/brainview/internal/engine/window"
	"github.com/Faultbox/brainview/internal/logger"
	"github.com/Faultbox/brainview/internal/viewer"
)

// boundsColor is the overlay line color.
var boundsColor = [4]float32{0.3, 0.3, 0.3, 1}

// App is a running viewer session.
type App struct {
	window   *window.Window
	renderer *renderer.Renderer
	viewer   *viewer.Viewer
}

// New loads the subject, opens the window and uploads the meshes. Data is
// loaded before any window exists so that bad input fails fast.
func New(cfg *config.Config) (*App, error) {
	b, err := LoadBrain(cfg.Subject)
	if err != nil {
		return nil, err
	}

	a := &App{}
	sc := cfg.Scene
	a.window, err = window.New(window.Config{
		Title:       sc.Title,
		Width:       sc.Width,
		Height:      sc.Height,
		Fullscreen:  sc.Fullscreen,
		VSync:       sc.VSync,
		Multisample: sc.Multisample,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, the GL context must exist.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       w,
		Height:      h,
		Background:  sc.Background,
		Lighting:    sc.Lighting,
		Ambient:     sc.Ambient,
		BoundsColor: boundsColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	cam := camera.New(CameraConfig(sc))
	if !sc.AutoRotate {
		cam.ToggleAutoRotate()
	}
	if _, err := viewer.Upload(a.renderer, cam, b.Meshes()...); err != nil {
		a.Close()
		return nil, fmt.Errorf("uploading meshes: %w", err)
	}

	shots := debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)
	format, err := debug.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		a.Close()
		return nil, err
	}
	shots.SetFormat(format)

	a.viewer = viewer.New(a.window, input.New(), a.renderer, cam, viewer.Options{
		ShowBounds:  sc.ShowBounds,
		Screenshots: shots,
	})
	logger.Info("session ready", zap.Int("meshes", a.renderer.MeshCount()))
	return a, nil
}

// Run drives the render loop until the window closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	return a.viewer.Run(ctx)
}

// Close releases GPU and window resources.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
