// Package viewer runs the interactive render loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/brainview/internal/engine/camera"
	"github.com/Faultbox/brainview/internal/engine/input"
	"github.com/Faultbox/brainview/internal/logger"
	"github.com/Faultbox/brainview/pkg/math"
)

// EventSource yields the input events queued since the last call.
type EventSource interface {
	Poll() []input.Event
}

// Window presents frames and reports the drawable size in pixels.
type Window interface {
	DrawableSize() (width, height int)
	SwapBuffers()
}

// Renderer draws uploaded meshes.
type Renderer interface {
	SetViewport(width, height int)
	Clear()
	MeshCount() int
	DrawMesh(i int, model, view, projection math.Mat4) error
	DrawBounds(model, view, projection math.Mat4) error
	ReadPixels() (pixels []byte, width, height int, err error)
}

// Screenshotter saves bottom-up RGBA pixels and returns the file name.
type Screenshotter interface {
	CaptureFromPixels(pixels []byte, width, height int) (string, error)
}

// Options tune the loop.
type Options struct {
	// ShowBounds starts with the bounds overlay visible.
	ShowBounds bool
	// Screenshots handles F12; nil disables it.
	Screenshots Screenshotter
	// FPSInterval is how often frame rate is logged at debug level.
	FPSInterval time.Duration
}

// Viewer owns the camera and drives one frame per Step.
type Viewer struct {
	window   Window
	events   EventSource
	renderer Renderer
	camera   *camera.Controller
	opts     Options

	now   func() time.Time
	start time.Time

	showBounds     bool
	wantScreenshot bool
	closed         bool

	frames    int
	fpsFrames int
	fpsTimer  time.Time
}

// New wires a viewer. The camera is expected to be framed already.
func New(w Window, events EventSource, r Renderer, cam *camera.Controller, opts Options) *Viewer {
	if opts.FPSInterval <= 0 {
		opts.FPSInterval = 5 * time.Second
	}
	return &Viewer{
		window:     w,
		events:     events,
		renderer:   r,
		camera:     cam,
		opts:       opts,
		now:        time.Now,
		showBounds: opts.ShowBounds,
	}
}

// Closed reports whether a quit request was seen.
func (v *Viewer) Closed() bool {
	return v.closed
}

// Frames returns the number of frames presented.
func (v *Viewer) Frames() int {
	return v.frames
}

// ShowBounds reports whether the bounds overlay is drawn.
func (v *Viewer) ShowBounds() bool {
	return v.showBounds
}

// Run steps until the window closes, ctx is cancelled or a frame fails.
func (v *Viewer) Run(ctx context.Context) error {
	logger.Info("starting render loop", zap.Int("meshes", v.renderer.MeshCount()))
	defer func() {
		logger.Info("render loop stopped", zap.Int("frames", v.frames))
	}()

	for !v.closed {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := v.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step renders one frame: viewport and aspect, queued events in order,
// model rotation, one draw per mesh, present.
func (v *Viewer) Step() error {
	now := v.now()
	if v.start.IsZero() {
		v.start = now
		v.fpsTimer = now
	}

	width, height := v.window.DrawableSize()
	v.renderer.SetViewport(width, height)
	v.camera.SetViewport(width, height)

	for _, ev := range v.events.Poll() {
		v.handle(ev)
	}
	if v.closed {
		return nil
	}

	model := v.camera.ModelMatrix(now.Sub(v.start))
	view := v.camera.ViewMatrix()
	projection := v.camera.ProjectionMatrix()

	v.renderer.Clear()
	for i := range v.renderer.MeshCount() {
		if err := v.renderer.DrawMesh(i, model, view, projection); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
	}
	if v.showBounds {
		if err := v.renderer.DrawBounds(model, view, projection); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
	}

	if v.wantScreenshot {
		v.wantScreenshot = false
		v.screenshot()
	}

	v.window.SwapBuffers()
	v.frames++
	v.logFPS(now)
	return nil
}

func (v *Viewer) handle(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		v.closed = true
		return
	case input.EventKeyDown:
		switch ev.Key {
		case input.KeyEscape:
			v.closed = true
			return
		case input.KeyB:
			v.showBounds = !v.showBounds
			return
		case input.KeyF12:
			if !ev.Repeat {
				v.wantScreenshot = true
			}
			return
		}
	}
	v.camera.Handle(ev)
}

// screenshot failures are logged; they never stop the loop.
func (v *Viewer) screenshot() {
	if v.opts.Screenshots == nil {
		return
	}
	pixels, w, h, err := v.renderer.ReadPixels()
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	name, err := v.opts.Screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (v *Viewer) logFPS(now time.Time) {
	v.fpsFrames++
	if elapsed := now.Sub(v.fpsTimer); elapsed >= v.opts.FPSInterval {
		logger.Debug("fps",
			zap.Float64("fps", float64(v.fpsFrames)/elapsed.Seconds()),
			zap.Duration("elapsed", now.Sub(v.start)),
		)
		v.fpsFrames = 0
		v.fpsTimer = now
	}
}
