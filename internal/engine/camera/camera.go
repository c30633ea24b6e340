// Package camera implements the orbit camera driven by viewer input.
package camera

import (
	gomath "math"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/brainview/internal/engine/input"
	"github.com/Faultbox/brainview/pkg/math"
)

// Orbit sensitivity in radians per pixel, before RotateSpeed.
const radiansPerPixel = 0.001

// maxPitch keeps the eye short of the poles, where the up vector degenerates.
const maxPitch = math32.Pi/2 - 0.01

// translateSteps divides the framing distance into free-translate steps.
const translateSteps = 40

// Config holds camera tuning.
type Config struct {
	RotateSpeed    float32
	PanSpeed       float32
	KeyZoomSpeed   float32
	WheelZoomSpeed float32
	// AutoRotateSpeed is in radians per millisecond.
	AutoRotateSpeed float32
	// Framing multiplies the scene radius to get the initial eye distance.
	Framing float32
	// FovY is in degrees.
	FovY float32
	Near float32
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		RotateSpeed:     3.0,
		PanSpeed:        5.0,
		KeyZoomSpeed:    5.0,
		WheelZoomSpeed:  5.0,
		AutoRotateSpeed: 0.0005,
		Framing:         3.0,
		FovY:            45,
		Near:            0.1,
	}
}

// Controller owns the view state. All changes happen on discrete input
// events except the aspect ratio, which follows the viewport.
type Controller struct {
	cfg Config

	eye    math.Vec3
	target math.Vec3
	up     math.Vec3

	fovY   float32
	aspect float32
	near   float32
	far    float32

	minDistance float32
	step        float32

	orbiting   bool
	autoRotate bool
}

// New returns a controller framing a unit sphere at the origin.
func New(cfg Config) *Controller {
	c := &Controller{
		cfg:        cfg,
		up:         math.Vec3{Y: 1},
		fovY:       cfg.FovY * math32.Pi / 180,
		aspect:     1,
		near:       cfg.Near,
		autoRotate: true,
	}
	c.Frame(math.Vec3{}, 1)
	return c
}

// Frame places the eye so that a sphere of radius around center is in view.
func (c *Controller) Frame(center math.Vec3, radius float32) {
	dist := radius * c.cfg.Framing
	if dist <= 0 {
		dist = 1
	}
	dir := math.Vec3{X: 0.6, Y: 0.3, Z: 1.0}.Normalize()

	c.target = center
	c.eye = center.Add(dir.Scale(dist))
	c.far = max(1000, 4*dist)
	c.minDistance = max(radius*0.01, c.near)
	c.step = dist / translateSteps
}

// SetViewport updates the aspect ratio. Degenerate sizes are ignored.
func (c *Controller) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.aspect = float32(width) / float32(height)
	}
}

// Handle applies one input event.
func (c *Controller) Handle(ev input.Event) {
	switch ev.Type {
	case input.EventMouseDown, input.EventMouseUp:
		c.orbiting = ev.Type == input.EventMouseDown && ev.Button == input.ButtonLeft

	case input.EventMouseMove:
		if c.orbiting {
			c.Orbit(float32(ev.DX), float32(ev.DY))
		}

	case input.EventMouseWheel:
		c.Zoom(ev.WheelY * c.cfg.WheelZoomSpeed)

	case input.EventKeyDown:
		c.handleKey(ev.Key)
	}
}

func (c *Controller) handleKey(k input.Key) {
	s := c.step
	switch k {
	case input.KeyP:
		c.autoRotate = !c.autoRotate

	case input.KeyW:
		c.Translate(math.Vec3{X: s})
	case input.KeyS:
		c.Translate(math.Vec3{X: -s})
	case input.KeyA:
		c.Translate(math.Vec3{Y: s})
	case input.KeyD:
		c.Translate(math.Vec3{Y: -s})
	case input.KeyR:
		c.Translate(math.Vec3{Z: s})
	case input.KeyF:
		c.Translate(math.Vec3{Z: -s})

	case input.KeyLeft:
		c.Pan(c.cfg.PanSpeed, 0)
	case input.KeyRight:
		c.Pan(-c.cfg.PanSpeed, 0)
	case input.KeyUp:
		c.Pan(0, c.cfg.PanSpeed)
	case input.KeyDown:
		c.Pan(0, -c.cfg.PanSpeed)

	case input.KeyPageUp:
		c.Zoom(c.cfg.KeyZoomSpeed)
	case input.KeyPageDown:
		c.Zoom(-c.cfg.KeyZoomSpeed)
	}
}

// Orbit rotates the eye around the target by dx, dy pixels of mouse motion.
func (c *Controller) Orbit(dx, dy float32) {
	offset := c.eye.Sub(c.target)
	r := offset.Length()
	if r == 0 {
		return
	}
	yaw := math32.Atan2(offset.X, offset.Z)
	pitch := math32.Asin(clamp(offset.Y/r, -1, 1))

	sens := c.cfg.RotateSpeed * radiansPerPixel
	yaw -= dx * sens
	pitch = clamp(pitch+dy*sens, -maxPitch, maxPitch)

	c.eye = c.target.Add(math.Vec3{
		X: r * math32.Cos(pitch) * math32.Sin(yaw),
		Y: r * math32.Sin(pitch),
		Z: r * math32.Cos(pitch) * math32.Cos(yaw),
	})
}

// Zoom moves the eye toward the target by delta world units, or away for a
// negative delta. The eye stops at the minimum distance.
func (c *Controller) Zoom(delta float32) {
	offset := c.eye.Sub(c.target)
	dist := offset.Length()
	if dist == 0 {
		return
	}
	next := max(dist-delta, c.minDistance)
	c.eye = c.target.Add(offset.Scale(next / dist))
}

// Pan shifts eye and target together; positive x moves the view left,
// positive y moves it up.
func (c *Controller) Pan(x, y float32) {
	right := c.Right()
	up := right.Cross(c.Forward())
	c.Translate(right.Scale(-x).Add(up.Scale(y)))
}

// Translate moves eye and target by d.
func (c *Controller) Translate(d math.Vec3) {
	c.eye = c.eye.Add(d)
	c.target = c.target.Add(d)
}

// Forward returns the unit view direction.
func (c *Controller) Forward() math.Vec3 {
	return c.target.Sub(c.eye).Normalize()
}

// Right returns the unit camera right direction.
func (c *Controller) Right() math.Vec3 {
	return c.Forward().Cross(c.up).Normalize()
}

// ToggleAutoRotate flips auto-rotation.
func (c *Controller) ToggleAutoRotate() {
	c.autoRotate = !c.autoRotate
}

// AutoRotate reports whether the model spins.
func (c *Controller) AutoRotate() bool {
	return c.autoRotate
}

// Orbiting reports whether a left-button drag is in progress.
func (c *Controller) Orbiting() bool {
	return c.orbiting
}

func (c *Controller) Eye() math.Vec3    { return c.eye }
func (c *Controller) Target() math.Vec3 { return c.target }
func (c *Controller) Aspect() float32   { return c.aspect }
func (c *Controller) Far() float32      { return c.far }

// MinDistance is the closest the eye may get to the target.
func (c *Controller) MinDistance() float32 { return c.minDistance }

// Step is the free-translate distance per key press.
func (c *Controller) Step() float32 { return c.step }

// Distance returns the eye-target distance.
func (c *Controller) Distance() float32 {
	return c.eye.Distance(c.target)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Controller) ViewMatrix() math.Mat4 {
	return math.LookAt(c.eye, c.target, c.up)
}

// ProjectionMatrix returns the perspective projection.
func (c *Controller) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.fovY, c.aspect, c.near, c.far)
}

// ModelMatrix returns the rotation about world up after elapsed run time,
// or the identity when auto-rotation is off.
func (c *Controller) ModelMatrix(elapsed time.Duration) math.Mat4 {
	if !c.autoRotate {
		return math.Identity()
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	angle := gomath.Mod(ms*float64(c.cfg.AutoRotateSpeed), 2*gomath.Pi)
	return math.RotateY(float32(angle))
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
