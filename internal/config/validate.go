package config

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/Faultbox/brainview/internal/brain"
	"github.com/Faultbox/brainview/internal/colormap"
	"github.com/Faultbox/brainview/internal/engine/debug"
	"github.com/Faultbox/brainview/internal/logger"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	add := func(e error) { err = multierr.Append(err, e) }

	s := c.Scene
	if s.Width <= 0 || s.Height <= 0 {
		add(fmt.Errorf("scene: window size must be positive, got %dx%d", s.Width, s.Height))
	}
	for name, v := range map[string]float32{
		"rotate_speed":      s.RotateSpeed,
		"pan_speed":         s.PanSpeed,
		"key_zoom_speed":    s.KeyZoomSpeed,
		"wheel_zoom_speed":  s.WheelZoomSpeed,
		"auto_rotate_speed": s.AutoRotateSpeed,
	} {
		if v < 0 {
			add(fmt.Errorf("scene: %s must not be negative, got %v", name, v))
		}
	}
	if s.Framing <= 0 {
		add(fmt.Errorf("scene: framing must be positive, got %v", s.Framing))
	}
	if s.Ambient < 0 || s.Ambient > 1 {
		add(fmt.Errorf("scene: ambient must be in [0, 1], got %v", s.Ambient))
	}
	for i, v := range s.Background {
		if v < 0 || v > 1 {
			add(fmt.Errorf("scene: background component %d must be in [0, 1], got %v", i, v))
		}
	}
	if s.Multisample < 0 {
		add(fmt.Errorf("scene: multisample must not be negative, got %d", s.Multisample))
	}

	add(c.Subject.validate())

	if _, e := debug.ParseFormat(c.Screenshot.Format); e != nil {
		add(fmt.Errorf("screenshot: %w", e))
	}
	if _, e := logger.ParseLevel(c.Logging.Level); e != nil {
		add(fmt.Errorf("logging: %w", e))
	}
	return err
}

func (s SubjectConfig) validate() error {
	var err error
	add := func(e error) { err = multierr.Append(err, e) }

	switch s.Mode {
	case ModeBase:
		if s.Left.Kind == KindNone && s.Right.Kind == KindNone {
			add(&brain.ConfigurationError{Field: "hemisphere kinds", Value: KindNone, Reason: "at least one hemisphere must be shown"})
		}
		for _, h := range []HemisphereConfig{s.Left, s.Right} {
			if h.Kind == KindNone {
				continue
			}
			if _, e := brain.ParseDisplayKind(h.Kind); e != nil {
				add(e)
			}
		}
	case ModeShort:
		if _, e := brain.ParseDisplayKind(s.Kind); e != nil {
			add(e)
		}
	default:
		add(&brain.ConfigurationError{Field: "mode", Value: s.Mode, Reason: `must be "fs_base" or "fs_short"`})
	}

	if _, e := colormap.Named(s.Gradient); e != nil {
		add(&brain.ConfigurationError{Field: "gradient", Value: s.Gradient, Reason: "available: " + strings.Join(colormap.Names(), ", ")})
	}
	if s.UnmatchedRegion < 0 {
		add(&brain.ConfigurationError{Field: "unmatched region index", Value: strconv.Itoa(s.UnmatchedRegion), Reason: "must not be negative"})
	}
	return err
}
