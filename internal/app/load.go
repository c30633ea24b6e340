package app

import (
	"fmt"
	"image/color"

	"github.com/Faultbox/brainview/internal/brain"
	"github.com/Faultbox/brainview/internal/colormap"
	"github.com/Faultbox/brainview/internal/config"
	"github.com/Faultbox/brainview/internal/engine/camera"
)

// BrainOptions converts the subject coloring settings.
func BrainOptions(s config.SubjectConfig) (brain.Options, error) {
	g, err := colormap.Named(s.Gradient)
	if err != nil {
		return brain.Options{}, err
	}
	return brain.Options{
		Gradient:        g,
		UnmatchedRegion: s.UnmatchedRegion,
		Inside:          rgba(s.InsideColor),
		Outside:         rgba(s.OutsideColor),
	}, nil
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// CameraConfig converts the scene camera settings. Field of view and near
// plane keep their defaults.
func CameraConfig(s config.SceneConfig) camera.Config {
	cfg := camera.DefaultConfig()
	cfg.RotateSpeed = s.RotateSpeed
	cfg.PanSpeed = s.PanSpeed
	cfg.KeyZoomSpeed = s.KeyZoomSpeed
	cfg.WheelZoomSpeed = s.WheelZoomSpeed
	cfg.AutoRotateSpeed = s.AutoRotateSpeed
	cfg.Framing = s.Framing
	return cfg
}

// LoadBrain builds the hemispheres selected by the subject settings.
func LoadBrain(s config.SubjectConfig) (*brain.Brain, error) {
	opts, err := BrainOptions(s)
	if err != nil {
		return nil, err
	}
	l := brain.NewLoader(s.BaseDir)
	l.Options = opts

	switch s.Mode {
	case config.ModeShort:
		kind, err := brain.ParseDisplayKind(s.Kind)
		if err != nil {
			return nil, err
		}
		return l.LoadBrain(s.Surface, s.Data, kind)
	case config.ModeBase:
		left, err := hemisphereSpec(s.Left)
		if err != nil {
			return nil, fmt.Errorf("left hemisphere: %w", err)
		}
		right, err := hemisphereSpec(s.Right)
		if err != nil {
			return nil, fmt.Errorf("right hemisphere: %w", err)
		}
		return l.LoadHemispheres(left, right)
	default:
		return nil, &brain.ConfigurationError{Field: "mode", Value: s.Mode}
	}
}

// hemisphereSpec returns nil for a skipped hemisphere.
func hemisphereSpec(h config.HemisphereConfig) (*brain.HemisphereSpec, error) {
	if h.Kind == config.KindNone {
		return nil, nil
	}
	kind, err := brain.ParseDisplayKind(h.Kind)
	if err != nil {
		return nil, err
	}
	return &brain.HemisphereSpec{Surface: h.Surface, Data: h.Data, Kind: kind}, nil
}
