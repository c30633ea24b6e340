// Package colormap turns per-vertex scalar data into RGBA vertex colors.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"cogentcore.org/core/colors/colormap"
)

// DefaultGradient is the gradient used for morphometry data unless configured otherwise.
const DefaultGradient = "Viridis"

// Alpha is the opacity written for every encoded vertex.
const Alpha uint8 = 255

// MissingColor is used for vertices without a finite value.
var MissingColor = color.RGBA{R: 245, G: 245, B: 245, A: Alpha}

// ErrUnknownGradient is returned by Named for names not in the catalogue.
var ErrUnknownGradient = errors.New("unknown gradient")

// Gradient maps a value in [0, 1] to a color.
type Gradient interface {
	At(t float32) color.RGBA
}

// GradientFunc adapts a function to the Gradient interface.
type GradientFunc func(t float32) color.RGBA

// At calls f(t).
func (f GradientFunc) At(t float32) color.RGBA {
	return f(t)
}

// catalogGradient evaluates a named map from the cogentcore catalogue.
type catalogGradient struct {
	m *colormap.Map
}

func (g catalogGradient) At(t float32) color.RGBA {
	r, gr, b, _ := g.m.Map(t).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(b >> 8), A: Alpha}
}

// Named returns the continuous gradient registered under name.
func Named(name string) (Gradient, error) {
	m, ok := colormap.AvailableMaps[name]
	if !ok || m.Indexed {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownGradient, name, Names())
	}
	return catalogGradient{m: m}, nil
}

// Default returns the default gradient.
func Default() Gradient {
	g, err := Named(DefaultGradient)
	if err != nil {
		panic(err)
	}
	return g
}

// Names lists the continuous gradients that Named accepts.
func Names() []string {
	names := make([]string, 0, len(colormap.AvailableMaps))
	for name, m := range colormap.AvailableMaps {
		if !m.Indexed {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
