package app

import (
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/brainview/internal/brain"
	"github.com/Faultbox/brainview/internal/config"
	"github.com/Faultbox/brainview/pkg/freesurfer"
)

func write(t *testing.T, path string, fn func(io.Writer) error) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, fn(f))
}

// subject writes lh/rh white surfaces with thickness and a cortex label.
func subject(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	surf := &freesurfer.Surface{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Faces:    []int32{0, 1, 2},
	}
	for _, h := range []string{"lh", "rh"} {
		write(t, filepath.Join(base, "surf", h+".white"), func(w io.Writer) error {
			return freesurfer.WriteSurface(w, surf)
		})
		write(t, filepath.Join(base, "surf", h+".thickness"), func(w io.Writer) error {
			return freesurfer.WriteCurv(w, &freesurfer.Curv{FaceCount: 1, Data: []float32{1, 2, 3}})
		})
		write(t, filepath.Join(base, "label", h+".cortex.label"), func(w io.Writer) error {
			return freesurfer.WriteLabel(w, &freesurfer.Label{
				Vertices: []int32{1},
				Coords:   [][3]float32{{1, 0, 0}},
				Values:   []float32{1},
			})
		})
	}
	return base
}

func TestBrainOptions(t *testing.T) {
	s := config.Default().Subject
	s.UnmatchedRegion = 3
	s.InsideColor = [4]uint8{0, 255, 0, 255}

	opts, err := BrainOptions(s)
	require.NoError(t, err)
	assert.NotNil(t, opts.Gradient)
	assert.Equal(t, 3, opts.UnmatchedRegion)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, opts.Inside)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, opts.Outside)

	s.Gradient = "NoSuchMap"
	_, err = BrainOptions(s)
	assert.Error(t, err)
}

func TestCameraConfig(t *testing.T) {
	sc := config.Default().Scene
	sc.RotateSpeed = 1
	sc.Framing = 2

	cfg := CameraConfig(sc)
	assert.Equal(t, float32(1), cfg.RotateSpeed)
	assert.Equal(t, float32(2), cfg.Framing)
	assert.Equal(t, sc.PanSpeed, cfg.PanSpeed)
	assert.Equal(t, sc.AutoRotateSpeed, cfg.AutoRotateSpeed)
	assert.Equal(t, float32(45), cfg.FovY)
}

func TestLoadBrainBaseMode(t *testing.T) {
	s := config.Default().Subject
	s.BaseDir = subject(t)

	b, err := LoadBrain(s)
	require.NoError(t, err)
	require.Len(t, b.Meshes(), 2)
	assert.Equal(t, "lh.white", b.Left.Name())
	assert.Equal(t, "rh.white", b.Right.Name())
	assert.Len(t, b.Left.Colors(), 3*4)
}

func TestLoadBrainSkipsNoneHemisphere(t *testing.T) {
	s := config.Default().Subject
	s.BaseDir = subject(t)
	s.Left.Kind = config.KindNone
	s.Right = config.HemisphereConfig{Surface: "rh.white", Kind: "label", Data: "rh.cortex.label"}

	b, err := LoadBrain(s)
	require.NoError(t, err)
	assert.Nil(t, b.Left)
	require.NotNil(t, b.Right)

	colors := b.Right.Colors()
	assert.Equal(t, []uint8{255, 255, 255, 255}, colors[0:4])
	assert.Equal(t, []uint8{255, 0, 0, 255}, colors[4:8])
}

func TestLoadBrainShortMode(t *testing.T) {
	s := config.Default().Subject
	s.BaseDir = subject(t)
	s.Mode = config.ModeShort

	b, err := LoadBrain(s)
	require.NoError(t, err)
	assert.Len(t, b.Meshes(), 2)
}

func TestLoadBrainMissingFile(t *testing.T) {
	s := config.Default().Subject
	s.BaseDir = subject(t)
	s.Right.Data = "rh.area"

	_, err := LoadBrain(s)
	var notFound *brain.FileNotFoundError
	require.True(t, errors.As(err, &notFound), "got %v", err)
	assert.Equal(t, brain.RoleCurvature, notFound.Role)
	assert.Contains(t, err.Error(), "right hemisphere")
}

func TestLoadBrainBadKind(t *testing.T) {
	s := config.Default().Subject
	s.Left.Kind = "bogus"

	_, err := LoadBrain(s)
	var cfgErr *brain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, "bogus", cfgErr.Value)

	s = config.Default().Subject
	s.Mode = "fs_long"
	_, err = LoadBrain(s)
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, "mode", cfgErr.Field)
}
