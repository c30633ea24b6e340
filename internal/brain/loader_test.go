package brain

import (
	"errors"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/brainview/internal/colormap"
	"github.com/Faultbox/brainview/pkg/freesurfer"
)

func TestParseDisplayKind(t *testing.T) {
	for s, want := range map[string]DisplayKind{"curv": Scalar, "annot": Categorical, "label": BinaryMask} {
		got, err := ParseDisplayKind(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	for _, s := range []string{"", "bogus", "Curv", "annotation"} {
		_, err := ParseDisplayKind(s)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr, "kind %q", s)
		assert.Equal(t, s, cfgErr.Value)
	}
}

func TestLayoutPaths(t *testing.T) {
	l := Layout{Base: "/subjects/bert"}
	assert.Equal(t, "/subjects/bert/surf/lh.white", l.SurfacePath("lh.white"))
	assert.Equal(t, "/subjects/bert/surf/lh.curv", l.DataPath("lh.curv", Scalar))
	assert.Equal(t, "/subjects/bert/label/lh.aparc.annot", l.DataPath("lh.aparc.annot", Categorical))
	assert.Equal(t, "/subjects/bert/label/lh.cortex.label", l.DataPath("lh.cortex.label", BinaryMask))
	assert.Equal(t, "/elsewhere/lh.pial", l.SurfacePath("/elsewhere/lh.pial"))
}

func TestLoadScalar(t *testing.T) {
	base := writeSubject(t)

	m, err := NewLoader(base).Load("lh.white", "lh.curv", Scalar)
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, "lh.white", m.Name())

	want, err := colormap.Encode([]float32{-1, 0, 0.5, 1}, colormap.Default())
	require.NoError(t, err)
	assert.Equal(t, want, m.Colors())
}

func TestLoadCategorical(t *testing.T) {
	base := writeSubject(t)

	m, err := NewLoader(base).LoadNamed("lh.white", "lh.aparc.annot", "annot")
	require.NoError(t, err)
	want, err := NewCategoricalSource(testAnnot()).Colors()
	require.NoError(t, err)
	assert.Equal(t, want, m.Colors())
}

func TestLoadBinaryMask(t *testing.T) {
	base := writeSubject(t)

	m, err := NewLoader(base).LoadNamed("rh.white", "rh.cortex.label", "label")
	require.NoError(t, err)
	colors := m.Colors()
	assert.Equal(t, []uint8{255, 0, 0, 255}, colors[0:4])
	assert.Equal(t, []uint8{255, 255, 255, 255}, colors[4:8])
	assert.Equal(t, []uint8{255, 0, 0, 255}, colors[8:12])
}

func TestLoadNamedRejectsKindBeforeIO(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing"))

	_, err := l.LoadNamed("lh.white", "lh.curv", "bogus")
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	var nf *FileNotFoundError
	assert.False(t, errors.As(err, &nf))
}

func TestLoadMissingFiles(t *testing.T) {
	base := writeSubject(t)
	l := NewLoader(base)

	_, err := l.Load("lh.pial", "lh.curv", Scalar)
	var nf *FileNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, RoleSurface, nf.Role)
	assert.Equal(t, filepath.Join(base, "surf", "lh.pial"), nf.Path)

	tests := []struct {
		data string
		kind DisplayKind
		role Role
	}{
		{"lh.thickness", Scalar, RoleCurvature},
		{"lh.a2009s.annot", Categorical, RoleAnnotation},
		{"lh.V1.label", BinaryMask, RoleLabel},
	}
	for _, tt := range tests {
		_, err := l.Load("lh.white", tt.data, tt.kind)
		var nf *FileNotFoundError
		require.ErrorAs(t, err, &nf, tt.data)
		assert.Equal(t, tt.role, nf.Role)
	}
}

func TestLoadDecodeErrors(t *testing.T) {
	base := writeSubject(t)
	// A curv file where a surface is expected has the wrong magic.
	writeFile(t, filepath.Join(base, "surf", "lh.broken"), func(w io.Writer) error {
		return freesurfer.WriteCurv(w, &freesurfer.Curv{Data: []float32{1, 2, 3, 4}})
	})

	_, err := NewLoader(base).Load("lh.broken", "lh.curv", Scalar)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, RoleSurface, de.Role)
	assert.ErrorIs(t, err, freesurfer.ErrInvalidMagic)

	// A surface file used as curvature.
	_, err = NewLoader(base).Load("lh.white", "lh.white", Scalar)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, RoleCurvature, de.Role)
}

func TestLoadCurvLengthMismatch(t *testing.T) {
	base := writeSubject(t)
	writeFile(t, filepath.Join(base, "surf", "lh.short"), func(w io.Writer) error {
		return freesurfer.WriteCurv(w, &freesurfer.Curv{Data: []float32{1, 2}})
	})

	_, err := NewLoader(base).Load("lh.white", "lh.short", Scalar)
	var sm *ShapeMismatchError
	assert.ErrorAs(t, err, &sm)
}

func TestLoadUsesOptions(t *testing.T) {
	base := writeSubject(t)
	l := NewLoader(base)
	l.Options.Gradient = colormap.GradientFunc(func(v float32) color.RGBA {
		return color.RGBA{R: uint8(v * 100), A: 255}
	})

	m, err := l.Load("lh.white", "lh.curv", Scalar)
	require.NoError(t, err)
	colors := m.Colors()
	assert.Equal(t, uint8(0), colors[0])
	assert.Equal(t, uint8(100), colors[12])
}
