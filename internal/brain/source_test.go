package brain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/brainview/internal/colormap"
)

func TestScalarSourceMatchesEncoder(t *testing.T) {
	values := []float32{3, -2, 7.5, 0}
	src := NewScalarSource(values, nil)
	assert.Equal(t, Scalar, src.Kind())

	got, err := src.Colors()
	require.NoError(t, err)
	want, err := colormap.Encode(values, colormap.Default())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCategoricalSourceColors(t *testing.T) {
	src := NewCategoricalSource(testAnnot())
	assert.Equal(t, Categorical, src.Kind())

	got, err := src.Colors()
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		60, 20, 220, 255,
		220, 20, 20, 255,
		60, 20, 220, 255,
		25, 5, 25, 255, // unmatched vertex takes region 0
	}, got)
}

func TestCategoricalSourceUnmatchedRegion(t *testing.T) {
	src := NewCategoricalSource(testAnnot())
	src.UnmatchedRegion = 2

	got, err := src.Colors()
	require.NoError(t, err)
	assert.Equal(t, []uint8{220, 20, 20, 255}, got[12:16])
}

func TestCategoricalSourceUnmatchedRegionOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3} {
		src := NewCategoricalSource(testAnnot())
		src.UnmatchedRegion = idx

		_, err := src.Colors()
		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr, "index %d", idx)
	}
}

func TestBinaryMaskSourceColors(t *testing.T) {
	// Rows reference vertices 0 and 2.
	src := NewBinaryMaskSource(testLabel(1, 1), 4)
	assert.Equal(t, BinaryMask, src.Kind())

	got, err := src.Colors()
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		255, 0, 0, 255,
		255, 255, 255, 255,
		255, 0, 0, 255,
		255, 255, 255, 255,
	}, got)
}

func TestBinaryMaskSourceCustomColors(t *testing.T) {
	src := NewBinaryMaskSource(testLabel(0, 0), 3)
	src.Inside.G = 128
	src.Outside.A = 0

	got, err := src.Colors()
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 128, 0, 255, 255, 255, 255, 0, 255, 128, 0, 255}, got)
}

func TestBinaryMaskSourceNotBinary(t *testing.T) {
	src := NewBinaryMaskSource(testLabel(0.2, 0.9, 0.2), 8)

	_, err := src.Colors()
	var nb *NotBinaryError
	require.ErrorAs(t, err, &nb)
	assert.Equal(t, 2, nb.DistinctValues)
}

func TestBinaryMaskSourceVertexOutOfRange(t *testing.T) {
	// Second row references vertex 2 of a 2-vertex surface.
	src := NewBinaryMaskSource(testLabel(1, 1), 2)

	_, err := src.Colors()
	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, 2, sm.Want)
	assert.Equal(t, 3, sm.Got)
}

func TestBinaryMaskSourceEmptyLabel(t *testing.T) {
	got, err := NewBinaryMaskSource(testLabel(), 2).Colors()
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 255, 255, 255, 255, 255, 255, 255}, got)
}

func TestScalarSourceEmpty(t *testing.T) {
	_, err := NewScalarSource(nil, nil).Colors()
	assert.True(t, errors.Is(err, colormap.ErrDegenerateRange))
}
