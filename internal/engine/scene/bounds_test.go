package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/brainview/pkg/math"
)

type points []math.Vec3

func (p points) VertexCount() int { return len(p) }
func (p points) Vertex(i int) math.Vec3 { return p[i] }

func cube(lo, hi float32) points {
	var p points
	for _, x := range []float32{lo, hi} {
		for _, y := range []float32{lo, hi} {
			for _, z := range []float32{lo, hi} {
				p = append(p, math.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return p
}

func TestComputeBoundsCube(t *testing.T) {
	b, err := ComputeBounds(cube(-1, 1))
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{}, b.Center)
	assert.Equal(t, float32(1), b.Radius)
	assert.Equal(t, math.Vec3{X: -1, Y: -1, Z: -1}, b.Box.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, b.Box.Max)
}

func TestComputeBoundsUnion(t *testing.T) {
	b, err := ComputeBounds(cube(-1, 1), cube(5, 6))
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{X: 2.5, Y: 2.5, Z: 2.5}, b.Center)
	assert.Equal(t, float32(3.5), b.Radius)
}

func TestComputeBoundsLargestAxis(t *testing.T) {
	b, err := ComputeBounds(points{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 2, Z: 4}})
	require.NoError(t, err)
	assert.Equal(t, float32(5), b.Radius)
	assert.Equal(t, math.Vec3{X: 5, Y: 1, Z: 2}, b.Center)
}

func TestComputeBoundsSinglePoint(t *testing.T) {
	b, err := ComputeBounds(points{{X: 3, Y: 4, Z: 5}})
	require.NoError(t, err)
	assert.Equal(t, float32(0), b.Radius)
	assert.Equal(t, math.Vec3{X: 3, Y: 4, Z: 5}, b.Center)
}

func TestComputeBoundsEmpty(t *testing.T) {
	_, err := ComputeBounds()
	assert.True(t, errors.Is(err, ErrEmptyScene))

	_, err = ComputeBounds(points{}, points{})
	assert.True(t, errors.Is(err, ErrEmptyScene))
}

func TestComputeBoundsIgnoresEmptyMesh(t *testing.T) {
	b, err := ComputeBounds(points{}, cube(-2, 2))
	require.NoError(t, err)
	assert.Equal(t, float32(2), b.Radius)
}
