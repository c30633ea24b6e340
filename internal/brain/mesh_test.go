package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/brainview/internal/colormap"
)

func testGeometry(t *testing.T) *Geometry {
	t.Helper()
	g, err := GeometryFromSurface(tetrahedron(0))
	require.NoError(t, err)
	return g
}

func TestNewGeometryValidation(t *testing.T) {
	tests := []struct {
		name      string
		positions []float32
		indices   []uint32
	}{
		{"ragged positions", []float32{0, 0, 0, 1}, nil},
		{"ragged indices", []float32{0, 0, 0, 1, 1, 1}, []uint32{0, 1}},
		{"index out of range", []float32{0, 0, 0, 1, 1, 1, 2, 2, 2}, []uint32{0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeometry(tt.positions, tt.indices)
			var sm *ShapeMismatchError
			assert.ErrorAs(t, err, &sm)
		})
	}
}

func TestGeometryCopies(t *testing.T) {
	positions := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	g, err := NewGeometry(positions, []uint32{0, 1, 2})
	require.NoError(t, err)

	positions[0] = 42
	assert.Equal(t, float32(0), g.Vertex(0).X)

	out := g.Positions()
	out[3] = 42
	assert.Equal(t, float32(1), g.Vertex(1).X)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.FaceCount())
}

func TestNewColoredMeshChecksLength(t *testing.T) {
	g := testGeometry(t)

	_, err := NewColoredMesh(g, make([]uint8, 15))
	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, 16, sm.Want)
	assert.Equal(t, 15, sm.Got)

	m, err := NewColoredMesh(g, make([]uint8, 16))
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
}

func TestColoredMeshIsImmutable(t *testing.T) {
	colors := make([]uint8, 16)
	m, err := NewColoredMesh(testGeometry(t), colors)
	require.NoError(t, err)

	colors[0] = 9
	got := m.Colors()
	assert.Equal(t, uint8(0), got[0])
	got[1] = 9
	assert.Equal(t, uint8(0), m.Colors()[1])
}

func TestFromScalars(t *testing.T) {
	g := testGeometry(t)
	values := []float32{0, 1, 2, 3}

	m, err := FromScalars(g, values, nil)
	require.NoError(t, err)
	want, err := colormap.Encode(values, colormap.Default())
	require.NoError(t, err)
	assert.Equal(t, want, m.Colors())
}

func TestFromScalarsLengthMismatch(t *testing.T) {
	_, err := FromScalars(testGeometry(t), []float32{0, 1, 2}, nil)
	var sm *ShapeMismatchError
	assert.ErrorAs(t, err, &sm)
}

func TestRenderData(t *testing.T) {
	m, err := NewColoredMesh(testGeometry(t), make([]uint8, 16))
	require.NoError(t, err)
	m = m.WithName("lh.white")

	positions, indices, colors := m.RenderData()
	assert.Len(t, positions, 12)
	assert.Len(t, indices, 12)
	assert.Len(t, colors, 16)
	assert.Equal(t, "lh.white", m.Name())
}
