package brain

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/brainview/pkg/freesurfer"
)

// tetrahedron returns a 4-vertex closed surface shifted along x by dx.
func tetrahedron(dx float32) *freesurfer.Surface {
	return &freesurfer.Surface{
		Comment: "created by brainview tests",
		Vertices: []float32{
			0 + dx, 0, 0,
			1 + dx, 0, 0,
			0 + dx, 1, 0,
			0 + dx, 0, 1,
		},
		Faces: []int32{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3},
	}
}

func testAnnot() *freesurfer.Annot {
	regions := []freesurfer.Region{
		{Index: 0, Name: "unknown", R: 25, G: 5, B: 25},
		{Index: 1, Name: "precentral", R: 60, G: 20, B: 220},
		{Index: 2, Name: "postcentral", R: 220, G: 20, B: 20},
	}
	return &freesurfer.Annot{
		// Vertex 3 carries an id that matches no region.
		Labels:     []int32{regions[1].ID(), regions[2].ID(), regions[1].ID(), 12345},
		ColorTable: freesurfer.ColorTable{Filename: "test.ctab", Regions: regions},
	}
}

func testLabel(values ...float32) *freesurfer.Label {
	l := &freesurfer.Label{Comment: "test label"}
	for i, v := range values {
		l.Vertices = append(l.Vertices, int32(i*2))
		l.Coords = append(l.Coords, [3]float32{})
		l.Values = append(l.Values, v)
	}
	return l
}

func writeFile(t *testing.T, path string, write func(io.Writer) error) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, write(f))
}

// writeSubject lays out a minimal two-hemisphere subject directory and
// returns its path.
func writeSubject(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for i, h := range []Hemisphere{Left, Right} {
		surf := tetrahedron(float32(i) * 5)
		writeFile(t, filepath.Join(base, surfDir, h.Prefix("white")), func(w io.Writer) error {
			return freesurfer.WriteSurface(w, surf)
		})
		writeFile(t, filepath.Join(base, surfDir, h.Prefix("curv")), func(w io.Writer) error {
			return freesurfer.WriteCurv(w, &freesurfer.Curv{FaceCount: 4, Data: []float32{-1, 0, 0.5, 1}})
		})
		writeFile(t, filepath.Join(base, labelDir, h.Prefix("aparc.annot")), func(w io.Writer) error {
			return freesurfer.WriteAnnot(w, testAnnot())
		})
		writeFile(t, filepath.Join(base, labelDir, h.Prefix("cortex.label")), func(w io.Writer) error {
			return freesurfer.WriteLabel(w, testLabel(1, 1))
		})
	}
	return base
}
