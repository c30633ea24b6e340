package debug

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/brainview/pkg/math"
)

func TestGenerateBBoxWireframeVertices(t *testing.T) {
	v := GenerateBBoxWireframeVertices(0, 0, 0, 1, 2, 3)
	require.Len(t, v, BBoxWireframeVertexCount*3)
	for i := 0; i < len(v); i += 3 {
		assert.Contains(t, []float32{0, 1}, v[i])
		assert.Contains(t, []float32{0, 2}, v[i+1])
		assert.Contains(t, []float32{0, 3}, v[i+2])
	}
}

func TestBoundsWireframePadding(t *testing.T) {
	box := math.Box3{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	v := BoundsWireframe(box, 0.5)
	// Largest extent is 2, so each side grows by 1.
	assert.Equal(t, []float32{-2, -2, -2}, v[0:3])
	assert.Equal(t, []float32{2, -2, -2}, v[3:6])
}

func TestFlipRGBA(t *testing.T) {
	// Bottom row red, top row blue, in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := FlipRGBA(pixels, 1, 2)
	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, b)
	r, _, _, _ = img.At(0, 1).RGBA()
	assert.NotZero(t, r)
}

func TestCaptureFromPixels(t *testing.T) {
	for _, format := range []Format{FormatPNG, FormatBMP} {
		t.Run(string(format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "shots")
			sc := NewScreenshotCapture(dir, "brainview")
			sc.SetFormat(format)
			sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

			name, err := sc.CaptureFromPixels(make([]byte, 3*2*4), 3, 2)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "brainview_2024-03-01_12-30-00.000."+string(format)), name)

			f, err := os.Open(name)
			require.NoError(t, err)
			defer f.Close()
			cfg, got, err := image.DecodeConfig(f)
			require.NoError(t, err)
			assert.Equal(t, string(format), got)
			assert.Equal(t, 3, cfg.Width)
			assert.Equal(t, 2, cfg.Height)
		})
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")
	_, err := sc.CaptureFromPixels(make([]byte, 7), 2, 1)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "mismatch"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("bmp")
	require.NoError(t, err)
	assert.Equal(t, FormatBMP, f)

	_, err = ParseFormat("jpeg")
	assert.Error(t, err)
}

func TestSetFormatFallsBackToPNG(t *testing.T) {
	sc := NewScreenshotCapture("", "x")
	sc.SetFormat("tiff")
	assert.True(t, strings.HasSuffix(sc.GenerateFilename(), ".png"))
}
