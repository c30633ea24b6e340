package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Format is a screenshot image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat accepts "png" and "bmp".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPNG, FormatBMP:
		return f, nil
	}
	return "", fmt.Errorf("unknown screenshot format %q", s)
}

func (f Format) encode(w io.Writer, img image.Image) error {
	if f == FormatBMP {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// ScreenshotCapture writes framebuffer captures to timestamped files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    Format
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing PNG files.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    FormatPNG,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// SetFormat selects the image format; unknown formats fall back to PNG.
func (sc *ScreenshotCapture) SetFormat(f Format) {
	if f != FormatBMP {
		f = FormatPNG
	}
	sc.format = f
}

// CaptureFromPixels saves RGBA pixel data of width*height*4 bytes.
// Rows are flipped since OpenGL has its origin at the bottom-left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	return sc.CaptureFromImage(FlipRGBA(pixels, width, height))
}

// CaptureFromImage saves img and returns the file name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := sc.format.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", sc.format, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	return filename, nil
}

// GenerateFilename returns the next screenshot file name without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", sc.prefix, timestamp, sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// FlipRGBA copies bottom-up RGBA rows into a top-down image.
func FlipRGBA(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img
}
