// Package renderer draws colored surface meshes with OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/brainview/internal/engine/model"
	"github.com/Faultbox/brainview/internal/engine/shader"
	"github.com/Faultbox/brainview/internal/logger"
	"github.com/Faultbox/brainview/pkg/math"
)

// ErrNoMesh is returned when drawing a mesh index that was never uploaded.
var ErrNoMesh = errors.New("no such mesh")

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [4]float32
	// Lighting enables headlight shading; off draws the raw vertex colors.
	Lighting bool
	Ambient  float32
	// BoundsColor is the overlay line color.
	BoundsColor [4]float32
}

// Renderer owns the GL programs and the uploaded meshes.
type Renderer struct {
	config Config

	meshProgram *shader.Program
	lineProgram *shader.Program

	meshes []*gpuMesh
	bounds *gpuLines
}

type gpuMesh struct {
	name       string
	vao        uint32
	vbos       [3]uint32
	ebo        uint32
	indexCount int32
}

type gpuLines struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	var err error
	r.meshProgram, err = shader.Compile(shader.MeshVertexShader, shader.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.lineProgram, err = shader.Compile(shader.LineVertexShader, shader.LineFragmentShader)
	if err != nil {
		r.meshProgram.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}
	logger.Debug("shader programs created",
		zap.Uint32("mesh", r.meshProgram.ID()),
		zap.Uint32("line", r.lineProgram.ID()),
	)

	r.SetViewport(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		gl.DeleteBuffers(1, &m.ebo)
	}
	r.meshes = nil
	r.deleteBounds()
	r.meshProgram.Delete()
	r.lineProgram.Delete()
}

// AddMesh uploads positions (xyz), triangle indices and RGBA bytes, one
// color per vertex, and returns the mesh index.
func (r *Renderer) AddMesh(name string, positions []float32, indices []uint32, colors []uint8) (int, error) {
	n := len(positions) / 3
	if len(colors) != n*4 {
		return 0, fmt.Errorf("mesh %s: %d color bytes for %d vertices", name, len(colors), n)
	}
	if n == 0 || len(indices) == 0 {
		return 0, fmt.Errorf("mesh %s: no geometry", name)
	}
	normals := model.VertexNormals(positions, indices)

	m := &gpuMesh{name: name, indexCount: int32(len(indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, unsafe.Pointer(&normals[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[2])
	gl.BufferData(gl.ARRAY_BUFFER, len(colors), unsafe.Pointer(&colors[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, 4, nil)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := checkError("uploading mesh " + name); err != nil {
		return 0, err
	}
	r.meshes = append(r.meshes, m)
	logger.Debug("mesh uploaded",
		zap.String("name", name),
		zap.Int("vertices", n),
		zap.Int("triangles", len(indices)/3),
		zap.Uint32("vao", m.vao),
	)
	return len(r.meshes) - 1, nil
}

// MeshCount returns the number of uploaded meshes.
func (r *Renderer) MeshCount() int {
	return len(r.meshes)
}

// SetBounds uploads line vertices (xyz pairs) for the bounds overlay.
func (r *Renderer) SetBounds(lines []float32) {
	r.deleteBounds()
	if len(lines) == 0 {
		return
	}
	b := &gpuLines{vertexCount: int32(len(lines) / 3)}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(lines)*4, unsafe.Pointer(&lines[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.bounds = b
}

func (r *Renderer) deleteBounds() {
	if r.bounds == nil {
		return
	}
	gl.DeleteVertexArrays(1, &r.bounds.vao)
	gl.DeleteBuffers(1, &r.bounds.vbo)
	r.bounds = nil
}

// SetViewport resizes the GL viewport.
func (r *Renderer) SetViewport(width, height int) {
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear starts a new frame.
func (r *Renderer) Clear() {
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh draws mesh i with the given transforms.
func (r *Renderer) DrawMesh(i int, modelMat, view, projection math.Mat4) error {
	if i < 0 || i >= len(r.meshes) {
		return fmt.Errorf("%w: %d", ErrNoMesh, i)
	}
	m := r.meshes[i]

	p := r.meshProgram
	p.Use()
	p.SetMat4("uModel", modelMat)
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", projection)
	p.SetBool("uLighting", r.config.Lighting)
	p.SetFloat("uAmbient", r.config.Ambient)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	return checkError("drawing mesh " + m.name)
}

// DrawBounds draws the bounds overlay, if any was set.
func (r *Renderer) DrawBounds(modelMat, view, projection math.Mat4) error {
	if r.bounds == nil {
		return nil
	}
	p := r.lineProgram
	p.Use()
	p.SetMat4("uMVP", projection.Mul(view).Mul(modelMat))
	p.SetVec4("uColor", r.config.BoundsColor)

	gl.BindVertexArray(r.bounds.vao)
	gl.DrawArrays(gl.LINES, 0, r.bounds.vertexCount)
	gl.BindVertexArray(0)

	return checkError("drawing bounds")
}

// ReadPixels returns the RGBA framebuffer contents, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int, error) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0, fmt.Errorf("reading pixels: empty viewport %dx%d", w, h)
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	if err := checkError("reading pixels"); err != nil {
		return nil, 0, 0, err
	}
	return pixels, w, h, nil
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%04x", op, code)
	}
	return nil
}
