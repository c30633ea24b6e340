package freesurfer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

var surfaceMagic = [3]byte{0xff, 0xff, 0xfe}

// Surface is a decoded triangle mesh.
type Surface struct {
	Comment  string
	Vertices []float32 // x, y, z per vertex
	Faces    []int32   // three vertex indices per triangle
}

// VertexCount returns the number of vertices.
func (s *Surface) VertexCount() int {
	return len(s.Vertices) / 3
}

// FaceCount returns the number of triangles.
func (s *Surface) FaceCount() int {
	return len(s.Faces) / 3
}

// ReadSurface reads a triangle surface file such as surf/lh.white.
func ReadSurface(path string) (*Surface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSurface(data)
}

// ParseSurface parses a triangle surface from raw bytes.
func ParseSurface(data []byte) (*Surface, error) {
	r := bytes.NewReader(data)
	if err := checkMagic(r, surfaceMagic); err != nil {
		return nil, err
	}

	// The creator comment is followed by one more newline.
	comment, err := readLine(r)
	if err != nil {
		return nil, err
	}
	if _, err := readLine(r); err != nil {
		return nil, err
	}

	nv, err := readCount(r, "vertex count", 0)
	if err != nil {
		return nil, err
	}
	nf, err := readCount(r, "face count", 0)
	if err != nil {
		return nil, err
	}
	if int64(nv)*12+int64(nf)*12 > int64(r.Len()) {
		return nil, fmt.Errorf("%w: %d vertices and %d faces need more than %d bytes", ErrTruncated, nv, nf, r.Len())
	}

	s := &Surface{
		Comment:  comment,
		Vertices: make([]float32, nv*3),
		Faces:    make([]int32, nf*3),
	}
	if err := binary.Read(r, byteOrder, s.Vertices); err != nil {
		return nil, fmt.Errorf("%w: reading vertices", ErrTruncated)
	}
	if err := binary.Read(r, byteOrder, s.Faces); err != nil {
		return nil, fmt.Errorf("%w: reading faces", ErrTruncated)
	}

	for i, idx := range s.Faces {
		if idx < 0 || int(idx) >= nv {
			return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrMalformed, i/3, idx, nv)
		}
	}
	return s, nil
}

// readLine reads up to and including the next '\n' and returns the line
// without the terminator.
func readLine(r *bytes.Reader) (string, error) {
	var line []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: unterminated comment", ErrTruncated)
		}
		if b == '\n' {
			return string(line), nil
		}
		line = append(line, b)
	}
}
