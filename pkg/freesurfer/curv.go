package freesurfer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

var curvMagic = [3]byte{0xff, 0xff, 0xff}

// Curv holds per-vertex morphometry data (thickness, curvature, area, ...).
type Curv struct {
	FaceCount int
	Data      []float32
}

// ReadCurv reads a curv file in the "new" binary format, e.g. surf/lh.thickness.
func ReadCurv(path string) (*Curv, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCurv(data)
}

// ParseCurv parses curv data from raw bytes.
func ParseCurv(data []byte) (*Curv, error) {
	r := bytes.NewReader(data)
	if err := checkMagic(r, curvMagic); err != nil {
		return nil, err
	}

	nv, err := readCount(r, "vertex count", 0)
	if err != nil {
		return nil, err
	}
	nf, err := readInt32(r, "face count")
	if err != nil {
		return nil, err
	}
	perVertex, err := readInt32(r, "values per vertex")
	if err != nil {
		return nil, err
	}
	if perVertex != 1 {
		return nil, fmt.Errorf("%w: %d values per vertex", ErrUnsupportedVersion, perVertex)
	}
	if int64(nv)*4 > int64(r.Len()) {
		return nil, fmt.Errorf("%w: %d values need more than %d bytes", ErrTruncated, nv, r.Len())
	}

	c := &Curv{FaceCount: int(nf), Data: make([]float32, nv)}
	if err := binary.Read(r, byteOrder, c.Data); err != nil {
		return nil, fmt.Errorf("%w: reading values", ErrTruncated)
	}
	return c, nil
}
