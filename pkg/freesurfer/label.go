package freesurfer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Label is a decoded ASCII label file: a subset of surface vertices, each
// with a coordinate and a value.
type Label struct {
	Comment  string
	Vertices []int32
	Coords   [][3]float32
	Values   []float32
}

// ReadLabel reads an ASCII label file, e.g. label/lh.cortex.label.
func ReadLabel(path string) (*Label, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLabel(data)
}

// ParseLabel parses an ASCII label.
func ParseLabel(data []byte) (*Label, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing comment line", ErrTruncated)
	}
	l := &Label{Comment: strings.TrimSpace(strings.TrimPrefix(sc.Text(), "#"))}

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing vertex count", ErrTruncated)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: vertex count %q", ErrMalformed, sc.Text())
	}

	l.Vertices = make([]int32, 0, n)
	l.Coords = make([][3]float32, 0, n)
	l.Values = make([]float32, 0, n)
	for len(l.Vertices) < n && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 5", ErrMalformed, len(l.Vertices), len(fields))
		}
		vertex, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d vertex %q", ErrMalformed, len(l.Vertices), fields[0])
		}
		var nums [4]float32
		for i := range nums {
			f, err := strconv.ParseFloat(fields[i+1], 32)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d %q", ErrMalformed, len(l.Vertices), i+1, fields[i+1])
			}
			nums[i] = float32(f)
		}
		l.Vertices = append(l.Vertices, int32(vertex))
		l.Coords = append(l.Coords, [3]float32{nums[0], nums[1], nums[2]})
		l.Values = append(l.Values, nums[3])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(l.Vertices) != n {
		return nil, fmt.Errorf("%w: header announces %d rows, found %d", ErrTruncated, n, len(l.Vertices))
	}
	return l, nil
}

// Len returns the number of label rows.
func (l *Label) Len() int {
	return len(l.Vertices)
}

// IsBinary reports whether every row carries the same value, which is how a
// pure membership label is written. An empty label is binary.
func (l *Label) IsBinary() bool {
	for _, v := range l.Values {
		if v != l.Values[0] {
			return false
		}
	}
	return true
}

// DistinctValues returns the number of distinct row values.
func (l *Label) DistinctValues() int {
	seen := make(map[float32]struct{}, 2)
	for _, v := range l.Values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// InsideMask returns a membership flag for each of numSurfaceVertices
// vertices. It fails if a label row references a vertex outside the surface.
func (l *Label) InsideMask(numSurfaceVertices int) ([]bool, error) {
	mask := make([]bool, numSurfaceVertices)
	for i, v := range l.Vertices {
		if v < 0 || int(v) >= numSurfaceVertices {
			return nil, fmt.Errorf("%w: row %d references vertex %d of %d", ErrMalformed, i, v, numSurfaceVertices)
		}
		mask[v] = true
	}
	return mask, nil
}

// InsideCount returns the number of distinct vertices in the label.
func (l *Label) InsideCount() int {
	seen := make(map[int32]struct{}, len(l.Vertices))
	for _, v := range l.Vertices {
		seen[v] = struct{}{}
	}
	return len(seen)
}
