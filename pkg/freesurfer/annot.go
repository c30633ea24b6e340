package freesurfer

import (
	"bytes"
	"fmt"
	"os"
)

// Region is one color table entry of an annotation.
type Region struct {
	Index int32
	Name  string
	R     int32
	G     int32
	B     int32
	T     int32 // transparency, 0 is opaque
}

// ID returns the packed label value vertices use to reference this region.
func (r Region) ID() int32 {
	return r.R + r.G<<8 + r.B<<16
}

// ColorTable lists the regions of an annotation.
type ColorTable struct {
	Filename string
	Regions  []Region
}

// Annot is a decoded annotation: one packed region label per vertex plus the
// color table describing the regions.
type Annot struct {
	Labels     []int32 // indexed by vertex
	ColorTable ColorTable
}

// VertexCount returns the number of annotated vertices.
func (a *Annot) VertexCount() int {
	return len(a.Labels)
}

// RegionOf returns the position in ColorTable.Regions of the region the
// vertex belongs to, or -1 when its label matches no region.
func (a *Annot) RegionOf(vertex int) int {
	id := a.Labels[vertex]
	for i, r := range a.ColorTable.Regions {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

// RegionIndexByID maps packed label values to region positions.
func (a *Annot) RegionIndexByID() map[int32]int {
	m := make(map[int32]int, len(a.ColorTable.Regions))
	for i, r := range a.ColorTable.Regions {
		if _, ok := m[r.ID()]; !ok {
			m[r.ID()] = i
		}
	}
	return m
}

// RegionVertexCounts returns how many vertices fall into each region, in
// color table order, plus the number of unmatched vertices.
func (a *Annot) RegionVertexCounts() (counts []int, unmatched int) {
	counts = make([]int, len(a.ColorTable.Regions))
	byID := a.RegionIndexByID()
	for _, id := range a.Labels {
		if i, ok := byID[id]; ok {
			counts[i]++
		} else {
			unmatched++
		}
	}
	return counts, unmatched
}

// ReadAnnot reads a binary annotation file, e.g. label/lh.aparc.annot.
func ReadAnnot(path string) (*Annot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseAnnot(data)
}

// ParseAnnot parses an annotation from raw bytes.
func ParseAnnot(data []byte) (*Annot, error) {
	r := bytes.NewReader(data)

	nv, err := readCount(r, "vertex count", 8)
	if err != nil {
		return nil, err
	}
	a := &Annot{Labels: make([]int32, nv)}
	for i := 0; i < nv; i++ {
		vno, err := readInt32(r, "vertex index")
		if err != nil {
			return nil, err
		}
		label, err := readInt32(r, "vertex label")
		if err != nil {
			return nil, err
		}
		if vno < 0 || int(vno) >= nv {
			return nil, fmt.Errorf("%w: pair %d references vertex %d of %d", ErrMalformed, i, vno, nv)
		}
		a.Labels[vno] = label
	}

	// The color table is optional.
	if r.Len() == 0 {
		return a, nil
	}
	hasTable, err := readInt32(r, "color table flag")
	if err != nil {
		return nil, err
	}
	if hasTable == 0 {
		return a, nil
	}

	ct, err := parseColorTable(r)
	if err != nil {
		return nil, fmt.Errorf("color table: %w", err)
	}
	a.ColorTable = *ct
	return a, nil
}

func parseColorTable(r *bytes.Reader) (*ColorTable, error) {
	n, err := readInt32(r, "entry count")
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return parseOldColorTable(r, int(n))
	}

	version := -n
	if version != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if _, err := readInt32(r, "max structure"); err != nil {
		return nil, err
	}
	ct := &ColorTable{}
	if ct.Filename, err = readString(r, "filename"); err != nil {
		return nil, err
	}
	count, err := readCount(r, "entries to read", 24)
	if err != nil {
		return nil, err
	}
	ct.Regions = make([]Region, 0, count)
	for i := 0; i < count; i++ {
		index, err := readInt32(r, "structure index")
		if err != nil {
			return nil, err
		}
		region, err := readRegion(r, index)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		ct.Regions = append(ct.Regions, region)
	}
	return ct, nil
}

// parseOldColorTable handles the positional layout where the entry count
// comes first and structure indices are implicit.
func parseOldColorTable(r *bytes.Reader, n int) (*ColorTable, error) {
	if int64(n)*20 > int64(r.Len()) {
		return nil, fmt.Errorf("%w: %d entries", ErrTruncated, n)
	}
	ct := &ColorTable{}
	var err error
	if ct.Filename, err = readString(r, "filename"); err != nil {
		return nil, err
	}
	ct.Regions = make([]Region, 0, n)
	for i := 0; i < n; i++ {
		region, err := readRegion(r, int32(i))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		ct.Regions = append(ct.Regions, region)
	}
	return ct, nil
}

func readRegion(r *bytes.Reader, index int32) (Region, error) {
	name, err := readString(r, "region name")
	if err != nil {
		return Region{}, err
	}
	var rgbt [4]int32
	for i, field := range []string{"red", "green", "blue", "transparency"} {
		if rgbt[i], err = readInt32(r, field); err != nil {
			return Region{}, err
		}
	}
	return Region{Index: index, Name: name, R: rgbt[0], G: rgbt[1], B: rgbt[2], T: rgbt[3]}, nil
}
