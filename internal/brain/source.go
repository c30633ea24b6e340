package brain

import (
	"image/color"
	"strconv"

	"github.com/Faultbox/brainview/internal/colormap"
	"github.com/Faultbox/brainview/pkg/freesurfer"
)

// Default binary mask colors.
var (
	DefaultInsideColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DefaultOutsideColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DefaultUnmatchedRegion is the color table entry used for vertices whose
// annotation label matches no region.
const DefaultUnmatchedRegion = 0

// VertexColorSource produces 4 bytes (RGBA) per surface vertex.
// The set of implementations is closed: ScalarSource, CategoricalSource and
// BinaryMaskSource.
type VertexColorSource interface {
	Kind() DisplayKind
	Colors() ([]uint8, error)

	vertexColorSource()
}

// ScalarSource colors continuous per-vertex data through a gradient.
type ScalarSource struct {
	Values   []float32
	Gradient colormap.Gradient
}

// NewScalarSource wraps values. A nil gradient selects the default one.
func NewScalarSource(values []float32, g colormap.Gradient) *ScalarSource {
	if g == nil {
		g = colormap.Default()
	}
	return &ScalarSource{Values: values, Gradient: g}
}

func (s *ScalarSource) Kind() DisplayKind { return Scalar }

func (s *ScalarSource) Colors() ([]uint8, error) {
	return colormap.Encode(s.Values, s.Gradient)
}

func (*ScalarSource) vertexColorSource() {}

// CategoricalSource colors each vertex with the color of its annotation region.
type CategoricalSource struct {
	Annot *freesurfer.Annot
	// UnmatchedRegion is the color table position used for vertices whose
	// label matches no region.
	UnmatchedRegion int
}

// NewCategoricalSource wraps an annotation with the default unmatched region.
func NewCategoricalSource(a *freesurfer.Annot) *CategoricalSource {
	return &CategoricalSource{Annot: a, UnmatchedRegion: DefaultUnmatchedRegion}
}

func (s *CategoricalSource) Kind() DisplayKind { return Categorical }

func (s *CategoricalSource) Colors() ([]uint8, error) {
	regions := s.Annot.ColorTable.Regions
	if s.UnmatchedRegion < 0 || s.UnmatchedRegion >= len(regions) {
		return nil, &ConfigurationError{
			Field:  "unmatched region index",
			Value:  strconv.Itoa(s.UnmatchedRegion),
			Reason: "color table has " + strconv.Itoa(len(regions)) + " regions",
		}
	}

	byID := s.Annot.RegionIndexByID()
	out := make([]uint8, 0, len(s.Annot.Labels)*4)
	for _, id := range s.Annot.Labels {
		i, ok := byID[id]
		if !ok {
			i = s.UnmatchedRegion
		}
		r := regions[i]
		out = append(out, uint8(r.R), uint8(r.G), uint8(r.B), 255)
	}
	return out, nil
}

func (*CategoricalSource) vertexColorSource() {}

// BinaryMaskSource colors label members with Inside and every other surface
// vertex with Outside.
type BinaryMaskSource struct {
	Label       *freesurfer.Label
	NumVertices int
	Inside      color.RGBA
	Outside     color.RGBA
}

// NewBinaryMaskSource wraps a label for a surface of numVertices vertices
// with the default colors.
func NewBinaryMaskSource(l *freesurfer.Label, numVertices int) *BinaryMaskSource {
	return &BinaryMaskSource{
		Label:       l,
		NumVertices: numVertices,
		Inside:      DefaultInsideColor,
		Outside:     DefaultOutsideColor,
	}
}

func (s *BinaryMaskSource) Kind() DisplayKind { return BinaryMask }

// Colors fails with NotBinaryError unless all label rows share one value.
func (s *BinaryMaskSource) Colors() ([]uint8, error) {
	if !s.Label.IsBinary() {
		return nil, &NotBinaryError{DistinctValues: s.Label.DistinctValues()}
	}
	for _, v := range s.Label.Vertices {
		if v < 0 || int(v) >= s.NumVertices {
			return nil, &ShapeMismatchError{What: "label vertex index bound", Want: s.NumVertices, Got: int(v) + 1}
		}
	}
	mask, err := s.Label.InsideMask(s.NumVertices)
	if err != nil {
		return nil, err
	}

	out := make([]uint8, 0, len(mask)*4)
	for _, in := range mask {
		c := s.Outside
		if in {
			c = s.Inside
		}
		out = append(out, c.R, c.G, c.B, c.A)
	}
	return out, nil
}

func (*BinaryMaskSource) vertexColorSource() {}
