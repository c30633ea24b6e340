package brain

import (
	"fmt"
	"image/color"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/brainview/internal/colormap"
	"github.com/Faultbox/brainview/internal/logger"
	"github.com/Faultbox/brainview/pkg/freesurfer"
)

// Options control how decoded data is colored.
type Options struct {
	Gradient        colormap.Gradient
	UnmatchedRegion int
	Inside          color.RGBA
	Outside         color.RGBA
}

// DefaultOptions returns the default gradient, unmatched region and mask colors.
func DefaultOptions() Options {
	return Options{
		Gradient:        colormap.Default(),
		UnmatchedRegion: DefaultUnmatchedRegion,
		Inside:          DefaultInsideColor,
		Outside:         DefaultOutsideColor,
	}
}

// Loader builds colored meshes from files in a subject directory.
type Loader struct {
	Layout  Layout
	Options Options
}

// NewLoader returns a loader for the subject directory base with default options.
func NewLoader(base string) *Loader {
	return &Loader{Layout: Layout{Base: base}, Options: DefaultOptions()}
}

// LoadNamed resolves kind from its command-line spelling before touching
// the file system, then calls Load.
func (l *Loader) LoadNamed(surface, data, kind string) (*ColoredMesh, error) {
	k, err := ParseDisplayKind(kind)
	if err != nil {
		return nil, err
	}
	return l.Load(surface, data, k)
}

// Load reads a surface and a data file of the given kind and colors the
// surface with it. Both files are checked for existence before either is
// decoded.
func (l *Loader) Load(surface, data string, kind DisplayKind) (*ColoredMesh, error) {
	surfPath := l.Layout.SurfacePath(surface)
	dataPath := l.Layout.DataPath(data, kind)
	if err := mustExist(surfPath, RoleSurface); err != nil {
		return nil, err
	}
	if err := mustExist(dataPath, kind.Role()); err != nil {
		return nil, err
	}

	surf, err := freesurfer.ReadSurface(surfPath)
	if err != nil {
		return nil, &DecodeError{Path: surfPath, Role: RoleSurface, Err: err}
	}
	geometry, err := GeometryFromSurface(surf)
	if err != nil {
		return nil, &DecodeError{Path: surfPath, Role: RoleSurface, Err: err}
	}
	logger.Debug("surface loaded",
		zap.String("path", surfPath),
		zap.Int("vertices", geometry.VertexCount()),
		zap.Int("faces", geometry.FaceCount()),
	)

	src, err := l.sourceFor(kind, dataPath, geometry.VertexCount())
	if err != nil {
		return nil, err
	}
	mesh, err := FromSource(geometry, src)
	if err != nil {
		return nil, fmt.Errorf("coloring %s with %s file %q: %w", surfPath, kind.Role(), dataPath, err)
	}

	logger.Info("mesh built",
		zap.String("surface", surfPath),
		zap.String("data", dataPath),
		zap.Stringer("kind", kind),
		zap.Int("vertices", mesh.VertexCount()),
	)
	return mesh.WithName(surface), nil
}

// sourceFor decodes the data file and wraps it in the color source for kind.
func (l *Loader) sourceFor(kind DisplayKind, path string, numVertices int) (VertexColorSource, error) {
	switch kind {
	case Scalar:
		curv, err := freesurfer.ReadCurv(path)
		if err != nil {
			return nil, &DecodeError{Path: path, Role: RoleCurvature, Err: err}
		}
		return NewScalarSource(curv.Data, l.Options.Gradient), nil

	case Categorical:
		annot, err := freesurfer.ReadAnnot(path)
		if err != nil {
			return nil, &DecodeError{Path: path, Role: RoleAnnotation, Err: err}
		}
		return &CategoricalSource{Annot: annot, UnmatchedRegion: l.Options.UnmatchedRegion}, nil

	case BinaryMask:
		label, err := freesurfer.ReadLabel(path)
		if err != nil {
			return nil, &DecodeError{Path: path, Role: RoleLabel, Err: err}
		}
		return &BinaryMaskSource{
			Label:       label,
			NumVertices: numVertices,
			Inside:      l.Options.Inside,
			Outside:     l.Options.Outside,
		}, nil
	}
	return nil, &ConfigurationError{Field: "display kind", Value: kind.String()}
}

func mustExist(path string, role Role) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &FileNotFoundError{Path: path, Role: role}
		}
		return fmt.Errorf("checking %s file %q: %w", role, path, err)
	}
	return nil
}
