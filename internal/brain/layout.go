package brain

import "path/filepath"

// Subject directory names.
const (
	surfDir  = "surf"
	labelDir = "label"
)

// Hemisphere identifies one half of the cortex.
type Hemisphere string

// Hemispheres, spelled as FreeSurfer file prefixes.
const (
	Left  Hemisphere = "lh"
	Right Hemisphere = "rh"
)

// Prefix prepends the hemisphere to a hemisphere-agnostic file stem,
// e.g. "white" becomes "lh.white".
func (h Hemisphere) Prefix(stem string) string {
	return string(h) + "." + stem
}

// Layout resolves file names against a FreeSurfer subject directory:
// surfaces and morphometry live under surf/, labels and annotations
// under label/. Absolute names are used as given.
type Layout struct {
	Base string
}

// SurfacePath returns the path of a surface file.
func (l Layout) SurfacePath(name string) string {
	return l.resolve(surfDir, name)
}

// DataPath returns the path of a data file of the given kind.
func (l Layout) DataPath(name string, kind DisplayKind) string {
	return l.resolve(kind.subdir(), name)
}

func (l Layout) resolve(subdir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.Base, subdir, name)
}
