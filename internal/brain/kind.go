package brain

import "fmt"

// DisplayKind selects how per-vertex data is turned into colors.
type DisplayKind int

// Display kinds. Adding one requires a new VertexColorSource and a case in
// Loader.sourceFor.
const (
	Scalar DisplayKind = iota + 1
	Categorical
	BinaryMask
)

// ParseDisplayKind resolves the command-line spelling of a display kind.
func ParseDisplayKind(s string) (DisplayKind, error) {
	switch s {
	case "curv":
		return Scalar, nil
	case "annot":
		return Categorical, nil
	case "label":
		return BinaryMask, nil
	}
	return 0, &ConfigurationError{Field: "display kind", Value: s, Reason: `must be one of "curv", "annot", "label"`}
}

// String returns the command-line spelling.
func (k DisplayKind) String() string {
	switch k {
	case Scalar:
		return "curv"
	case Categorical:
		return "annot"
	case BinaryMask:
		return "label"
	default:
		return fmt.Sprintf("DisplayKind(%d)", int(k))
	}
}

// Role returns the role of the data file for this kind.
func (k DisplayKind) Role() Role {
	switch k {
	case Categorical:
		return RoleAnnotation
	case BinaryMask:
		return RoleLabel
	default:
		return RoleCurvature
	}
}

// subdir is the subject directory that holds data files of this kind.
func (k DisplayKind) subdir() string {
	if k == Scalar {
		return surfDir
	}
	return labelDir
}
