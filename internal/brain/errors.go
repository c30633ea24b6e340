package brain

import "fmt"

// Role names what a file is used for, and appears in error messages.
type Role string

// File roles.
const (
	RoleSurface    Role = "surface"
	RoleCurvature  Role = "curvature"
	RoleLabel      Role = "label"
	RoleAnnotation Role = "annotation"
)

// ConfigurationError reports an invalid setting, such as an unknown display kind.
type ConfigurationError struct {
	Field string
	Value string
	// Reason is optional extra detail.
	Reason string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// FileNotFoundError reports a missing input file and what it was needed for.
type FileNotFoundError struct {
	Path string
	Role Role
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("cannot read %s file %q: no such file", e.Role, e.Path)
}

// DecodeError wraps a decoder failure with the file and its role.
type DecodeError struct {
	Path string
	Role Role
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s file %q: %v", e.Role, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ShapeMismatchError reports buffers whose sizes do not agree with the geometry.
type ShapeMismatchError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %d, got %d", e.What, e.Want, e.Got)
}

// NotBinaryError reports a label whose rows do not all carry the same value,
// so membership alone does not describe it.
type NotBinaryError struct {
	DistinctValues int
}

func (e *NotBinaryError) Error() string {
	return fmt.Sprintf("label is not binary: %d distinct values", e.DistinctValues)
}
