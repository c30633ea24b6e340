// Package freesurfer provides readers for the FreeSurfer surface file formats
// consumed by the viewer: triangle surfaces, curv morphometry, ASCII labels
// and annotations.
//
// All binary formats are big-endian.
package freesurfer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Format errors shared by the readers.
var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrTruncated          = errors.New("truncated data")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrMalformed          = errors.New("malformed data")
)

var byteOrder = binary.BigEndian

// readInt32 reads one big-endian int32, naming the field in the error.
func readInt32(r *bytes.Reader, field string) (int32, error) {
	var v int32
	if err := binary.Read(r, byteOrder, &v); err != nil {
		return 0, fmt.Errorf("%w: reading %s", ErrTruncated, field)
	}
	return v, nil
}

// readCount reads a non-negative element count and checks that count
// elements of elemSize bytes fit in the rest of the buffer.
func readCount(r *bytes.Reader, field string, elemSize int) (int, error) {
	n, err := readInt32(r, field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative %s %d", ErrMalformed, field, n)
	}
	if int64(n)*int64(elemSize) > int64(r.Len()) {
		return 0, fmt.Errorf("%w: %s %d exceeds remaining %d bytes", ErrTruncated, field, n, r.Len())
	}
	return int(n), nil
}

// readString reads an int32 length-prefixed string and strips trailing NULs.
func readString(r *bytes.Reader, field string) (string, error) {
	n, err := readCount(r, field+" length", 1)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := r.Read(buf); err != nil && n > 0 {
		return "", fmt.Errorf("%w: reading %s", ErrTruncated, field)
	}
	if idx := bytes.IndexByte(buf, 0); idx >= 0 {
		buf = buf[:idx]
	}
	return string(buf), nil
}

// checkMagic verifies a 3-byte magic number.
func checkMagic(r *bytes.Reader, want [3]byte) error {
	var got [3]byte
	if _, err := r.Read(got[:]); err != nil {
		return fmt.Errorf("%w: reading magic", ErrTruncated)
	}
	if got != want {
		return fmt.Errorf("%w: got % x, want % x", ErrInvalidMagic, got, want)
	}
	return nil
}
