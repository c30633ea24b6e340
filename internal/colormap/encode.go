package colormap

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrDegenerateRange is returned when no value range can be derived.
var ErrDegenerateRange = errors.New("degenerate value range")

// DegenerateRangeError reports why a range could not be derived.
type DegenerateRangeError struct {
	Count int
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("%v: %d values", ErrDegenerateRange, e.Count)
}

// Unwrap supports errors.Is(err, ErrDegenerateRange).
func (e *DegenerateRangeError) Unwrap() error {
	return ErrDegenerateRange
}

// Range is the finite min/max of a dataset.
type Range struct {
	Min, Max float32
	// Finite is the number of values that took part in the scan.
	Finite int
}

// FiniteRange scans values for their min and max, skipping NaN and ±Inf.
func FiniteRange(values []float32) Range {
	r := Range{Min: math32.Inf(1), Max: math32.Inf(-1)}
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		r.Finite++
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}
	return r
}

// Scale maps v into [0, 1]. A constant range maps every value to 0.5.
func (r Range) Scale(v float32) float32 {
	if r.Max == r.Min {
		return 0.5
	}
	// float64 keeps spans near the float32 limits finite.
	t := (float64(v) - float64(r.Min)) / (float64(r.Max) - float64(r.Min))
	return float32(min(max(t, 0), 1))
}

// Encode rescales values to [0, 1] by their observed range and evaluates g
// for each, returning 4 bytes (RGBA) per value. Non-finite values get
// MissingColor, and alpha is always opaque.
func Encode(values []float32, g Gradient) ([]uint8, error) {
	if len(values) == 0 {
		return nil, &DegenerateRangeError{Count: 0}
	}

	r := FiniteRange(values)
	out := make([]uint8, 0, len(values)*4)
	for _, v := range values {
		c := MissingColor
		if isFinite(v) {
			c = g.At(r.Scale(v))
		}
		out = append(out, c.R, c.G, c.B, Alpha)
	}
	return out, nil
}

func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
