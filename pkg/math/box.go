package math

import "github.com/chewxy/math32"

// Box3 is an axis-aligned bounding box.
// The zero value is not empty; use EmptyBox to start an accumulation.
type Box3 struct {
	Min, Max Vec3
}

// EmptyBox returns an inverted box that any point expands.
func EmptyBox() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether no point has been added to the box.
func (b Box3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// ExpandByPoint returns the smallest box containing b and p.
func (b Box3) ExpandByPoint(p Vec3) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both boxes.
func (b Box3) Union(other Box3) Box3 {
	return Box3{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Center returns the midpoint of the min and max corners.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}
