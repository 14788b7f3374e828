// SPDX-License-Identifier: MIT

// Package bounds - the mutable method family and the affine transform.
// Every mutator funnels through SetMinMax, the single write point of
// Bounds3.

package bounds

import (
	"math"

	"github.com/katalvlaran/affine/mat"
	"github.com/katalvlaran/affine/vec"
)

// SetMinMax rewrites all six extremes and returns the receiver.
// Every mutable operation of Bounds3 funnels through this method.
func (b *Bounds3) SetMinMax(minX, minY, minZ, maxX, maxY, maxZ float64) *Bounds3 {
	b.MinX = minX
	b.MinY = minY
	b.MinZ = minZ
	b.MaxX = maxX
	b.MaxY = maxY
	b.MaxZ = maxZ

	return b
}

// Set copies other into the receiver and returns the receiver.
func (b *Bounds3) Set(other Bounds3) *Bounds3 {
	return b.SetMinMax(other.MinX, other.MinY, other.MinZ, other.MaxX, other.MaxY, other.MaxZ)
}

// IncludeBounds grows the receiver to the union with other (in-place Union).
func (b *Bounds3) IncludeBounds(other Bounds3) *Bounds3 {
	return b.Set(b.Union(other))
}

// ConstrainBounds shrinks the receiver to the intersection with other
// (in-place Intersection).
func (b *Bounds3) ConstrainBounds(other Bounds3) *Bounds3 {
	return b.Set(b.Intersection(other))
}

// AddCoordinates grows the receiver to include (x, y, z).
func (b *Bounds3) AddCoordinates(x, y, z float64) *Bounds3 {
	return b.Set(b.Union(Point(x, y, z)))
}

// AddPoint grows the receiver to include p.
func (b *Bounds3) AddPoint(p vec.Vector3) *Bounds3 {
	return b.AddCoordinates(p.X, p.Y, p.Z)
}

// Shift translates the receiver by (x, y, z) in place.
func (b *Bounds3) Shift(x, y, z float64) *Bounds3 {
	return b.Set(b.Shifted(x, y, z))
}

// Dilate expands the receiver by d on every side in place.
func (b *Bounds3) Dilate(d float64) *Bounds3 {
	return b.Set(b.Dilated(d))
}

// Erode contracts the receiver by d on every side in place.
func (b *Bounds3) Erode(d float64) *Bounds3 {
	return b.Dilate(-d)
}

// Transform re-bounds the receiver under m by mapping all eight corners
// through m.TimesVector3 and taking the component-wise extremes of the
// images. The result is conservative: for rotations it bounds the
// transformed box rather than fitting its contents tightly.
//
// Short-circuits without touching the receiver when the box is empty
// (there are no corners to map) or when m is the identity.
// Complexity: O(1) — eight corner transforms.
func (b *Bounds3) Transform(m *mat.Matrix3) *Bounds3 {
	if b.IsEmpty() || m.IsIdentity() {
		return b
	}

	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, x := range [2]float64{b.MinX, b.MaxX} {
		for _, y := range [2]float64{b.MinY, b.MaxY} {
			for _, z := range [2]float64{b.MinZ, b.MaxZ} {
				p := m.TimesVector3(vec.Vector3{X: x, Y: y, Z: z})
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				minZ = math.Min(minZ, p.Z)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
				maxZ = math.Max(maxZ, p.Z)
			}
		}
	}

	return b.SetMinMax(minX, minY, minZ, maxX, maxY, maxZ)
}

// Transformed returns the conservative re-bounding of b under m as a new
// value (immutable form of Transform).
func (b Bounds3) Transformed(m *mat.Matrix3) Bounds3 {
	c := b
	c.Transform(m)

	return c
}
