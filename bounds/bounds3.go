// SPDX-License-Identifier: MIT

// Package bounds - Bounds3 storage, queries and combinators.
//
// Purpose:
//   - An interval product over three axes with value semantics: the
//     immutable family returns new values, the mutable family rewrites
//     the receiver through the SetMinMax choke point.
//   - Union/Intersection are component-wise min/max; emptiness falls out
//     of the representation (max < min) rather than being tracked.
//
// Complexity quicksheet:
//   - Everything here is O(1); Transform visits the 8 corners.

package bounds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/affine/vec"
)

// Bounds3 is an axis-aligned box: the product of three closed intervals
// [MinX,MaxX] × [MinY,MaxY] × [MinZ,MaxZ]. Any max below its min makes the
// box empty; zero extents make it a point, which is not empty.
type Bounds3 struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Sentinel values. Bounds3 is a value type, so these cannot be mutated
// through a copy; treat them as constants.
var (
	// Nothing is the empty box positioned at infinity: the identity
	// element for Union and the annihilator for Intersection.
	Nothing = Bounds3{
		MinX: math.Inf(1), MinY: math.Inf(1), MinZ: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1), MaxZ: math.Inf(-1),
	}

	// Everything is all of space: the identity element for Intersection.
	Everything = Bounds3{
		MinX: math.Inf(-1), MinY: math.Inf(-1), MinZ: math.Inf(-1),
		MaxX: math.Inf(1), MaxY: math.Inf(1), MaxZ: math.Inf(1),
	}
)

// New returns the box with the given extremes. No ordering is enforced:
// inverted extremes simply describe an empty box.
func New(minX, minY, minZ, maxX, maxY, maxZ float64) Bounds3 {
	return Bounds3{MinX: minX, MinY: minY, MinZ: minZ, MaxX: maxX, MaxY: maxY, MaxZ: maxZ}
}

// Point returns the degenerate box holding exactly (x, y, z).
func Point(x, y, z float64) Bounds3 {
	return New(x, y, z, x, y, z)
}

// Cuboid returns the box anchored at (x, y, z) with the given extents.
func Cuboid(x, y, z, width, height, depth float64) Bounds3 {
	return New(x, y, z, x+width, y+height, z+depth)
}

// ---------- queries ----------

// Width returns MaxX − MinX (negative for an empty box).
func (b Bounds3) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY − MinY (negative for an empty box).
func (b Bounds3) Height() float64 { return b.MaxY - b.MinY }

// Depth returns MaxZ − MinZ (negative for an empty box).
func (b Bounds3) Depth() float64 { return b.MaxZ - b.MinZ }

// CenterX returns the x midpoint.
func (b Bounds3) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the y midpoint.
func (b Bounds3) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// CenterZ returns the z midpoint.
func (b Bounds3) CenterZ() float64 { return (b.MinZ + b.MaxZ) / 2 }

// Center returns the midpoint as a vector.
func (b Bounds3) Center() vec.Vector3 {
	return vec.Vector3{X: b.CenterX(), Y: b.CenterY(), Z: b.CenterZ()}
}

// Volume returns width×height×depth, clamped to 0 for an empty box.
func (b Bounds3) Volume() float64 {
	if b.IsEmpty() {
		return 0
	}

	return b.Width() * b.Height() * b.Depth()
}

// IsEmpty reports whether any axis interval is inverted. A point (zero
// extents) is not empty.
func (b Bounds3) IsEmpty() bool {
	return b.Width() < 0 || b.Height() < 0 || b.Depth() < 0
}

// IsFinite reports whether all six extremes are finite.
func (b Bounds3) IsFinite() bool {
	return isFinite(b.MinX) && isFinite(b.MinY) && isFinite(b.MinZ) &&
		isFinite(b.MaxX) && isFinite(b.MaxY) && isFinite(b.MaxZ)
}

// ContainsCoordinates reports whether (x, y, z) lies in the closed box.
func (b Bounds3) ContainsCoordinates(x, y, z float64) bool {
	return b.MinX <= x && x <= b.MaxX &&
		b.MinY <= y && y <= b.MaxY &&
		b.MinZ <= z && z <= b.MaxZ
}

// ContainsPoint reports whether p lies in the closed box.
func (b Bounds3) ContainsPoint(p vec.Vector3) bool {
	return b.ContainsCoordinates(p.X, p.Y, p.Z)
}

// ContainsBounds reports whether other lies entirely within b. An empty
// other is trivially contained.
func (b Bounds3) ContainsBounds(other Bounds3) bool {
	return b.MinX <= other.MinX && b.MaxX >= other.MaxX &&
		b.MinY <= other.MinY && b.MaxY >= other.MaxY &&
		b.MinZ <= other.MinZ && b.MaxZ >= other.MaxZ
}

// IntersectsBounds reports whether b and other share at least one point:
// their intersection is non-empty.
func (b Bounds3) IntersectsBounds(other Bounds3) bool {
	return !b.Intersection(other).IsEmpty()
}

// ---------- combinators (immutable) ----------

// Union returns the smallest box containing both operands.
// Nothing is the identity element.
func (b Bounds3) Union(other Bounds3) Bounds3 {
	return New(
		math.Min(b.MinX, other.MinX),
		math.Min(b.MinY, other.MinY),
		math.Min(b.MinZ, other.MinZ),
		math.Max(b.MaxX, other.MaxX),
		math.Max(b.MaxY, other.MaxY),
		math.Max(b.MaxZ, other.MaxZ))
}

// Intersection returns the overlap of both operands (possibly empty).
// Everything is the identity element.
func (b Bounds3) Intersection(other Bounds3) Bounds3 {
	return New(
		math.Max(b.MinX, other.MinX),
		math.Max(b.MinY, other.MinY),
		math.Max(b.MinZ, other.MinZ),
		math.Min(b.MaxX, other.MaxX),
		math.Min(b.MaxY, other.MaxY),
		math.Min(b.MaxZ, other.MaxZ))
}

// WithPoint returns the smallest box containing b and (x, y, z).
func (b Bounds3) WithPoint(p vec.Vector3) Bounds3 {
	return b.Union(Point(p.X, p.Y, p.Z))
}

// Shifted returns b translated by (x, y, z).
func (b Bounds3) Shifted(x, y, z float64) Bounds3 {
	return New(b.MinX+x, b.MinY+y, b.MinZ+z, b.MaxX+x, b.MaxY+y, b.MaxZ+z)
}

// Dilated returns b expanded by d on every side (negative d contracts).
func (b Bounds3) Dilated(d float64) Bounds3 {
	return New(b.MinX-d, b.MinY-d, b.MinZ-d, b.MaxX+d, b.MaxY+d, b.MaxZ+d)
}

// Eroded returns b contracted by d on every side; Eroded(d) == Dilated(−d).
func (b Bounds3) Eroded(d float64) Bounds3 {
	return b.Dilated(-d)
}

// ---------- equality ----------

// Equals reports exact field-wise equality.
func (b Bounds3) Equals(other Bounds3) bool {
	return b == other
}

// EqualsEpsilon reports field-wise closeness: |a−c| <= eps per field, but
// ONLY where a+c is finite. Mixed finite/infinite or matching-infinite
// fields compare exactly, since Inf − Inf is NaN and a subtraction-based
// check would reject two identical infinite extremes.
func (b Bounds3) EqualsEpsilon(other Bounds3, eps float64) bool {
	return fieldClose(b.MinX, other.MinX, eps) &&
		fieldClose(b.MinY, other.MinY, eps) &&
		fieldClose(b.MinZ, other.MinZ, eps) &&
		fieldClose(b.MaxX, other.MaxX, eps) &&
		fieldClose(b.MaxY, other.MaxY, eps) &&
		fieldClose(b.MaxZ, other.MaxZ, eps)
}

// fieldClose applies the epsilon test when a+c is finite, exact equality
// otherwise.
func fieldClose(a, c, eps float64) bool {
	if !isFinite(a + c) {
		return a == c
	}

	return math.Abs(a-c) <= eps
}

// String implements fmt.Stringer for easy debugging.
func (b Bounds3) String() string {
	return fmt.Sprintf("[x:(%g,%g), y:(%g,%g), z:(%g,%g)]",
		b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinZ, b.MaxZ)
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
