// SPDX-License-Identifier: MIT

// Package vec - Vector2 value arithmetic, the 2D analogue of Vector3.
// Same dual immutable/mutable discipline; SetXY is the single write point.

package vec

import (
	"fmt"
	"math"
)

// Vector2 is a plain 2-component vector. The zero value is the zero vector.
type Vector2 struct {
	X float64
	Y float64
}

// Named constant vectors (value type; copies cannot mutate them).
var (
	// Zero2 is the additive identity.
	Zero2 = Vector2{}
	// XUnit2 is the unit vector along +x.
	XUnit2 = Vector2{X: 1}
	// YUnit2 is the unit vector along +y.
	YUnit2 = Vector2{Y: 1}
)

// ---------- immutable family ----------

// Magnitude returns the Euclidean length √(x²+y²).
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns x²+y².
func (v Vector2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the scalar product v·u.
func (v Vector2) Dot(u Vector2) float64 {
	return v.X*u.X + v.Y*u.Y
}

// CrossScalar returns the z-component of the 3D cross product of v and u,
// the signed area of the parallelogram they span.
func (v Vector2) CrossScalar(u Vector2) float64 {
	return v.X*u.Y - v.Y*u.X
}

// Plus returns v + u as a new value.
func (v Vector2) Plus(u Vector2) Vector2 {
	return Vector2{X: v.X + u.X, Y: v.Y + u.Y}
}

// Minus returns v − u as a new value.
func (v Vector2) Minus(u Vector2) Vector2 {
	return Vector2{X: v.X - u.X, Y: v.Y - u.Y}
}

// TimesScalar returns v scaled by s as a new value.
func (v Vector2) TimesScalar(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// DividedScalar returns v divided by s. Division by zero follows IEEE 754.
func (v Vector2) DividedScalar(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Negated returns −v as a new value.
func (v Vector2) Negated() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Normalized returns the unit vector in the direction of v.
// Returns ErrZeroMagnitude when the magnitude is exactly zero.
func (v Vector2) Normalized() (Vector2, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2{}, fmt.Errorf("Normalized: %w", ErrZeroMagnitude)
	}

	return v.DividedScalar(mag), nil
}

// Angle returns the angle of v from the +x axis, in (−π, π].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsFinite reports whether both components are finite.
func (v Vector2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Equals reports exact component-wise equality.
func (v Vector2) Equals(u Vector2) bool {
	return v == u
}

// EqualsEpsilon reports component-wise closeness: |a−b| <= eps per component.
func (v Vector2) EqualsEpsilon(u Vector2, eps float64) bool {
	return math.Abs(v.X-u.X) <= eps && math.Abs(v.Y-u.Y) <= eps
}

// String implements fmt.Stringer for easy debugging.
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// ---------- mutable family ----------

// SetXY rewrites both components and returns the receiver.
// Every mutable operation of Vector2 funnels through this method.
func (v *Vector2) SetXY(x, y float64) *Vector2 {
	v.X = x
	v.Y = y

	return v
}

// Set copies u into the receiver and returns the receiver.
func (v *Vector2) Set(u Vector2) *Vector2 {
	return v.SetXY(u.X, u.Y)
}

// Add accumulates u into the receiver and returns the receiver.
func (v *Vector2) Add(u Vector2) *Vector2 {
	return v.SetXY(v.X+u.X, v.Y+u.Y)
}

// Subtract removes u from the receiver and returns the receiver.
func (v *Vector2) Subtract(u Vector2) *Vector2 {
	return v.SetXY(v.X-u.X, v.Y-u.Y)
}

// MultiplyScalar scales the receiver by s and returns the receiver.
func (v *Vector2) MultiplyScalar(s float64) *Vector2 {
	return v.SetXY(v.X*s, v.Y*s)
}

// Negate flips the sign of both components and returns the receiver.
func (v *Vector2) Negate() *Vector2 {
	return v.SetXY(-v.X, -v.Y)
}

// Normalize rescales the receiver to unit length in place.
// Returns ErrZeroMagnitude (receiver untouched) when the magnitude is zero.
func (v *Vector2) Normalize() error {
	mag := v.Magnitude()
	if mag == 0 {
		return fmt.Errorf("Normalize: %w", ErrZeroMagnitude)
	}
	v.SetXY(v.X/mag, v.Y/mag)

	return nil
}
