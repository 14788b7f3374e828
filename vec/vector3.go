// SPDX-License-Identifier: MIT

// Package vec - Vector3 value arithmetic.
//
// Purpose:
//   - A 3-component float64 value with two method families:
//     immutable (value receiver, returns a new Vector3) and mutable
//     (pointer receiver, rewrites the receiver in place).
//   - Every mutable operation funnels through SetXYZ, the single
//     write point of the type.
//
// Complexity quicksheet:
//   - All operations are O(1) except Average (O(n)).

package vec

import (
	"fmt"
	"math"
)

// Vector3 is a plain 3-component vector. The zero value is the zero vector.
// Components may hold any float64, including ±Inf and NaN; use IsFinite
// to check after the fact.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Named constant vectors. Vector3 is a value type, so these cannot be
// mutated through a copy; treat them as constants.
var (
	// Zero3 is the additive identity.
	Zero3 = Vector3{}
	// XUnit is the unit vector along +x.
	XUnit = Vector3{X: 1}
	// YUnit is the unit vector along +y.
	YUnit = Vector3{Y: 1}
	// ZUnit is the unit vector along +z.
	ZUnit = Vector3{Z: 1}
)

// ---------- immutable family (value receivers) ----------

// Magnitude returns the Euclidean length √(x²+y²+z²).
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns x²+y²+z², avoiding the square root.
func (v Vector3) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the scalar product v·u.
func (v Vector3) Dot(u Vector3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the vector product v×u (right-handed).
func (v Vector3) Cross(u Vector3) Vector3 {
	return Vector3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Plus returns v + u as a new value.
func (v Vector3) Plus(u Vector3) Vector3 {
	return Vector3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Minus returns v − u as a new value.
func (v Vector3) Minus(u Vector3) Vector3 {
	return Vector3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// TimesScalar returns v scaled by s as a new value.
func (v Vector3) TimesScalar(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DividedScalar returns v divided by s as a new value. Division by zero
// follows IEEE 754 (±Inf or NaN components); it is not an error.
func (v Vector3) DividedScalar(s float64) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Negated returns −v as a new value.
func (v Vector3) Negated() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Normalized returns the unit vector in the direction of v.
// Returns ErrZeroMagnitude when the magnitude is exactly zero.
func (v Vector3) Normalized() (Vector3, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector3{}, fmt.Errorf("Normalized: %w", ErrZeroMagnitude)
	}

	return v.DividedScalar(mag), nil
}

// Distance returns the Euclidean distance |v − u|.
func (v Vector3) Distance(u Vector3) float64 {
	return v.Minus(u).Magnitude()
}

// DistanceSquared returns |v − u|² without the square root.
func (v Vector3) DistanceSquared(u Vector3) float64 {
	return v.Minus(u).MagnitudeSquared()
}

// AngleBetween returns the angle between v and u in radians, in [0, π].
// The normalized dot product is clamped to [−1, 1] before acos so that
// floating-point overshoot cannot produce a domain error.
// Returns ErrZeroMagnitude when either operand has zero magnitude.
func (v Vector3) AngleBetween(u Vector3) (float64, error) {
	denom := v.Magnitude() * u.Magnitude()
	if denom == 0 {
		return 0, fmt.Errorf("AngleBetween: %w", ErrZeroMagnitude)
	}
	cos := v.Dot(u) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos), nil
}

// Blend returns the linear interpolation v + t·(u − v).
// t=0 yields v, t=1 yields u; t outside [0,1] extrapolates.
func (v Vector3) Blend(u Vector3, t float64) Vector3 {
	return v.Plus(u.Minus(v).TimesScalar(t))
}

// IsFinite reports whether every component is finite (no NaN, no ±Inf).
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Equals reports exact component-wise equality.
func (v Vector3) Equals(u Vector3) bool {
	return v == u
}

// EqualsEpsilon reports component-wise closeness: |a−b| <= eps per component.
func (v Vector3) EqualsEpsilon(u Vector3, eps float64) bool {
	return math.Abs(v.X-u.X) <= eps &&
		math.Abs(v.Y-u.Y) <= eps &&
		math.Abs(v.Z-u.Z) <= eps
}

// String implements fmt.Stringer for easy debugging.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// ---------- mutable family (pointer receivers) ----------

// SetXYZ rewrites all three components and returns the receiver.
// Every mutable operation of Vector3 funnels through this method.
func (v *Vector3) SetXYZ(x, y, z float64) *Vector3 {
	v.X = x
	v.Y = y
	v.Z = z

	return v
}

// Set copies u into the receiver and returns the receiver.
func (v *Vector3) Set(u Vector3) *Vector3 {
	return v.SetXYZ(u.X, u.Y, u.Z)
}

// Add accumulates u into the receiver and returns the receiver.
func (v *Vector3) Add(u Vector3) *Vector3 {
	return v.SetXYZ(v.X+u.X, v.Y+u.Y, v.Z+u.Z)
}

// Subtract removes u from the receiver and returns the receiver.
func (v *Vector3) Subtract(u Vector3) *Vector3 {
	return v.SetXYZ(v.X-u.X, v.Y-u.Y, v.Z-u.Z)
}

// MultiplyScalar scales the receiver by s and returns the receiver.
func (v *Vector3) MultiplyScalar(s float64) *Vector3 {
	return v.SetXYZ(v.X*s, v.Y*s, v.Z*s)
}

// DivideScalar divides the receiver by s and returns the receiver.
// Division by zero follows IEEE 754; it is not an error.
func (v *Vector3) DivideScalar(s float64) *Vector3 {
	return v.SetXYZ(v.X/s, v.Y/s, v.Z/s)
}

// Negate flips the sign of every component and returns the receiver.
func (v *Vector3) Negate() *Vector3 {
	return v.SetXYZ(-v.X, -v.Y, -v.Z)
}

// Normalize rescales the receiver to unit length in place.
// Returns ErrZeroMagnitude (receiver untouched) when the magnitude is zero.
func (v *Vector3) Normalize() error {
	mag := v.Magnitude()
	if mag == 0 {
		return fmt.Errorf("Normalize: %w", ErrZeroMagnitude)
	}
	v.DivideScalar(mag)

	return nil
}

// ---------- aggregates ----------

// Average returns the component-wise mean of vs: a left fold from the zero
// vector divided by the count. Returns ErrEmptyInput for an empty slice.
// Complexity: O(n).
func Average(vs []Vector3) (Vector3, error) {
	if len(vs) == 0 {
		return Vector3{}, fmt.Errorf("Average: %w", ErrEmptyInput)
	}
	sum := Zero3
	for _, v := range vs {
		sum = sum.Plus(v)
	}

	return sum.DividedScalar(float64(len(vs))), nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
