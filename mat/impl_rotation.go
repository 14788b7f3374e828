// SPDX-License-Identifier: MIT

// Package mat - trigonometric constructors and rotation queries.
//
// Purpose:
//   - Build rotation matrices about the coordinate axes, arbitrary axes,
//     and combined scale/translate/rotate transforms, all through the
//     mutation choke point.
//   - Every sine/cosine passes the snap policy (numeric.go) before being
//     written, so quarter turns land on exact zeros.
//   - RotationAToB builds the rotation carrying one unit vector onto
//     another (Möller-Hughes construction) with a substitution fallback
//     for near-parallel inputs, where the direct formula divides by a
//     vanishing 1+dot.

package mat

import "github.com/katalvlaran/affine/vec"

// aToBParallelGap: when |a·b| exceeds 1 minus this gap, RotationAToB uses
// the orthogonal-basis substitution instead of the direct formula.
const aToBParallelGap = 1e-4

// ---------- mutable forms (choke-pointed) ----------

// SetToRotationX resets the receiver to a rotation by angle (radians)
// about the x axis. The result leaves the affine plane, so the tag is
// re-derived (TypeOther for a generic angle).
func (m *Matrix3) SetToRotationX(angle float64) error {
	s, c := sincos(angle)

	return m.setRowMajor(
		1, 0, 0,
		0, c, -s,
		0, s, c,
		classifyRowMajor(1, 0, 0, 0, c, -s, 0, s, c))
}

// SetToRotationY resets the receiver to a rotation by angle (radians)
// about the y axis.
func (m *Matrix3) SetToRotationY(angle float64) error {
	s, c := sincos(angle)

	return m.setRowMajor(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
		classifyRowMajor(c, 0, s, 0, 1, 0, -s, 0, c))
}

// SetToRotationZ resets the receiver to a rotation by angle (radians)
// about the z axis — the planar 2D rotation. A quarter turn produces the
// exact entries m01=-1, m10=1 thanks to the snap policy.
func (m *Matrix3) SetToRotationZ(angle float64) error {
	s, c := sincos(angle)

	return m.setRowMajor(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
		classifyRowMajor(c, -s, 0, s, c, 0, 0, 0, 1))
}

// SetToRotationAxisAngle resets the receiver to the rotation by angle
// (radians) about the given axis, which must be unit length (not checked;
// a non-unit axis skews the result silently, per the numeric policy).
// Rodrigues' formula.
func (m *Matrix3) SetToRotationAxisAngle(axis vec.Vector3, angle float64) error {
	s, c := sincos(angle)
	cc := 1 - c
	v00 := axis.X*axis.X*cc + c
	v01 := axis.X*axis.Y*cc - axis.Z*s
	v02 := axis.X*axis.Z*cc + axis.Y*s
	v10 := axis.Y*axis.X*cc + axis.Z*s
	v11 := axis.Y*axis.Y*cc + c
	v12 := axis.Y*axis.Z*cc - axis.X*s
	v20 := axis.Z*axis.X*cc - axis.Y*s
	v21 := axis.Z*axis.Y*cc + axis.X*s
	v22 := axis.Z*axis.Z*cc + c

	return m.setRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22,
		classifyRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22))
}

// SetToTranslationRotation resets the receiver to "rotate by angle about
// the origin, then translate by (x, y)".
func (m *Matrix3) SetToTranslationRotation(x, y, angle float64) error {
	s, c := sincos(angle)

	return m.setRowMajor(
		c, -s, x,
		s, c, y,
		0, 0, 1,
		classifyRowMajor(c, -s, x, s, c, y, 0, 0, 1))
}

// SetToScaleTranslationRotation resets the receiver to "rotate by angle,
// scale uniformly by scale, then translate by (x, y)".
func (m *Matrix3) SetToScaleTranslationRotation(scale, x, y, angle float64) error {
	s, c := sincos(angle)
	s, c = scale*s, scale*c

	return m.setRowMajor(
		c, -s, x,
		s, c, y,
		0, 0, 1,
		classifyRowMajor(c, -s, x, s, c, y, 0, 0, 1))
}

// SetRotationAToB resets the receiver to the rotation carrying unit vector
// a onto unit vector b about their shared normal.
//
// When |a·b| <= 1-aToBParallelGap the direct Möller-Hughes formula is used.
// Nearly parallel or anti-parallel inputs fall back to a substitution
// through the coordinate axis most orthogonal to a, which stays stable
// where the direct formula's 1/(1+dot) blows up.
//
// TODO: verify that the substitution branch yields the expected orientation
// for exactly anti-parallel inputs (it produces a proper rotation, but the
// choice of intermediate axis makes the roll around b arbitrary).
func (m *Matrix3) SetRotationAToB(a, b vec.Vector3) error {
	cross := a.Cross(b)
	dot := a.Dot(b)

	if abs(dot) > 1.0-aToBParallelGap {
		// substitution: p is the coordinate axis most orthogonal to a
		ax, ay, az := abs(a.X), abs(a.Y), abs(a.Z)
		var p vec.Vector3
		if ax < ay {
			if ax < az {
				p = vec.XUnit
			} else {
				p = vec.ZUnit
			}
		} else {
			if ay < az {
				p = vec.YUnit
			} else {
				p = vec.ZUnit
			}
		}
		u := p.Minus(a)
		v := p.Minus(b)
		c1 := 2 / u.Dot(u)
		c2 := 2 / v.Dot(v)
		c3 := c1 * c2 * u.Dot(v)
		v00 := -c1*u.X*u.X - c2*v.X*v.X + c3*v.X*u.X + 1
		v01 := -c1*u.X*u.Y - c2*v.X*v.Y + c3*v.X*u.Y
		v02 := -c1*u.X*u.Z - c2*v.X*v.Z + c3*v.X*u.Z
		v10 := -c1*u.Y*u.X - c2*v.Y*v.X + c3*v.Y*u.X
		v11 := -c1*u.Y*u.Y - c2*v.Y*v.Y + c3*v.Y*u.Y + 1
		v12 := -c1*u.Y*u.Z - c2*v.Y*v.Z + c3*v.Y*u.Z
		v20 := -c1*u.Z*u.X - c2*v.Z*v.X + c3*v.Z*u.X
		v21 := -c1*u.Z*u.Y - c2*v.Z*v.Y + c3*v.Z*u.Y
		v22 := -c1*u.Z*u.Z - c2*v.Z*v.Z + c3*v.Z*u.Z + 1

		return m.setRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22,
			classifyRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22))
	}

	h := 1 / (1 + dot)
	hvx := h * cross.X
	hvz := h * cross.Z
	hvxy := hvx * cross.Y
	hvxz := hvx * cross.Z
	hvyz := hvz * cross.Y
	v00 := dot + hvx*cross.X
	v01 := hvxy - cross.Z
	v02 := hvxz + cross.Y
	v10 := hvxy + cross.Z
	v11 := dot + h*cross.Y*cross.Y
	v12 := hvyz - cross.X
	v20 := hvxz - cross.Y
	v21 := hvyz + cross.X
	v22 := dot + hvz*cross.Z

	return m.setRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22,
		classifyRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22))
}

// ---------- immutable factory forms ----------

// RotationX returns a new rotation by angle (radians) about the x axis.
func RotationX(angle float64) *Matrix3 {
	m := &Matrix3{}
	_ = m.SetToRotationX(angle)

	return m
}

// RotationY returns a new rotation by angle (radians) about the y axis.
func RotationY(angle float64) *Matrix3 {
	m := &Matrix3{}
	_ = m.SetToRotationY(angle)

	return m
}

// RotationZ returns a new rotation by angle (radians) about the z axis.
func RotationZ(angle float64) *Matrix3 {
	m := &Matrix3{}
	_ = m.SetToRotationZ(angle)

	return m
}

// RotationAxisAngle returns a new rotation by angle about the unit axis.
func RotationAxisAngle(axis vec.Vector3, angle float64) *Matrix3 {
	m := &Matrix3{}
	_ = m.SetToRotationAxisAngle(axis, angle)

	return m
}

// TranslationRotation returns "rotate by angle, then translate by (x, y)".
func TranslationRotation(x, y, angle float64) *Matrix3 {
	m := &Matrix3{}
	_ = m.SetToTranslationRotation(x, y, angle)

	return m
}

// ScaleTranslationRotation returns "rotate by angle, scale uniformly by
// scale, then translate by (x, y)".
func ScaleTranslationRotation(scale, x, y, angle float64) *Matrix3 {
	m := &Matrix3{}
	_ = m.SetToScaleTranslationRotation(scale, x, y, angle)

	return m
}

// RotationAToB returns the rotation carrying unit vector a onto unit
// vector b. See SetRotationAToB for the numeric caveats.
func RotationAToB(a, b vec.Vector3) *Matrix3 {
	m := &Matrix3{}
	_ = m.SetRotationAToB(a, b)

	return m
}

// ---------- rotation/translation/scale queries ----------

// Translation returns the translation column (m02, m12) as a Vector2.
func (m *Matrix3) Translation() vec.Vector2 {
	return vec.Vector2{X: m.M02(), Y: m.M12()}
}

// Rotation returns the angle of the 2D rotation part, atan2(m10, m00),
// in (−π, π]. Meaningful for rotation-like affine matrices only.
func (m *Matrix3) Rotation() float64 {
	return (vec.Vector2{X: m.M00(), Y: m.M10()}).Angle()
}

// ScaleVector returns the per-axis scale magnitudes: the lengths of the
// two columns of the 2x2 linear part.
func (m *Matrix3) ScaleVector() vec.Vector2 {
	return vec.Vector2{
		X: (vec.Vector2{X: m.M00(), Y: m.M10()}).Magnitude(),
		Y: (vec.Vector2{X: m.M01(), Y: m.M11()}).Magnitude(),
	}
}
