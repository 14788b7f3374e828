// SPDX-License-Identifier: MIT

// Package mat - composition with typed fast-path dispatch.
//
// Purpose:
//   - Compose two matrices through the cheapest branch their tags prove
//     correct. The general 3x3 path is always correct; earlier branches are
//     taken only when they are provably equivalent to it:
//       1. an IDENTITY operand — the product IS the other operand;
//       2. two TRANSLATION_2D / two SCALING operands — O(1) combination
//          (translations add, diagonal scales multiply);
//       3. two non-OTHER operands — 2x3 affine-reduced multiply, the bottom
//          row is implicitly [0,0,1];
//       4. otherwise — the full nine dot products, tag re-derived.
//   - Apply a matrix to vectors: TimesVector3 (full 3x3) and TimesVector2
//     (affine point transform of a 2D point).
//
// Complexity quicksheet:
//   - Branches 1-2: O(1) entry work; branch 3: 12 multiply-adds;
//     branch 4: 27 multiplies. All O(1) on the fixed size.

package mat

import "github.com/katalvlaran/affine/vec"

// composed computes the row-major entries and tag of a×b for the non-identity
// branches. Callers handle the identity branch first (it needs no arithmetic
// at all).
func composed(a, b *Matrix3) (v [9]float64, typ Type) {
	// identity operand: the product is the other operand, verbatim
	if a.typ == TypeIdentity {
		return rowMajorOf(b), b.typ
	}
	if b.typ == TypeIdentity {
		return rowMajorOf(a), a.typ
	}

	// same specialized type: O(1) combination
	if a.typ == b.typ {
		switch a.typ {
		case TypeTranslation2D:
			// translations compose by adding offsets
			return [9]float64{
				1, 0, a.M02() + b.M02(),
				0, 1, a.M12() + b.M12(),
				0, 0, 1,
			}, TypeTranslation2D
		case TypeScaling:
			// axis-aligned scales compose by multiplying diagonals
			return [9]float64{
				a.M00() * b.M00(), 0, 0,
				0, a.M11() * b.M11(), 0,
				0, 0, 1,
			}, TypeScaling
		}
	}

	// both operands at least affine: bottom row is [0,0,1] on both sides,
	// so the third column of the linear part never contributes
	if a.typ != TypeOther && b.typ != TypeOther {
		return [9]float64{
			a.M00()*b.M00() + a.M01()*b.M10(),
			a.M00()*b.M01() + a.M01()*b.M11(),
			a.M00()*b.M02() + a.M01()*b.M12() + a.M02(),
			a.M10()*b.M00() + a.M11()*b.M10(),
			a.M10()*b.M01() + a.M11()*b.M11(),
			a.M10()*b.M02() + a.M11()*b.M12() + a.M12(),
			0, 0, 1,
		}, TypeAffine
	}

	// general 3x3 multiply; the tag is re-derived from the result
	v = [9]float64{
		a.M00()*b.M00() + a.M01()*b.M10() + a.M02()*b.M20(),
		a.M00()*b.M01() + a.M01()*b.M11() + a.M02()*b.M21(),
		a.M00()*b.M02() + a.M01()*b.M12() + a.M02()*b.M22(),
		a.M10()*b.M00() + a.M11()*b.M10() + a.M12()*b.M20(),
		a.M10()*b.M01() + a.M11()*b.M11() + a.M12()*b.M21(),
		a.M10()*b.M02() + a.M11()*b.M12() + a.M12()*b.M22(),
		a.M20()*b.M00() + a.M21()*b.M10() + a.M22()*b.M20(),
		a.M20()*b.M01() + a.M21()*b.M11() + a.M22()*b.M21(),
		a.M20()*b.M02() + a.M21()*b.M12() + a.M22()*b.M22(),
	}

	return v, classifyRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8])
}

// rowMajorOf reads m's entries back out in row-major order.
func rowMajorOf(m *Matrix3) [9]float64 {
	return [9]float64{
		m.entries[0], m.entries[3], m.entries[6],
		m.entries[1], m.entries[4], m.entries[7],
		m.entries[2], m.entries[5], m.entries[8],
	}
}

// TimesMatrix returns the composition m×other (immutable form).
//
// ALIASING: when either operand is tagged IDENTITY the result IS the other
// operand, not a copy — callers must treat the result as possibly shared.
// Use Copy when an independent instance is required.
func (m *Matrix3) TimesMatrix(other *Matrix3) *Matrix3 {
	if m.typ == TypeIdentity {
		return other
	}
	if other.typ == TypeIdentity {
		return m
	}
	v, typ := composed(m, other)

	return newRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], typ)
}

// MultiplyMatrix rewrites the receiver to m×other (mutable form). Funnels
// through the choke point even when other is the identity, so frozen
// receivers always error.
func (m *Matrix3) MultiplyMatrix(other *Matrix3) error {
	v, typ := composed(m, other)

	return m.setRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], typ)
}

// TimesVector3 returns the full 3x3 product m·v.
func (m *Matrix3) TimesVector3(v vec.Vector3) vec.Vector3 {
	return vec.Vector3{
		X: m.M00()*v.X + m.M01()*v.Y + m.M02()*v.Z,
		Y: m.M10()*v.X + m.M11()*v.Y + m.M12()*v.Z,
		Z: m.M20()*v.X + m.M21()*v.Y + m.M22()*v.Z,
	}
}

// TimesVector2 transforms a 2D point: the affine product with an implicit
// homogeneous coordinate of 1. The bottom row is ignored; for a non-affine
// matrix the result is the un-normalized first two components.
func (m *Matrix3) TimesVector2(v vec.Vector2) vec.Vector2 {
	return vec.Vector2{
		X: m.M00()*v.X + m.M01()*v.Y + m.M02(),
		Y: m.M10()*v.X + m.M11()*v.Y + m.M12(),
	}
}
