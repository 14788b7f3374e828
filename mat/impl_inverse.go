// SPDX-License-Identifier: MIT

// Package mat - determinant, inversion and transposition.
//
// Purpose:
//   - Invert through the cheapest branch the tag proves correct:
//     IDENTITY is its own inverse; TRANSLATION_2D negates its offsets;
//     SCALING reciprocates its diagonal (a zero factor yields ±Inf, by
//     the package numeric policy, NOT an error); AFFINE uses the closed
//     2x3 cofactor form; OTHER uses the full adjugate over the
//     determinant. Only the last two check for singularity.
//   - Transpose with the observation that IDENTITY and SCALING matrices
//     are symmetric.
//
// Complexity quicksheet:
//   - All branches O(1) on the fixed size; the OTHER inverse costs the
//     nine cofactors plus the determinant.

package mat

// Determinant returns the determinant expanded along the first row.
func (m *Matrix3) Determinant() float64 {
	return m.M00()*(m.M11()*m.M22()-m.M12()*m.M21()) -
		m.M01()*(m.M10()*m.M22()-m.M12()*m.M20()) +
		m.M02()*(m.M10()*m.M21()-m.M11()*m.M20())
}

// invertedRowMajor computes the row-major entries and tag of the inverse,
// dispatching on the tag. The identity branch is handled by the callers
// (it needs no arithmetic).
func (m *Matrix3) invertedRowMajor() (v [9]float64, typ Type, err error) {
	switch m.typ {
	case TypeIdentity:
		return rowMajorOf(m), TypeIdentity, nil

	case TypeTranslation2D:
		return [9]float64{
			1, 0, -m.M02(),
			0, 1, -m.M12(),
			0, 0, 1,
		}, TypeTranslation2D, nil

	case TypeScaling:
		// no singularity check: 1/0 is +Inf by the numeric policy
		return [9]float64{
			1 / m.M00(), 0, 0,
			0, 1 / m.M11(), 0,
			0, 0, 1,
		}, TypeScaling, nil

	case TypeAffine:
		// the full determinant reduces to the 2x2 linear part
		det := m.M00()*m.M11() - m.M01()*m.M10()
		if det == 0 {
			return v, TypeOther, ErrSingular
		}

		return [9]float64{
			m.M11() / det, -m.M01() / det, (m.M01()*m.M12() - m.M02()*m.M11()) / det,
			-m.M10() / det, m.M00() / det, (m.M02()*m.M10() - m.M00()*m.M12()) / det,
			0, 0, 1,
		}, TypeAffine, nil

	default:
		det := m.Determinant()
		if det == 0 {
			return v, TypeOther, ErrSingular
		}
		// adjugate over determinant
		v = [9]float64{
			(m.M11()*m.M22() - m.M12()*m.M21()) / det,
			(m.M02()*m.M21() - m.M01()*m.M22()) / det,
			(m.M01()*m.M12() - m.M02()*m.M11()) / det,
			(m.M12()*m.M20() - m.M10()*m.M22()) / det,
			(m.M00()*m.M22() - m.M02()*m.M20()) / det,
			(m.M02()*m.M10() - m.M00()*m.M12()) / det,
			(m.M10()*m.M21() - m.M11()*m.M20()) / det,
			(m.M01()*m.M20() - m.M00()*m.M21()) / det,
			(m.M00()*m.M11() - m.M01()*m.M10()) / det,
		}

		return v, classifyRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8]), nil
	}
}

// Inverted returns the inverse as a new matrix (immutable form).
//
// ALIASING: an IDENTITY-tagged matrix is its own inverse and is returned
// verbatim, exactly as TimesMatrix aliases its identity operands.
// Returns ErrSingular when the determinant is zero on the AFFINE or OTHER
// paths.
func (m *Matrix3) Inverted() (*Matrix3, error) {
	if m.typ == TypeIdentity {
		return m, nil
	}
	v, typ, err := m.invertedRowMajor()
	if err != nil {
		return nil, err
	}

	return newRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], typ), nil
}

// Invert rewrites the receiver to its inverse (mutable form). Funnels
// through the choke point, so frozen receivers error even when the entries
// would not change.
func (m *Matrix3) Invert() error {
	v, typ, err := m.invertedRowMajor()
	if err != nil {
		return err
	}

	return m.setRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], typ)
}

// transposedRowMajor swaps rows and columns. IDENTITY and SCALING matrices
// are symmetric, so their entries (and tags) are untouched; everything else
// is re-classified (transposing a translation moves its offsets into the
// bottom row, leaving TypeOther territory).
func (m *Matrix3) transposedRowMajor() (v [9]float64, typ Type) {
	switch m.typ {
	case TypeIdentity, TypeScaling:
		return rowMajorOf(m), m.typ
	default:
		v = [9]float64{
			m.M00(), m.M10(), m.M20(),
			m.M01(), m.M11(), m.M21(),
			m.M02(), m.M12(), m.M22(),
		}

		return v, classifyRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8])
	}
}

// Transposed returns the transpose as a new matrix (immutable form).
func (m *Matrix3) Transposed() *Matrix3 {
	v, typ := m.transposedRowMajor()

	return newRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], typ)
}

// Transpose rewrites the receiver to its transpose (mutable form).
func (m *Matrix3) Transpose() error {
	v, typ := m.transposedRowMajor()

	return m.setRowMajor(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], typ)
}
