// SPDX-License-Identifier: MIT

// Package mat - Matrix3 storage, construction and the mutation choke point.
//
// Purpose:
//   - Store nine entries column-major (entries[0..8] map to the row-major
//     positions m00,m10,m20,m01,m11,m21,m02,m12,m22) plus a Type tag.
//   - Funnel EVERY entry mutation through setRowMajor, the single write
//     point that enforces immutability and keeps the tag honest.
//   - Provide tagged factory constructors and plain accessors.
//
// Complexity quicksheet:
//   - Constructors/accessors/Equals: O(1) on the fixed 3x3 size.

package mat

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3x3 transform matrix with a structure tag.
// Matrix3 has entity semantics: operate on it through *Matrix3, construct
// via the package factories, and never copy a value past MakeImmutable.
type Matrix3 struct {
	entries   [9]float64 // column-major: m00,m10,m20,m01,m11,m21,m02,m12,m22
	typ       Type       // structure tag; cache of a derivable property
	immutable bool       // set once by MakeImmutable; guards setRowMajor
}

// identityEntries is the column-major identity, used by IsIdentity for the
// conservative-tag case.
var identityEntries = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Process-wide frozen singletons. Safe to share by reference for the whole
// process lifetime; any mutation attempt returns ErrImmutable.
var (
	// IdentityMatrix is the frozen identity transform.
	IdentityMatrix = Identity().MakeImmutable()

	// XReflection flips the y axis (reflection across the x axis).
	XReflection = RowMajor(
		1, 0, 0,
		0, -1, 0,
		0, 0, 1,
	).MakeImmutable()

	// YReflection flips the x axis (reflection across the y axis).
	YReflection = RowMajor(
		-1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	).MakeImmutable()
)

// setRowMajor is the single mutation choke point of Matrix3: every public
// mutator funnels through it, directly or via a wrapper. It rejects writes
// to frozen instances and installs the caller's tag, which must be either
// freshly classified or provably valid for the written entries.
// Complexity: O(1).
func (m *Matrix3) setRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22 float64, typ Type) error {
	if m.immutable {
		return ErrImmutable
	}
	m.entries[0] = v00
	m.entries[1] = v10
	m.entries[2] = v20
	m.entries[3] = v01
	m.entries[4] = v11
	m.entries[5] = v21
	m.entries[6] = v02
	m.entries[7] = v12
	m.entries[8] = v22
	m.typ = typ

	return nil
}

// newRowMajor builds a fresh matrix with a caller-supplied tag. Fresh
// instances are never immutable, so the choke-point error is impossible.
func newRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22 float64, typ Type) *Matrix3 {
	m := &Matrix3{}
	_ = m.setRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22, typ)

	return m
}

// ---------- factory constructors (immutable forms) ----------

// Identity returns a new identity matrix tagged TypeIdentity.
func Identity() *Matrix3 {
	return newRowMajor(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		TypeIdentity)
}

// Translation returns the 2D translation by (x, y), tagged TypeTranslation2D.
func Translation(x, y float64) *Matrix3 {
	return newRowMajor(
		1, 0, x,
		0, 1, y,
		0, 0, 1,
		TypeTranslation2D)
}

// Scaling returns the 2D axis-aligned scaling by (x, y), tagged TypeScaling.
func Scaling(x, y float64) *Matrix3 {
	return newRowMajor(
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
		TypeScaling)
}

// Affine returns the matrix with the given 2x3 affine block and an implicit
// [0,0,1] bottom row, tagged TypeAffine.
func Affine(m00, m01, m02, m10, m11, m12 float64) *Matrix3 {
	return newRowMajor(
		m00, m01, m02,
		m10, m11, m12,
		0, 0, 1,
		TypeAffine)
}

// RowMajor returns a new matrix from row-major entries, classifying the tag
// from the values. Any float64 is accepted, including non-finite.
func RowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22 float64) *Matrix3 {
	return newRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22,
		classifyRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22))
}

// ColumnMajor returns a new matrix from column-major entries (the storage
// order), classifying the tag from the values.
func ColumnMajor(v00, v10, v20, v01, v11, v21, v02, v12, v22 float64) *Matrix3 {
	return RowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22)
}

// Copy returns a new mutable matrix with m's entries and tag.
func Copy(m *Matrix3) *Matrix3 {
	return newRowMajor(
		m.entries[0], m.entries[3], m.entries[6],
		m.entries[1], m.entries[4], m.entries[7],
		m.entries[2], m.entries[5], m.entries[8],
		m.typ)
}

// ---------- mutable forms ----------

// SetRowMajor rewrites all nine entries from row-major values, re-deriving
// the tag. Returns ErrImmutable on frozen instances.
func (m *Matrix3) SetRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22 float64) error {
	return m.setRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22,
		classifyRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22))
}

// Set copies other's entries and tag into the receiver.
func (m *Matrix3) Set(other *Matrix3) error {
	return m.setRowMajor(
		other.entries[0], other.entries[3], other.entries[6],
		other.entries[1], other.entries[4], other.entries[7],
		other.entries[2], other.entries[5], other.entries[8],
		other.typ)
}

// SetToIdentity resets the receiver to the identity transform.
func (m *Matrix3) SetToIdentity() error {
	return m.setRowMajor(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		TypeIdentity)
}

// SetTranslation resets the receiver to the 2D translation by (x, y).
func (m *Matrix3) SetTranslation(x, y float64) error {
	return m.setRowMajor(
		1, 0, x,
		0, 1, y,
		0, 0, 1,
		TypeTranslation2D)
}

// SetScaling resets the receiver to the 2D scaling by (x, y).
func (m *Matrix3) SetScaling(x, y float64) error {
	return m.setRowMajor(
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
		TypeScaling)
}

// SetAffine resets the receiver to the given 2x3 affine block.
func (m *Matrix3) SetAffine(m00, m01, m02, m10, m11, m12 float64) error {
	return m.setRowMajor(
		m00, m01, m02,
		m10, m11, m12,
		0, 0, 1,
		TypeAffine)
}

// ---------- immutability ----------

// MakeImmutable freezes the matrix permanently: every subsequent mutation
// attempt returns ErrImmutable. Returns the receiver for chaining.
func (m *Matrix3) MakeImmutable() *Matrix3 {
	m.immutable = true

	return m
}

// IsImmutable reports whether MakeImmutable has been called.
func (m *Matrix3) IsImmutable() bool {
	return m.immutable
}

// ---------- accessors ----------

// M00 returns the row-major entry at row 0, column 0.
func (m *Matrix3) M00() float64 { return m.entries[0] }

// M01 returns the row-major entry at row 0, column 1.
func (m *Matrix3) M01() float64 { return m.entries[3] }

// M02 returns the row-major entry at row 0, column 2.
func (m *Matrix3) M02() float64 { return m.entries[6] }

// M10 returns the row-major entry at row 1, column 0.
func (m *Matrix3) M10() float64 { return m.entries[1] }

// M11 returns the row-major entry at row 1, column 1.
func (m *Matrix3) M11() float64 { return m.entries[4] }

// M12 returns the row-major entry at row 1, column 2.
func (m *Matrix3) M12() float64 { return m.entries[7] }

// M20 returns the row-major entry at row 2, column 0.
func (m *Matrix3) M20() float64 { return m.entries[2] }

// M21 returns the row-major entry at row 2, column 1.
func (m *Matrix3) M21() float64 { return m.entries[5] }

// M22 returns the row-major entry at row 2, column 2.
func (m *Matrix3) M22() float64 { return m.entries[8] }

// Entries returns a copy of the column-major backing array.
func (m *Matrix3) Entries() [9]float64 {
	return m.entries
}

// Type returns the structure tag.
func (m *Matrix3) Type() Type {
	return m.typ
}

// IsIdentity reports whether the matrix is exactly the identity. The tag
// answers in O(1) when it already says so; a conservative tag falls back to
// an exact entry comparison (a matrix tagged OTHER may still BE identity).
func (m *Matrix3) IsIdentity() bool {
	if m.typ == TypeIdentity {
		return true
	}

	return m.entries == identityEntries
}

// IsAffine reports whether the bottom row is exactly [0, 0, 1].
func (m *Matrix3) IsAffine() bool {
	if m.typ != TypeOther {
		return true
	}

	return m.entries[2] == 0 && m.entries[5] == 0 && m.entries[8] == 1
}

// IsFinite reports whether every entry is finite. Opt-in: no operation
// calls this implicitly.
func (m *Matrix3) IsFinite() bool {
	for _, e := range m.entries {
		if !isFinite(e) {
			return false
		}
	}

	return true
}

// Equals reports exact entry-wise equality. The tag does not participate:
// two equal matrices may carry different (both-valid) tags.
func (m *Matrix3) Equals(other *Matrix3) bool {
	return m.entries == other.entries
}

// EqualsEpsilon reports entry-wise closeness: |a−b| < eps per entry.
func (m *Matrix3) EqualsEpsilon(other *Matrix3, eps float64) bool {
	for i := range m.entries {
		if !(abs(m.entries[i]-other.entries[i]) < eps) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: rows top to bottom, row-major.
func (m *Matrix3) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%g, %g, %g]\n", m.M00(), m.M01(), m.M02()))
	sb.WriteString(fmt.Sprintf("[%g, %g, %g]\n", m.M10(), m.M11(), m.M12()))
	sb.WriteString(fmt.Sprintf("[%g, %g, %g]", m.M20(), m.M21(), m.M22()))

	return sb.String()
}
