// SPDX-License-Identifier: MIT
// Package mat_test contains unit tests for determinant, inversion and
// transposition across every tag's path.
package mat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/affine/mat"
	"github.com/stretchr/testify/require"
)

func TestDeterminant_Concrete(t *testing.T) {
	require.Equal(t, 6.0, mat.Scaling(2, 3).Determinant())
	require.Equal(t, 1.0, mat.Identity().Determinant())
	require.Equal(t, 1.0, mat.Translation(5, 7).Determinant())
	require.Equal(t, 0.0, mat.Scaling(0, 3).Determinant())
	require.InDelta(t, 1.0, mat.RotationZ(0.37).Determinant(), 1e-12)
}

func TestInverted_Translation(t *testing.T) {
	inv, err := mat.Translation(5, 7).Inverted()
	require.NoError(t, err)
	require.Equal(t, mat.TypeTranslation2D, inv.Type())
	require.True(t, inv.Equals(mat.Translation(-5, -7)))
}

func TestInverted_Scaling(t *testing.T) {
	inv, err := mat.Scaling(2, 4).Inverted()
	require.NoError(t, err)
	require.Equal(t, mat.TypeScaling, inv.Type())
	require.True(t, inv.Equals(mat.Scaling(0.5, 0.25)))
}

func TestInverted_IdentityAliases(t *testing.T) {
	m := mat.Identity()
	inv, err := m.Inverted()
	require.NoError(t, err)
	require.Same(t, m, inv)
}

// TestInverted_InverseLaw: M × M⁻¹ = I within 1e-10 for every non-singular
// palette matrix, regardless of which typed branch inverted it.
func TestInverted_InverseLaw(t *testing.T) {
	identity := mat.Identity()
	for _, m := range operandPalette() {
		if m.Determinant() == 0 {
			continue
		}
		inv, err := m.Inverted()
		require.NoError(t, err)
		require.True(t, m.TimesMatrix(inv).EqualsEpsilon(identity, 1e-10),
			"M=\n%v (%s)\nM*inv(M)=\n%v", m, m.Type(), m.TimesMatrix(inv))
		require.True(t, inv.TimesMatrix(m).EqualsEpsilon(identity, 1e-10))
	}
}

func TestInverted_SingularAffine(t *testing.T) {
	// collapsed linear part, affine tag
	_, err := mat.Affine(1, 2, 3, 2, 4, 6).Inverted()
	require.ErrorIs(t, err, mat.ErrSingular)
}

func TestInverted_SingularGeneral(t *testing.T) {
	// rank-deficient with a non-affine bottom row → OTHER path
	singular := mat.RowMajor(
		1, 2, 3,
		2, 4, 6,
		1, 1, 2)
	require.Equal(t, mat.TypeOther, singular.Type())
	require.Equal(t, 0.0, singular.Determinant())
	_, err := singular.Inverted()
	require.ErrorIs(t, err, mat.ErrSingular)
}

func TestInverted_ZeroScaleDegradesSilently(t *testing.T) {
	// the SCALING path performs no singularity check: a zero factor
	// inverts to +Inf, and that is documented behavior, not an error
	inv, err := mat.Scaling(0, 2).Inverted()
	require.NoError(t, err)
	require.True(t, math.IsInf(inv.M00(), 1))
	require.Equal(t, 0.5, inv.M11())
}

func TestInvert_InPlace(t *testing.T) {
	m := mat.Translation(5, 7)
	require.NoError(t, m.Invert())
	require.True(t, m.Equals(mat.Translation(-5, -7)))

	s := mat.Affine(1, 2, 3, 2, 4, 6)
	require.ErrorIs(t, s.Invert(), mat.ErrSingular)
	require.True(t, s.Equals(mat.Affine(1, 2, 3, 2, 4, 6)), "failed Invert must leave the receiver untouched")
}

func TestInverted_GeneralPathMatchesAdjugate(t *testing.T) {
	m := mat.RowMajor(
		2, 1, 0,
		1, 3, 1,
		0.5, 0, 1)
	require.Equal(t, mat.TypeOther, m.Type())
	inv, err := m.Inverted()
	require.NoError(t, err)
	require.True(t, m.TimesMatrix(inv).EqualsEpsilon(mat.Identity(), 1e-10))
}

func TestTransposed(t *testing.T) {
	m := mat.RowMajor(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
	mt := m.Transposed()
	require.True(t, mt.Equals(mat.RowMajor(
		1, 4, 7,
		2, 5, 8,
		3, 6, 9)))

	// symmetric tags keep entries and tag untouched
	require.True(t, mat.Scaling(2, 3).Transposed().Equals(mat.Scaling(2, 3)))
	require.Equal(t, mat.TypeScaling, mat.Scaling(2, 3).Transposed().Type())

	// transposing a translation moves the offsets into the bottom row
	tt := mat.Translation(5, 7).Transposed()
	require.Equal(t, mat.TypeOther, tt.Type())
	require.Equal(t, 5.0, tt.M20())
	require.Equal(t, 7.0, tt.M21())

	// involution
	require.True(t, m.Transposed().Transposed().Equals(m))
}

func TestTranspose_InPlace(t *testing.T) {
	m := mat.Translation(5, 7)
	require.NoError(t, m.Transpose())
	require.Equal(t, mat.TypeOther, m.Type())
	require.NoError(t, m.Transpose())
	require.True(t, m.Equals(mat.Translation(5, 7)))
	require.Equal(t, mat.TypeTranslation2D, m.Type(), "double transpose re-derives the specific tag")
}
