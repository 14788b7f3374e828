// SPDX-License-Identifier: MIT
// Package mat_test contains unit tests for the trigonometric constructors,
// the exact-zero snap policy, and RotationAToB.
package mat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/affine/mat"
	"github.com/katalvlaran/affine/vec"
	"github.com/stretchr/testify/require"
)

func TestRotationZ_QuarterTurnIsExact(t *testing.T) {
	m := mat.RotationZ(math.Pi / 2)

	// the snap policy writes exact entries, not -0.99999.../6.1e-17
	require.Equal(t, 0.0, m.M00())
	require.Equal(t, -1.0, m.M01())
	require.Equal(t, 1.0, m.M10())
	require.Equal(t, 0.0, m.M11())

	got := m.TimesVector3(vec.XUnit)
	require.True(t, got.EqualsEpsilon(vec.YUnit, 1e-10))
}

func TestRotationZ_TagClassification(t *testing.T) {
	require.Equal(t, mat.TypeIdentity, mat.RotationZ(0).Type())
	// a half turn is exactly diag(-1,-1,1) under the snap policy
	require.Equal(t, mat.TypeScaling, mat.RotationZ(math.Pi).Type())
	require.Equal(t, mat.TypeAffine, mat.RotationZ(0.3).Type())
	// x/y rotations leave the affine plane for generic angles
	require.Equal(t, mat.TypeOther, mat.RotationX(0.3).Type())
	require.Equal(t, mat.TypeOther, mat.RotationY(0.3).Type())
}

func TestRotationX_MapsYToZ(t *testing.T) {
	m := mat.RotationX(math.Pi / 2)
	require.True(t, m.TimesVector3(vec.YUnit).EqualsEpsilon(vec.ZUnit, 1e-10))
	require.True(t, m.TimesVector3(vec.ZUnit).EqualsEpsilon(vec.YUnit.Negated(), 1e-10))
}

func TestRotationY_MapsZToX(t *testing.T) {
	m := mat.RotationY(math.Pi / 2)
	require.True(t, m.TimesVector3(vec.ZUnit).EqualsEpsilon(vec.XUnit, 1e-10))
	require.True(t, m.TimesVector3(vec.XUnit).EqualsEpsilon(vec.ZUnit.Negated(), 1e-10))
}

func TestRotationAxisAngle_MatchesAxisRotations(t *testing.T) {
	const angle = 0.83
	require.True(t, mat.RotationAxisAngle(vec.XUnit, angle).EqualsEpsilon(mat.RotationX(angle), 1e-12))
	require.True(t, mat.RotationAxisAngle(vec.YUnit, angle).EqualsEpsilon(mat.RotationY(angle), 1e-12))
	require.True(t, mat.RotationAxisAngle(vec.ZUnit, angle).EqualsEpsilon(mat.RotationZ(angle), 1e-12))
}

func TestTranslationRotation(t *testing.T) {
	m := mat.TranslationRotation(10, 20, math.Pi/2)
	require.Equal(t, vec.Vector2{X: 10, Y: 20}, m.Translation())
	require.InDelta(t, math.Pi/2, m.Rotation(), 1e-12)

	// rotate first, then translate
	got := m.TimesVector2(vec.Vector2{X: 1, Y: 0})
	require.True(t, got.EqualsEpsilon(vec.Vector2{X: 10, Y: 21}, 1e-10))

	// angle zero degrades to a plain translation, tag included
	require.Equal(t, mat.TypeTranslation2D, mat.TranslationRotation(3, 4, 0).Type())
}

func TestScaleTranslationRotation(t *testing.T) {
	m := mat.ScaleTranslationRotation(2, 10, 20, math.Pi/2)
	got := m.TimesVector2(vec.Vector2{X: 1, Y: 0})
	require.True(t, got.EqualsEpsilon(vec.Vector2{X: 10, Y: 22}, 1e-10))
	require.True(t, m.ScaleVector().EqualsEpsilon(vec.Vector2{X: 2, Y: 2}, 1e-12))
}

func TestRotationAToB_DirectBranch(t *testing.T) {
	a, err := (vec.Vector3{X: 1, Y: 2, Z: 3}).Normalized()
	require.NoError(t, err)
	b, err := (vec.Vector3{X: -2, Y: 0.5, Z: 1}).Normalized()
	require.NoError(t, err)

	m := mat.RotationAToB(a, b)
	require.True(t, m.TimesVector3(a).EqualsEpsilon(b, 1e-10))
	// a proper rotation: determinant +1, preserves length
	require.InDelta(t, 1.0, m.Determinant(), 1e-10)
	require.InDelta(t, 1.0, m.TimesVector3(a).Magnitude(), 1e-10)
}

func TestRotationAToB_Orthogonal(t *testing.T) {
	m := mat.RotationAToB(vec.XUnit, vec.YUnit)
	require.True(t, m.TimesVector3(vec.XUnit).EqualsEpsilon(vec.YUnit, 1e-10))
	require.InDelta(t, 1.0, m.Determinant(), 1e-10)
}

func TestRotationAToB_NearlyParallelFallback(t *testing.T) {
	a := vec.XUnit
	b, err := (vec.Vector3{X: 1, Y: 1e-5, Z: 0}).Normalized()
	require.NoError(t, err)

	// |a·b| > 1-1e-4 forces the substitution branch
	require.Greater(t, math.Abs(a.Dot(b)), 1.0-1e-4)
	m := mat.RotationAToB(a, b)
	require.True(t, m.TimesVector3(a).EqualsEpsilon(b, 1e-8))
	require.InDelta(t, 1.0, m.Determinant(), 1e-8)
}

// TestRotationAToB_AntiParallel exercises the substitution branch at its
// extreme. The construction produces a proper rotation carrying a onto -a;
// the roll around the target axis is an arbitrary byproduct of the
// intermediate-axis choice (see the TODO on SetRotationAToB), so the test
// pins only the mapping and the determinant, not the full matrix.
func TestRotationAToB_AntiParallel(t *testing.T) {
	for _, a := range []vec.Vector3{vec.XUnit, vec.YUnit, vec.ZUnit} {
		b := a.Negated()
		m := mat.RotationAToB(a, b)
		require.True(t, m.TimesVector3(a).EqualsEpsilon(b, 1e-10), "a=%v", a)
		require.InDelta(t, 1.0, m.Determinant(), 1e-10, "a=%v", a)
	}
}

func TestRotationAToB_IdenticalVectors(t *testing.T) {
	// exactly parallel: the fallback must still produce a well-defined
	// rotation fixing a
	m := mat.RotationAToB(vec.ZUnit, vec.ZUnit)
	require.True(t, m.TimesVector3(vec.ZUnit).EqualsEpsilon(vec.ZUnit, 1e-10))
	require.InDelta(t, 1.0, m.Determinant(), 1e-10)
}
