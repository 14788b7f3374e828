// SPDX-License-Identifier: MIT

// Package mat: numeric policy helpers shared across the implementation.

package mat

import "math"

// trigSnap is the magnitude below which sine/cosine results are written as
// exactly 0. Quarter-turn rotations then produce exact zeros instead of
// values like 6.12e-17, which keeps exact-equality checks and tag
// classification meaningful downstream.
const trigSnap = 1e-15

// snap flushes sub-trigSnap magnitudes to exactly zero.
func snap(x float64) float64 {
	if math.Abs(x) < trigSnap {
		return 0
	}

	return x
}

// sincos returns the snapped sine and cosine of angle.
func sincos(angle float64) (sin, cos float64) {
	sin, cos = math.Sincos(angle)

	return snap(sin), snap(cos)
}

func abs(x float64) float64 {
	return math.Abs(x)
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
