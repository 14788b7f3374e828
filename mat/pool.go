// SPDX-License-Identifier: MIT

// Package mat - pooled acquisition of matrices.
// Transform pipelines compose and discard matrices at high rates; the
// package-level free list recycles them. Single-goroutine discipline, as
// for the pool package itself.

package mat

import "github.com/katalvlaran/affine/pool"

// Matrix3PoolCapacity bounds the package-level Matrix3 free list.
const Matrix3PoolCapacity = 300

var matrix3Pool = pool.New(
	func() *Matrix3 { return &Matrix3{} },
	pool.WithCapacity(Matrix3PoolCapacity),
)

// FromPool returns a pooled *Matrix3 rebound to the given row-major
// entries (tag re-derived) — a recycled instance when available, otherwise
// a fresh one. Release it with FreeToPool when done; never use a handle
// after releasing it.
// Complexity: O(1).
func FromPool(v00, v01, v02, v10, v11, v12, v20, v21, v22 float64) *Matrix3 {
	m := matrix3Pool.Fetch()
	// a pooled instance is never immutable (FreeToPool refuses frozen
	// matrices), so the choke point cannot fail here
	_ = m.SetRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22)

	return m
}

// FreeToPool returns the matrix to the package free list for reuse.
// Frozen matrices (the singletons included) are never pooled: recycling
// one would hand out an unusable instance. Releases beyond the pool
// capacity are dropped for the GC.
func (m *Matrix3) FreeToPool() {
	if m == nil || m.immutable {
		return
	}
	matrix3Pool.Release(m)
}
