// SPDX-License-Identifier: MIT

// Package vec - pooled acquisition of scratch vectors.
// FromPool/FreeToPool wrap a package-level bounded free list so hot loops
// can churn through vectors without allocator traffic. Single-goroutine
// discipline, as for the pool package itself.

package vec

import "github.com/katalvlaran/affine/pool"

// Vector3PoolCapacity bounds the package-level Vector3 free list.
// Vectors are the highest-churn type of the library.
const Vector3PoolCapacity = 1000

var vector3Pool = pool.New(
	func() *Vector3 { return &Vector3{} },
	pool.WithCapacity(Vector3PoolCapacity),
)

// FromPool returns a pooled *Vector3 rebound to (x, y, z) — a recycled
// instance when available, otherwise a fresh one. Release it with
// FreeToPool when done; never use a handle after releasing it.
// Complexity: O(1).
func FromPool(x, y, z float64) *Vector3 {
	return vector3Pool.Fetch().SetXYZ(x, y, z)
}

// FreeToPool returns the vector to the package free list for reuse.
// Releases beyond the pool capacity are dropped for the GC. The caller
// must be the sole remaining owner of v.
func (v *Vector3) FreeToPool() {
	if v == nil {
		return
	}
	vector3Pool.Release(v)
}
