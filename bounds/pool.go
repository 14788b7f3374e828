// SPDX-License-Identifier: MIT

// Package bounds - pooled acquisition of boxes.
// Broad-phase queries refit boxes at high rates; the package-level free
// list recycles them. Single-goroutine discipline, as for the pool
// package itself.

package bounds

import "github.com/katalvlaran/affine/pool"

// Bounds3PoolCapacity bounds the package-level Bounds3 free list.
const Bounds3PoolCapacity = 200

var bounds3Pool = pool.New(
	func() *Bounds3 { return &Bounds3{} },
	pool.WithCapacity(Bounds3PoolCapacity),
)

// FromPool returns a pooled *Bounds3 rebound to the given extremes — a
// recycled instance when available, otherwise a fresh one. Release it with
// FreeToPool when done; never use a handle after releasing it.
// Complexity: O(1).
func FromPool(minX, minY, minZ, maxX, maxY, maxZ float64) *Bounds3 {
	return bounds3Pool.Fetch().SetMinMax(minX, minY, minZ, maxX, maxY, maxZ)
}

// FreeToPool returns the box to the package free list for reuse.
// Releases beyond the pool capacity are dropped for the GC. The caller
// must be the sole remaining owner of b.
func (b *Bounds3) FreeToPool() {
	if b == nil {
		return
	}
	bounds3Pool.Release(b)
}
