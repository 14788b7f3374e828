// Package pool provides a bounded LIFO free-list allocator for
// high-churn value objects.
//
// The pool package provides:
//
//   - Pool[T], a generic free list that hands out recycled instances
//     before constructing fresh ones, bounded by a fixed capacity.
//   - Functional options (WithCapacity, WithWarm) for sizing and
//     pre-warming in the style of the rest of the library.
//
// A Pool is best for small value objects that are fetched and released
// in tight loops — transform matrices, scratch vectors, bounding boxes —
// where per-iteration heap allocation would dominate the work itself.
// Releases beyond capacity are dropped and reclaimed by the garbage
// collector, so a Pool can never grow without bound.
//
// Pools make no thread-safety guarantees: the intended usage is a
// single goroutine (or one Pool per goroutine). Re-initialization of a
// recycled instance is the caller's job; the typed FromPool helpers in
// vec, mat and bounds perform it for their respective types.
//
// See the examples in this package for usage patterns.
package pool
