// SPDX-License-Identifier: MIT

// Package pool - bounded LIFO free list.
//
// Purpose:
//   - Recycle previously constructed instances instead of allocating fresh
//     ones in hot loops; the newest released instance is handed out first
//     (LIFO) for cache friendliness.
//   - Bound memory: releases past capacity are dropped for the GC.
//   - Keep the surface minimal: Fetch, Release, Len, Cap, Clear.
//
// Complexity quicksheet:
//   - Fetch/Release: amortized O(1); Clear: O(n); New: O(warm).

package pool

// Pool is a bounded free list of T instances plus a factory for misses.
//   - free holds recycled instances (top of stack = most recently released).
//   - capacity bounds len(free); excess releases are dropped.
//   - factory constructs a fresh instance when the free list is empty.
//
// A Pool performs no reference counting and no re-initialization: callers
// must not retain a handle after releasing it, and must rebind a fetched
// instance's fields before use (see the typed FromPool helpers).
type Pool[T any] struct {
	free     []T       // LIFO free list, len <= capacity
	capacity int       // free-list bound, > 0
	factory  func() T  // miss constructor, never nil
}

// New creates a Pool with the given factory and options.
// Stage 1 (Validate): factory must be non-nil (programmer error → panic).
// Stage 2 (Prepare): resolve options, allocate backing slice.
// Stage 3 (Finalize): pre-warm when requested.
// Complexity: O(warm) construction; O(capacity) memory upper bound.
func New[T any](factory func() T, opts ...Option) *Pool[T] {
	if factory == nil {
		panic(panicNilFactory)
	}
	o := gatherOptions(opts...)

	p := &Pool[T]{
		free:     make([]T, 0, o.capacity),
		capacity: o.capacity,
		factory:  factory,
	}
	for i := 0; i < o.warm; i++ {
		p.free = append(p.free, factory())
	}

	return p
}

// Fetch returns a recycled instance when the free list is non-empty,
// otherwise a freshly constructed one. The recycled instance carries
// whatever state it was released with; rebind its fields before use.
// Complexity: O(1).
func (p *Pool[T]) Fetch() T {
	if n := len(p.free); n > 0 {
		item := p.free[n-1]
		var zero T
		p.free[n-1] = zero // drop the reference so the slice does not pin it
		p.free = p.free[:n-1]

		return item
	}

	return p.factory()
}

// Release returns an instance to the free list. When the list is at
// capacity the instance is dropped and left to the garbage collector.
// The caller must not use item after releasing it.
// Complexity: O(1).
func (p *Pool[T]) Release(item T) {
	if len(p.free) < p.capacity {
		p.free = append(p.free, item)
	}
}

// Len reports the number of instances currently held by the free list.
// Complexity: O(1).
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// Cap reports the free-list bound.
// Complexity: O(1).
func (p *Pool[T]) Cap() int {
	return p.capacity
}

// Clear drops every held instance, leaving the pool empty but usable.
// Complexity: O(n).
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.free {
		p.free[i] = zero
	}
	p.free = p.free[:0]
}
