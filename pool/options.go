// SPDX-License-Identifier: MIT

// Package pool: functional configuration for Pool construction.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package pool

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity bounds the free list when WithCapacity is not given.
	// Sized for moderate churn; hot paths override it (e.g. 1000 for
	// vectors, 300 for matrices).
	DefaultCapacity = 100

	// DefaultWarm is the number of instances pre-constructed at pool
	// creation. Zero: the first Fetch calls pay the construction cost.
	DefaultWarm = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "pool: WithCapacity: capacity must be > 0"
	panicWarmInvalid     = "pool: WithWarm: count must be >= 0"
	panicNilFactory      = "pool: New: factory must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; New accepts
// `...Option` and internally resolves them via gatherOptions.
type options struct {
	capacity int // free-list bound; > 0
	warm     int // instances pre-constructed at New; clamped to capacity
}

// WithCapacity sets the free-list bound.
// Stage 1 (Validate): capacity must be positive.
// Stage 2 (Execute): return a setter that writes capacity.
// Complexity: O(1).
func WithCapacity(capacity int) Option {
	if capacity <= 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *options) { o.capacity = capacity }
}

// WithWarm pre-constructs count instances at pool creation so the first
// Fetch calls are recycled rather than freshly allocated. Counts above
// the capacity are clamped to it.
// Stage 1 (Validate): count must be non-negative.
// Stage 2 (Execute): return a setter that writes warm.
// Complexity: O(1) here; New pays O(count) construction.
func WithWarm(count int) Option {
	if count < 0 {
		panic(panicWarmInvalid)
	}

	return func(o *options) { o.warm = count }
}

// gatherOptions resolves defaults and applies setters in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{
		capacity: DefaultCapacity,
		warm:     DefaultWarm,
	}
	for _, opt := range opts {
		opt(&o)
	}
	// clamp warm to capacity: pre-warming past the bound would be dropped anyway
	if o.warm > o.capacity {
		o.warm = o.capacity
	}

	return o
}
