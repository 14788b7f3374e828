// Package vec provides plain 2D/3D vector values with dual
// immutable/mutable method families.
//
// The vec package provides:
//
//   - Vector3 and Vector2, ownership-free value types: three (or two)
//     independent float64 components with no further invariants.
//   - An immutable family (value receivers, return new values): Plus,
//     Minus, TimesScalar, Negated, Normalized, Cross, Dot, ...
//   - A mutable family (pointer receivers, mutate in place): Add,
//     Subtract, MultiplyScalar, Negate, Normalize, ... — every mutator
//     funnels through SetXYZ/SetXY.
//   - Pooled acquisition (FromPool/FreeToPool) for hot loops that churn
//     through scratch vectors.
//
// Numeric policy: arithmetic never rejects non-finite inputs — ±Inf and
// NaN propagate as IEEE 754 dictates, and IsFinite is offered as an
// opt-in post-hoc check. The two exceptions are normalization of a
// zero-magnitude vector and averaging an empty list, which surface as
// sentinel errors (ErrZeroMagnitude, ErrEmptyInput) rather than
// silently producing NaN.
//
// See the examples in this package for usage patterns.
package vec
