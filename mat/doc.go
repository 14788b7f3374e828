// Package mat provides Matrix3, a 3x3 affine transform matrix that
// classifies its own structure and dispatches arithmetic to typed fast
// paths.
//
// The mat package provides:
//
//   - Matrix3, nine float64 entries stored column-major plus a Type tag
//     drawn from {IDENTITY, TRANSLATION_2D, SCALING, AFFINE, OTHER}.
//   - Composition (TimesMatrix/MultiplyMatrix), inversion
//     (Inverted/Invert) and transposition with per-type specializations
//     that are observationally indistinguishable from the general 3x3
//     paths — the tag is a performance hint, never a correctness input.
//   - Trigonometric constructors (rotations about x/y/z and arbitrary
//     axes, scale+translate+rotate compositions) with an exact-zero snap
//     policy: |sin| or |cos| below 1e-15 is written as exactly 0, so a
//     quarter turn produces exact entries rather than floating noise.
//   - Immutability (MakeImmutable) with three process-wide frozen
//     singletons: IdentityMatrix, XReflection, YReflection.
//   - Plain-object state serialization (StateObject/FromStateObject)
//     with exact round-trip.
//   - Pooled acquisition (FromPool/FreeToPool) for transform-heavy loops.
//
// The type tag is a cache of a derivable property, not independent
// state. Every mutation funnels through a single private write point
// that either re-derives the tag or accepts one the caller has just
// proven; the tag may be conservatively general (OTHER for an actual
// scaling matrix is legal) but never claims more structure than the
// entries hold.
//
// Numeric policy: construction accepts any float64, including ±Inf and
// NaN — IsFinite is an opt-in query, never an implicit gate. Inverting
// a scaling matrix with a zero factor yields ±Inf entries rather than
// an error; only a zero determinant on the AFFINE and OTHER inversion
// paths surfaces as ErrSingular.
//
// See the examples in this package and bounds for usage patterns.
package mat
