// Package bounds provides Bounds3, an axis-aligned 3D bounding box as an
// interval product (min/max per axis).
//
// The bounds package provides:
//
//   - Bounds3, six float64 fields {MinX..MaxZ}; "empty" means any max is
//     below its min (negative width/height/depth). A box of zero
//     width/height/depth is NOT empty — it is a single point.
//   - Two sentinel values: Nothing (mins +Inf, maxes −Inf), the identity
//     element for Union, and Everything, the identity element for
//     Intersection.
//   - Union and Intersection, the only binary combinators. A set
//     difference is intentionally NOT offered: it is well-defined but
//     needs substantially more case logic than an interval product, and
//     has never been needed.
//   - Containment and overlap queries (ContainsCoordinates,
//     ContainsPoint, ContainsBounds, IntersectsBounds).
//   - Transform/Transformed: conservative re-bounding under an affine
//     matrix by mapping all eight corners and taking the component-wise
//     min/max of the images. For rotations this deliberately
//     over-approximates — the result bounds the transformed box, it is
//     not the tightest box of the transformed contents.
//   - The dual immutable/mutable discipline of the rest of the library;
//     every mutator funnels through SetMinMax.
//   - Pooled acquisition (FromPool/FreeToPool).
//
// Epsilon comparison is infinity-aware: EqualsEpsilon falls back to exact
// equality on any axis where the two values do not have a finite sum,
// because Inf − Inf is NaN and would poison a subtraction-based check.
//
// See the examples in this package for usage patterns.
package bounds
