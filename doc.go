// Package affine is a compact toolkit for 2D/3D affine geometry on the
// hot path: typed 3x3 transform matrices, plain value vectors,
// axis-aligned bounding boxes, and a bounded object pool for
// allocation-free reuse.
//
// 🚀 What is affine?
//
//	A small, deterministic library that brings together:
//		• vec    — Vector2/Vector3 value arithmetic with dual
//		           immutable/mutable method families
//		• mat    — Matrix3, a 3x3 affine matrix that classifies itself
//		           (IDENTITY / TRANSLATION_2D / SCALING / AFFINE / OTHER)
//		           and dispatches composition, inversion and transposition
//		           to provably-equivalent fast paths
//		• bounds — Bounds3, an interval-product bounding box with
//		           union/intersection algebra and conservative re-bounding
//		           under affine transforms
//		• pool   — Pool[T], a bounded LIFO free list that recycles
//		           value objects instead of allocating fresh ones
//
// ✨ Why choose affine?
//
//   - Predictable numerics — exact-zero trig snapping, documented
//     epsilon policies, no hidden randomness
//   - Rock-solid error discipline — sentinel errors matched with
//     errors.Is, no panics on user-triggered conditions
//   - Pure Go — no cgo, no runtime dependencies
//   - Hot-path friendly — typed fast paths and pooling keep transform
//     pipelines out of the allocator
//
// Quick ASCII example:
//
//	    y                 y
//	    │   ┌──┐          │    ◇
//	    │   └──┘    ──►   │   ◇  ◇    rotate + re-bound
//	    └──────── x       └──────── x
//
//	a box transformed by a rotation is conservatively re-bounded from
//	the images of its eight corners.
//
// Dive into the per-package docs (vec, mat, bounds, pool) for the full
// API surface, numeric policies, and usage patterns.
//
//	go get github.com/katalvlaran/affine
package affine
