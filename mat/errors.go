// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the mat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is essential — callers still match via errors.Is.

var (
	// ErrSingular is returned when inversion encounters a zero determinant
	// on the AFFINE or OTHER paths. The specialized IDENTITY, TRANSLATION_2D
	// and SCALING paths never perform a singularity check: a zero scale
	// factor inverts to ±Inf entries silently (see the package doc).
	ErrSingular = errors.New("mat: singular matrix")

	// ErrImmutable is returned when a mutation is attempted on a matrix
	// frozen by MakeImmutable (including the package singletons).
	ErrImmutable = errors.New("mat: mutation of immutable matrix")

	// ErrUnknownType is returned by FromStateObject and ParseType when the
	// type name string is not one of the five known variants.
	ErrUnknownType = errors.New("mat: unknown matrix type name")
)
