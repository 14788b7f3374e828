// SPDX-License-Identifier: MIT
// Package vec: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the vec
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package vec

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vec: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is essential — callers still match via errors.Is.

var (
	// ErrZeroMagnitude is returned when normalization is requested for a
	// vector whose magnitude is exactly zero. Normalization never silently
	// produces NaN components.
	ErrZeroMagnitude = errors.New("vec: cannot normalize a zero-magnitude vector")

	// ErrEmptyInput is returned when an aggregate (Average) receives no
	// vectors. The component-wise mean of nothing is undefined.
	ErrEmptyInput = errors.New("vec: empty input slice")
)
