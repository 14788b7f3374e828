// SPDX-License-Identifier: MIT

// Package mat: the Matrix3 structure tag — a closed variant set used to
// select arithmetic fast paths.
//
// The tag is a performance hint with a one-sided contract: it must never
// claim MORE structure than the entries hold, but it is permitted to be
// conservatively general (an actual scaling matrix tagged OTHER is legal,
// merely slower). classifyRowMajor below is the single source of truth
// for deriving a tag from entries.

package mat

import "fmt"

// Type classifies the structure of a Matrix3.
type Type uint8

// The five variants, ordered roughly from most general to most specific.
const (
	// TypeOther: no structural guarantee; all operations take the full
	// 3x3 general paths.
	TypeOther Type = iota

	// TypeAffine: the bottom row is exactly [0, 0, 1].
	TypeAffine

	// TypeTranslation2D: affine with an identity 2x2 linear part; only
	// the translation column may be non-zero.
	TypeTranslation2D

	// TypeScaling: affine with a diagonal 2x2 linear part and zero
	// translation.
	TypeScaling

	// TypeIdentity: the identity matrix exactly.
	TypeIdentity
)

// wire names, shared by String, ParseType and state serialization
const (
	nameOther         = "OTHER"
	nameAffine        = "AFFINE"
	nameTranslation2D = "TRANSLATION_2D"
	nameScaling       = "SCALING"
	nameIdentity      = "IDENTITY"
)

// String returns the wire name of the variant (e.g. "TRANSLATION_2D").
func (t Type) String() string {
	switch t {
	case TypeIdentity:
		return nameIdentity
	case TypeTranslation2D:
		return nameTranslation2D
	case TypeScaling:
		return nameScaling
	case TypeAffine:
		return nameAffine
	default:
		return nameOther
	}
}

// ParseType maps a wire name back to its variant.
// Returns ErrUnknownType for anything else.
func ParseType(name string) (Type, error) {
	switch name {
	case nameIdentity:
		return TypeIdentity, nil
	case nameTranslation2D:
		return TypeTranslation2D, nil
	case nameScaling:
		return TypeScaling, nil
	case nameAffine:
		return TypeAffine, nil
	case nameOther:
		return TypeOther, nil
	default:
		return TypeOther, fmt.Errorf("ParseType(%q): %w", name, ErrUnknownType)
	}
}

// classifyRowMajor derives the most specific valid tag for the given
// row-major entries. Exact comparisons are intentional: the snap policy of
// the trigonometric constructors (see impl_rotation.go) exists precisely so
// quarter-turn results land on exact zeros and ones.
// Complexity: O(1).
func classifyRowMajor(v00, v01, v02, v10, v11, v12, v20, v21, v22 float64) Type {
	// bottom row must be [0,0,1] for any affine variant
	if v20 != 0 || v21 != 0 || v22 != 1 {
		return TypeOther
	}
	if v01 == 0 && v10 == 0 {
		if v00 == 1 && v11 == 1 {
			if v02 == 0 && v12 == 0 {
				return TypeIdentity
			}

			return TypeTranslation2D
		}
		if v02 == 0 && v12 == 0 {
			return TypeScaling
		}
	}

	return TypeAffine
}
