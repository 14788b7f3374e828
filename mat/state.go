// SPDX-License-Identifier: MIT

// Package mat - plain-object state serialization.
// The state object carries the column-major entries and the tag's wire
// name. Round trip is exact: entries AND tag are restored verbatim, so a
// conservatively tagged matrix stays conservatively tagged.

package mat

// StateObject is the plain-object form of a Matrix3.
type StateObject struct {
	// Entries is the column-major backing array.
	Entries [9]float64 `json:"entries"`
	// Type is the tag's wire name: IDENTITY, TRANSLATION_2D, SCALING,
	// AFFINE or OTHER.
	Type string `json:"type"`
}

// StateObject returns the plain-object form of m. Immutability is a
// process-local property and does not serialize.
func (m *Matrix3) StateObject() StateObject {
	return StateObject{Entries: m.entries, Type: m.typ.String()}
}

// FromStateObject reconstructs a mutable Matrix3 from its plain-object
// form. The stored tag is trusted for exact round-tripping; feed this only
// state produced by StateObject (a fabricated state claiming a more
// specific tag than its entries hold would poison the fast paths).
// Returns ErrUnknownType for an unrecognized type name.
func FromStateObject(s StateObject) (*Matrix3, error) {
	typ, err := ParseType(s.Type)
	if err != nil {
		return nil, err
	}

	return &Matrix3{entries: s.Entries, typ: typ}, nil
}
