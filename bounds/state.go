// SPDX-License-Identifier: MIT

// Package bounds - plain-object state serialization.

package bounds

// State is the plain-object form of a Bounds3.
type State struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MinZ float64 `json:"minZ"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
	MaxZ float64 `json:"maxZ"`
}

// StateObject returns the plain-object form of b.
func (b Bounds3) StateObject() State {
	return State{MinX: b.MinX, MinY: b.MinY, MinZ: b.MinZ, MaxX: b.MaxX, MaxY: b.MaxY, MaxZ: b.MaxZ}
}

// FromStateObject reconstructs a Bounds3 from its plain-object form.
// Round trip is exact, the infinite sentinels included.
func FromStateObject(s State) Bounds3 {
	return New(s.MinX, s.MinY, s.MinZ, s.MaxX, s.MaxY, s.MaxZ)
}
