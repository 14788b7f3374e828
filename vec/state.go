// SPDX-License-Identifier: MIT

// Package vec - plain-object state serialization.
// State objects are the only boundary-facing contract of the package:
// flat structs with JSON tags, round-tripping by exact equality.

package vec

// Vector3State is the plain-object form of a Vector3.
type Vector3State struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// StateObject returns the plain-object form of v.
func (v Vector3) StateObject() Vector3State {
	return Vector3State{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector3FromStateObject reconstructs a Vector3 from its plain-object form.
// Round trip is exact: Vector3FromStateObject(v.StateObject()) == v.
func Vector3FromStateObject(s Vector3State) Vector3 {
	return Vector3{X: s.X, Y: s.Y, Z: s.Z}
}

// Vector2State is the plain-object form of a Vector2.
type Vector2State struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StateObject returns the plain-object form of v.
func (v Vector2) StateObject() Vector2State {
	return Vector2State{X: v.X, Y: v.Y}
}

// Vector2FromStateObject reconstructs a Vector2 from its plain-object form.
func Vector2FromStateObject(s Vector2State) Vector2 {
	return Vector2{X: s.X, Y: s.Y}
}
