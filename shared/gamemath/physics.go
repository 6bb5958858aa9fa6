// Package gamemath holds small geometry helpers shared by the simulation.
package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// DistanceSq returns the squared distance between a and b.
func DistanceSq(a, b dmath.Vec2) float64 {
	d := b.Sub(a)
	return d.Dot(&d)
}

// Within reports whether an offset is no longer than radius. Both sides are
// compared squared.
func Within(offset dmath.Vec2, radius float64) bool {
	return offset.Dot(&offset) <= radius*radius
}
