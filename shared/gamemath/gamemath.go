// Package gamemath holds small scalar helpers shared by the collision code and
// the server simulation.
package gamemath

import "math"

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ClampFloat clamps value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Step returns the displacement of something moving speed units along angle
// (radians, Y grows downward).
func Step(angle, speed float64) (dx, dy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
