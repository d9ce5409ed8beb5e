// Package kinematics holds the closed-form equations of ideal projectile
// motion under constant gravity. Speeds are in m/s, angles in degrees
// measured from the horizontal, times in seconds and distances in metres.
//
// Every function is total: out-of-range angles give physically meaningless
// but well-defined numbers, and it is up to callers to avoid them.
package kinematics

import (
	"math"

	"intercept-simulator/pkg/types"
)

const (
	// Gravity is standard gravitational acceleration, m/s².
	Gravity = 9.80665

	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi
)

// Components splits a launch speed into horizontal and vertical velocity.
func Components(v0, angleDeg float64) (vx, vy float64) {
	theta := angleDeg * DegToRad
	return v0 * math.Cos(theta), v0 * math.Sin(theta)
}

// Range is the horizontal distance covered before returning to launch height.
// It is 0 at 0° and 90° and negative above 90°.
func Range(v0, angleDeg float64) float64 {
	theta := angleDeg * DegToRad
	return v0 * v0 * math.Sin(2*theta) / Gravity
}

// MaxHeight is the apex height above the launch point.
func MaxHeight(v0, angleDeg float64) float64 {
	s := math.Sin(angleDeg * DegToRad)
	return v0 * v0 * s * s / (2 * Gravity)
}

// FlightTime is the time taken to return to launch height. Horizontal and
// downward launches never rise, so they report 0.
func FlightTime(v0, angleDeg float64) float64 {
	s := math.Sin(angleDeg * DegToRad)
	if s <= 0 {
		return 0
	}
	return 2 * v0 * s / Gravity
}

// Position returns the displacement from the launch point after t seconds.
func Position(v0, angleDeg, t float64) types.Point {
	vx, vy := Components(v0, angleDeg)
	return types.Point{
		X: vx * t,
		Y: vy*t - 0.5*Gravity*t*t,
	}
}

// FallTime is the time a body released at rest needs to drop h metres.
func FallTime(h float64) float64 {
	if h <= 0 {
		return 0
	}
	return math.Sqrt(2 * h / Gravity)
}

// Drop is the distance fallen from rest after t seconds.
func Drop(t float64) float64 {
	return 0.5 * Gravity * t * t
}
