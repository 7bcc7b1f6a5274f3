package policy

import "math"

// Training input domain. Observations beyond it saturate rather than
// extrapolate.
const (
	angleScale    = math.Pi / 3
	velocityScale = 10.0
)

// NormalizeObservation maps a raw observation into the [-1, 1] operating
// domain. The division runs in float64 (the reference divides by a double
// constant) and rounds to float32 once.
func NormalizeObservation(angle, angularVelocity float32) (normAngle, normVelocity float32) {
	normAngle = float32(Sat(float64(angle)/angleScale, 1.0, -1.0))
	normVelocity = float32(Sat(float64(angularVelocity)/velocityScale, 1.0, -1.0))
	return normAngle, normVelocity
}

// Sat clamps value to [min, max]. Values exactly at a bound pass through
// unchanged.
func Sat(value, max, min float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
