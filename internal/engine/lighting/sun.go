package lighting

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Direction converts a light position to the normalized direction from the
// scene origin towards the light, which is what the shaders consume.
func Direction(position math.Vec3) math.Vec3 {
	d := position.Normalize()
	if d == (math.Vec3{}) {
		return math.V3(0, 1, 0)
	}
	return d
}

// OrbitPosition returns the point at angle radians on a horizontal circle of
// the given radius, keeping height y.
func OrbitPosition(radius, angle float64, y float32) math.Vec3 {
	s, c := gomath.Sincos(angle)
	return math.Vec3{
		X: float32(radius * c),
		Y: y,
		Z: float32(radius * s),
	}
}

// wrapAngle folds a into [0, 2π) for non-negative input and (-2π, 0] for
// negative input. Either way sin/cos are unchanged.
func wrapAngle(a float64) float64 {
	return gomath.Mod(a, 2*gomath.Pi)
}
