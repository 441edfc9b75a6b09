// Package camera provides the perspective orbit camera used to look at the
// house.
package camera

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-house/pkg/math"
)

const degToRad = gomath.Pi / 180

// OrbitCamera orbits a target point. Drags add angular velocity that Update
// applies and then decays by DampingFactor, so the view keeps gliding for a
// moment after the mouse is released.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates around Target
	Distance float32
	Pitch    float32 // elevation above the horizon, radians
	Yaw      float32 // rotation around +Y, 0 looks down -Z from +Z

	// Projection
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32
	DampingFactor   float32 // 0 disables damping

	yawVelocity   float32
	pitchVelocity float32
}

// NewOrbitCamera creates a camera at position looking at the origin.
func NewOrbitCamera(position math.Vec3, fov, aspect, near, far float32) *OrbitCamera {
	c := &OrbitCamera{
		FOV:             fov,
		Aspect:          aspect,
		Near:            near,
		Far:             far,
		MinDistance:     1,
		MaxDistance:     far / 2,
		MinPitch:        -gomath.Pi/2 + 0.01,
		MaxPitch:        gomath.Pi/2 - 0.01,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		DampingFactor:   0.05,
	}
	c.SetPosition(position)
	return c
}

// SetPosition places the camera at p, keeping the target.
func (c *OrbitCamera) SetPosition(p math.Vec3) {
	off := p.Sub(c.Target)
	c.Distance = off.Length()
	if c.Distance == 0 {
		c.Pitch, c.Yaw = 0, 0
		return
	}
	c.Pitch = float32(gomath.Asin(float64(off.Y / c.Distance)))
	c.Yaw = float32(gomath.Atan2(float64(off.X), float64(off.Z)))
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := gomath.Sincos(float64(c.Pitch))
	sy, cy := gomath.Sincos(float64(c.Yaw))
	return c.Target.Add(math.Vec3{
		X: c.Distance * float32(cp*sy),
		Y: c.Distance * float32(sp),
		Z: c.Distance * float32(cp*cy),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.V3(0, 1, 0))
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FOV*degToRad, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// SetAspect updates the aspect ratio from a viewport size.
func (c *OrbitCamera) SetAspect(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// HandleDrag queues rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.yawVelocity -= deltaX * c.DragSensitivity
	c.pitchVelocity += deltaY * c.DragSensitivity
	if c.DampingFactor <= 0 {
		c.Update()
	}
}

// HandleZoom changes the distance from a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// Update applies pending rotation. Call once per frame.
func (c *OrbitCamera) Update() {
	c.Yaw += c.yawVelocity
	c.Pitch = clamp(c.Pitch+c.pitchVelocity, c.MinPitch, c.MaxPitch)

	if c.DampingFactor > 0 {
		c.yawVelocity *= 1 - c.DampingFactor
		c.pitchVelocity *= 1 - c.DampingFactor
	} else {
		c.yawVelocity, c.pitchVelocity = 0, 0
	}
}

// Moving reports whether damping is still settling.
func (c *OrbitCamera) Moving() bool {
	const rest = 1e-5
	return abs32(c.yawVelocity) > rest || abs32(c.pitchVelocity) > rest
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
