package shadow

import (
	"github.com/Faultbox/lowpoly-house/internal/engine/geometry"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// DefaultNear is the near plane of a light's shadow camera.
const DefaultNear = 0.5

// Frustum is the orthographic shadow camera of a directional light: it sits
// at the light's position and looks at the target.
type Frustum struct {
	View     math.Mat4
	HalfSize float32
	Near     float32
	Far      float32
}

// DirectionalFrustum fits an orthographic shadow camera around casters as
// seen from lightPos looking at target. far is the shadow camera range;
// values not beyond the near plane fall back to reaching past the casters.
func DirectionalFrustum(lightPos, target math.Vec3, casters geometry.Bounds, far float32) Frustum {
	dir := target.Sub(lightPos)
	dist := dir.Length()
	if dist == 0 {
		lightPos = target.Add(math.V3(0, 1, 0))
		dir = math.V3(0, -1, 0)
		dist = 1
	}

	up := math.V3(0, 1, 0)
	if abs32(dir.Normalize().Y) > 0.99 {
		up = math.V3(0, 0, 1)
	}

	half := float32(5)
	if !casters.IsEmpty() {
		half = (casters.Center().Sub(target).Length() + casters.Radius()) * 1.1
	}
	if far <= DefaultNear {
		far = dist + half
	}

	return Frustum{
		View:     math.LookAt(lightPos, target, up),
		HalfSize: half,
		Near:     DefaultNear,
		Far:      far,
	}
}

// Projection returns the orthographic projection.
func (f Frustum) Projection() math.Mat4 {
	return math.Ortho(-f.HalfSize, f.HalfSize, -f.HalfSize, f.HalfSize, f.Near, f.Far)
}

// ViewProjection maps world space into the shadow map's clip space.
func (f Frustum) ViewProjection() math.Mat4 {
	return f.Projection().Mul(f.View)
}

// Corners returns the eight world-space corners of the frustum box, near
// face first, in the order bottom-left, bottom-right, top-right, top-left.
func (f Frustum) Corners() [8]math.Vec3 {
	inv := f.View.Inverse()
	h := f.HalfSize
	var out [8]math.Vec3
	for i, z := range [2]float32{-f.Near, -f.Far} {
		out[i*4+0] = inv.TransformPoint(math.V3(-h, -h, z))
		out[i*4+1] = inv.TransformPoint(math.V3(h, -h, z))
		out[i*4+2] = inv.TransformPoint(math.V3(h, h, z))
		out[i*4+3] = inv.TransformPoint(math.V3(-h, h, z))
	}
	return out
}

// Edges returns the twelve frustum edges as line-segment endpoint pairs.
func (f Frustum) Edges() []math.Vec3 {
	c := f.Corners()
	pairs := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]math.Vec3, 0, 24)
	for _, p := range pairs {
		out = append(out, c[p[0]], c[p[1]])
	}
	return out
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
