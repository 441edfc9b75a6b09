// Package picking casts rays from the screen into the scene to find the node
// under the cursor.
package picking

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-house/internal/engine/geometry"
	"github.com/Faultbox/lowpoly-house/internal/engine/scene"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts pixel coordinates inside a viewport of size
// viewportW x viewportH into a world-space ray. invViewProj is the inverse
// of the camera's view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // screen y grows downward

	near := invViewProj.TransformPoint(math.V3(ndcX, ndcY, -1))
	far := invViewProj.TransformPoint(math.V3(ndcX, ndcY, 1))

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return math.Vec3{}, false
	}
	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectBounds tests the ray against an axis-aligned box using the slab
// method. A ray starting inside the box reports the exit distance.
func (r Ray) IntersectBounds(b geometry.Bounds) (t float32, hit bool) {
	if b.IsEmpty() {
		return 0, false
	}
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := b.Min.Array()
	hi := b.Max.Array()

	for i := range 3 {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Hit is a picked node and its distance along the ray.
type Hit struct {
	Node     *scene.Node
	Distance float32
}

// Pick returns the nearest node whose world bounds the ray enters.
func Pick(r Ray, nodes []*scene.Node) (Hit, bool) {
	best := Hit{Distance: float32(gomath.MaxFloat32)}
	for _, n := range nodes {
		if t, ok := r.IntersectBounds(n.WorldBounds()); ok && t < best.Distance {
			best = Hit{Node: n, Distance: t}
		}
	}
	return best, best.Node != nil
}
