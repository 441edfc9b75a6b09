package geometry

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Box returns an axis-aligned box centered on the origin. Each face has its
// own four vertices so normals stay flat and every face maps the full 0..1
// texture.
func Box(width, height, depth float32) *Mesh {
	w, h, d := width/2, height/2, depth/2
	faces := []struct {
		normal, u, v math.Vec3
		hu, hv, off  float32
	}{
		{math.V3(1, 0, 0), math.V3(0, 0, -1), math.V3(0, 1, 0), d, h, w},
		{math.V3(-1, 0, 0), math.V3(0, 0, 1), math.V3(0, 1, 0), d, h, w},
		{math.V3(0, 1, 0), math.V3(1, 0, 0), math.V3(0, 0, -1), w, d, h},
		{math.V3(0, -1, 0), math.V3(1, 0, 0), math.V3(0, 0, 1), w, d, h},
		{math.V3(0, 0, 1), math.V3(1, 0, 0), math.V3(0, 1, 0), w, h, d},
		{math.V3(0, 0, -1), math.V3(-1, 0, 0), math.V3(0, 1, 0), w, h, d},
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		center := f.normal.Scale(f.off)
		u := f.u.Scale(f.hu)
		v := f.v.Scale(f.hv)
		a := m.addVertex(center.Sub(u).Sub(v), f.normal, 0, 0)
		b := m.addVertex(center.Add(u).Sub(v), f.normal, 1, 0)
		c := m.addVertex(center.Add(u).Add(v), f.normal, 1, 1)
		e := m.addVertex(center.Sub(u).Add(v), f.normal, 0, 1)
		m.Indices = append(m.Indices, a, b, c, a, c, e)
	}
	m.computeBounds()
	return m
}

// Plane returns a width x height plane in XY facing +Z, subdivided into
// wSegments x hSegments quads. Segment counts below 1 are treated as 1.
func Plane(width, height float32, wSegments, hSegments int) *Mesh {
	wSegments = max(wSegments, 1)
	hSegments = max(hSegments, 1)
	cols, rows := wSegments+1, hSegments+1

	m := &Mesh{
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]uint32, 0, wSegments*hSegments*6),
	}
	normal := math.V3(0, 0, 1)
	segW := width / float32(wSegments)
	segH := height / float32(hSegments)
	for iy := 0; iy < rows; iy++ {
		y := height/2 - float32(iy)*segH
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*segW - width/2
			m.addVertex(math.V3(x, y, 0), normal,
				float32(ix)/float32(wSegments),
				1-float32(iy)/float32(hSegments))
		}
	}
	for iy := 0; iy < hSegments; iy++ {
		for ix := 0; ix < wSegments; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	m.computeBounds()
	return m
}

// Cone returns a closed cone centered on the origin with its apex at
// +height/2. Faces are flat shaded; four segments give the pyramid roof.
func Cone(radius, height float32, radialSegments int) *Mesh {
	n := max(radialSegments, 3)
	m := &Mesh{
		Vertices: make([]Vertex, 0, n*6),
		Indices:  make([]uint32, 0, n*6),
	}
	half := height / 2
	apex := math.V3(0, half, 0)
	baseCenter := math.V3(0, -half, 0)
	down := math.V3(0, -1, 0)

	rim := func(i int) math.Vec3 {
		theta := float64(i) / float64(n) * 2 * gomath.Pi
		s, c := gomath.Sincos(theta)
		return math.V3(radius*float32(s), -half, radius*float32(c))
	}
	capUV := func(p math.Vec3) (float32, float32) {
		if radius == 0 {
			return 0.5, 0.5
		}
		return (p.X/radius + 1) / 2, (p.Z/radius + 1) / 2
	}

	for i := 0; i < n; i++ {
		b0, b1 := rim(i), rim(i+1)

		normal := b0.Sub(apex).Cross(b1.Sub(apex)).Normalize()
		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)
		a := m.addVertex(apex, normal, (u0+u1)/2, 1)
		b := m.addVertex(b0, normal, u0, 0)
		c := m.addVertex(b1, normal, u1, 0)
		m.Indices = append(m.Indices, a, b, c)
	}
	for i := 0; i < n; i++ {
		b0, b1 := rim(i), rim(i+1)
		cu, cv := capUV(baseCenter)
		a := m.addVertex(baseCenter, down, cu, cv)
		u, v := capUV(b1)
		b := m.addVertex(b1, down, u, v)
		u, v = capUV(b0)
		c := m.addVertex(b0, down, u, v)
		m.Indices = append(m.Indices, a, b, c)
	}
	m.computeBounds()
	return m
}
