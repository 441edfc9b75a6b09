// Package geometry builds CPU-side meshes for the primitive shapes the house
// is made of. Meshes are uploaded to the GPU by the renderer.
package geometry

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Vertex is the interleaved layout uploaded to the GPU: position, normal
// and texture coordinates, 8 floats per vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexSize is the size in bytes of one Vertex.
const VertexSize = 8 * 4

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// ScaleUV multiplies every texture coordinate, which together with repeat
// wrapping tiles a texture u by v times across the mesh.
func (m *Mesh) ScaleUV(u, v float32) {
	for i := range m.Vertices {
		m.Vertices[i].TexCoord[0] *= u
		m.Vertices[i].TexCoord[1] *= v
	}
}

func (m *Mesh) addVertex(p, n math.Vec3, u, v float32) uint32 {
	m.Vertices = append(m.Vertices, Vertex{
		Position: p.Array(),
		Normal:   n.Array(),
		TexCoord: [2]float32{u, v},
	})
	return uint32(len(m.Vertices) - 1)
}

func (m *Mesh) computeBounds() {
	m.Bounds = EmptyBounds()
	for _, v := range m.Vertices {
		m.Bounds = m.Bounds.Extend(math.FromArray(v.Position))
	}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// EmptyBounds returns inverted bounds that any point or box extends.
func EmptyBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: math.V3(inf, inf, inf),
		Max: math.V3(-inf, -inf, -inf),
	}
}

// IsEmpty reports whether the bounds contain no point.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend grows the bounds to contain p.
func (b Bounds) Extend(p math.Vec3) Bounds {
	return Bounds{
		Min: math.V3(min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)),
		Max: math.V3(max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)),
	}
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Transform returns the bounds of the eight transformed corners.
func (b Bounds) Transform(m math.Mat4) Bounds {
	if b.IsEmpty() {
		return b
	}
	out := EmptyBounds()
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		out = out.Extend(m.TransformPoint(c))
	}
	return out
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns the half-diagonal of the box.
func (b Bounds) Radius() float32 {
	return b.Max.Sub(b.Min).Length() / 2
}
