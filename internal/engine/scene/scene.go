// Package scene describes what is drawn: meshes with materials and
// transforms, the three lights and the background. It holds no GPU state;
// the renderer uploads nodes once and reads lights and background per frame.
package scene

import (
	"sync"

	"github.com/Faultbox/lowpoly-house/internal/engine/geometry"
	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Maps are texture file paths for a material. Empty paths are unused.
type Maps struct {
	Color     string
	AO        string
	Normal    string
	Roughness string
	Alpha     string
	Metalness string
	Height    string
}

// Paths returns every non-empty map path.
func (m Maps) Paths() []string {
	var out []string
	for _, p := range []string{m.Color, m.AO, m.Normal, m.Roughness, m.Alpha, m.Metalness, m.Height} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Material is a standard lit surface. Color tints the color map, or is the
// whole albedo when there is none.
type Material struct {
	Color lighting.Color
	Maps  Maps
	// Repeat selects repeat wrapping for the maps instead of clamp.
	Repeat            bool
	Transparent       bool
	DisplacementScale float32
}

// Node is a mesh placed in the world.
type Node struct {
	Name     string
	Mesh     *geometry.Mesh
	Material Material

	Position math.Vec3
	Rotation math.Vec3 // Euler angles in radians
	Scale    math.Vec3

	CastShadow    bool
	ReceiveShadow bool
}

// Transform returns the node's model matrix.
func (n *Node) Transform() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldBounds returns the mesh bounds in world space.
func (n *Node) WorldBounds() geometry.Bounds {
	if n.Mesh == nil {
		return geometry.EmptyBounds()
	}
	return n.Mesh.Bounds.Transform(n.Transform())
}

// Scene is the full set of drawable nodes and lights.
type Scene struct {
	Nodes   []*Node
	Ambient *lighting.AmbientLight
	Sky     *lighting.DirectionalLight
	Door    *lighting.PointLight
	// SkyTarget is the point the sky light shines at.
	SkyTarget math.Vec3

	mu         sync.RWMutex
	background lighting.Background
}

// New returns an empty scene with the given lights.
func New(ambient *lighting.AmbientLight, sky *lighting.DirectionalLight, door *lighting.PointLight) *Scene {
	return &Scene{
		Ambient:    ambient,
		Sky:        sky,
		Door:       door,
		background: lighting.SolidBackground(lighting.Color{}),
	}
}

// Add appends a node. Nodes without a scale get unit scale.
func (s *Scene) Add(n *Node) {
	if n.Scale == (math.Vec3{}) {
		n.Scale = math.V3(1, 1, 1)
	}
	s.Nodes = append(s.Nodes, n)
}

// Node returns the node with the given name, or nil.
func (s *Scene) Node(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// SetBackground replaces the background.
func (s *Scene) SetBackground(b lighting.Background) {
	s.mu.Lock()
	s.background = b
	s.mu.Unlock()
}

// Background returns the current background.
func (s *Scene) Background() lighting.Background {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

// Bounds returns the world bounds of every node.
func (s *Scene) Bounds() geometry.Bounds {
	b := geometry.EmptyBounds()
	for _, n := range s.Nodes {
		b = b.Union(n.WorldBounds())
	}
	return b
}

// ShadowCasterBounds returns the world bounds of nodes that cast shadows,
// falling back to the whole scene when none do.
func (s *Scene) ShadowCasterBounds() geometry.Bounds {
	b := geometry.EmptyBounds()
	for _, n := range s.Nodes {
		if n.CastShadow {
			b = b.Union(n.WorldBounds())
		}
	}
	if b.IsEmpty() {
		return s.Bounds()
	}
	return b
}

// TexturePaths lists every distinct texture referenced by a material, in
// node order.
func (s *Scene) TexturePaths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range s.Nodes {
		for _, p := range n.Material.Maps.Paths() {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}
