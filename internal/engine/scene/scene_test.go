package scene

import (
	gomath "math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Faultbox/lowpoly-house/internal/config"
	"github.com/Faultbox/lowpoly-house/internal/engine/geometry"
	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

const eps = 1e-4

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func newHouse(t *testing.T) *Scene {
	t.Helper()
	s, err := NewHouse(config.Default())
	if err != nil {
		t.Fatalf("NewHouse: %v", err)
	}
	return s
}

func TestNewHouseLayout(t *testing.T) {
	s := newHouse(t)

	if len(s.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(s.Nodes))
	}

	tests := []struct {
		name    string
		pos     math.Vec3
		cast    bool
		receive bool
	}{
		{NodeRoof, math.V3(0, 3, 0), false, false},
		{NodeWalls, math.V3(0, 1.25, 0), true, false},
		{NodeDoor, math.V3(0, 1, 2.01), false, false},
		{NodeFloor, math.V3(0, 0, 0), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := s.Node(tt.name)
			if n == nil {
				t.Fatal("missing node")
			}
			if n.Position != tt.pos {
				t.Errorf("position = %v, want %v", n.Position, tt.pos)
			}
			if n.CastShadow != tt.cast || n.ReceiveShadow != tt.receive {
				t.Errorf("shadow flags cast=%v receive=%v", n.CastShadow, n.ReceiveShadow)
			}
			if n.Scale != math.V3(1, 1, 1) {
				t.Errorf("scale = %v", n.Scale)
			}
		})
	}
}

func TestNewHouseMaterials(t *testing.T) {
	s := newHouse(t)

	roof := s.Node(NodeRoof)
	if roof.Material.Color.Hex() != "#b35f45" {
		t.Errorf("roof color = %s", roof.Material.Color.Hex())
	}
	if len(roof.Material.Maps.Paths()) != 0 {
		t.Errorf("roof should be untextured")
	}

	door := s.Node(NodeDoor)
	if !door.Material.Transparent || door.Material.DisplacementScale != 0.1 {
		t.Errorf("door material = %+v", door.Material)
	}
	if got := len(door.Material.Maps.Paths()); got != 7 {
		t.Errorf("door maps = %d, want 7", got)
	}
	if want := filepath.Join("Texture", "door", "alpha.jpg"); door.Material.Maps.Alpha != want {
		t.Errorf("door alpha = %q, want %q", door.Material.Maps.Alpha, want)
	}

	floor := s.Node(NodeFloor)
	if !floor.Material.Repeat {
		t.Error("floor maps should repeat")
	}
	var maxU float32
	for _, v := range floor.Mesh.Vertices {
		maxU = max(maxU, v.TexCoord[0])
	}
	if maxU != 8 {
		t.Errorf("floor uv repeat = %v, want 8", maxU)
	}

	// walls, door and grass share no files: 4 + 7 + 4.
	if got := len(s.TexturePaths()); got != 15 {
		t.Errorf("texture paths = %d, want 15", got)
	}
}

func TestNewHouseLights(t *testing.T) {
	s := newHouse(t)

	if s.Ambient.Color().Hex() != "#b9d5ff" || s.Ambient.Intensity() != 0.12 {
		t.Errorf("ambient = %s %v", s.Ambient.Color().Hex(), s.Ambient.Intensity())
	}
	if s.Sky.Color().Hex() != "#b9d5ff" || s.Sky.Intensity() != 0.12 {
		t.Errorf("sky = %s %v", s.Sky.Color().Hex(), s.Sky.Intensity())
	}
	if !s.Sky.CastShadow || s.Sky.ShadowMapSize != 256 || s.Sky.ShadowFar != 15 {
		t.Errorf("sky shadow = %v %d %v", s.Sky.CastShadow, s.Sky.ShadowMapSize, s.Sky.ShadowFar)
	}
	if s.Door.Position() != math.V3(0, 2.1, 3) || s.Door.Color().Hex() != "#ff7d46" {
		t.Errorf("door light = %v %s", s.Door.Position(), s.Door.Color().Hex())
	}
	if s.Door.ShadowFar != 7 {
		t.Errorf("door shadow far = %v", s.Door.ShadowFar)
	}
}

func TestNewHouseRejectsBadAmbient(t *testing.T) {
	cfg := config.Default()
	cfg.Lighting.AmbientColor = "blue"
	if _, err := NewHouse(cfg); err == nil {
		t.Error("expected error for bad ambient color")
	}
}

func TestFloorFacesUp(t *testing.T) {
	s := newHouse(t)
	floor := s.Node(NodeFloor)
	n := floor.Transform().TransformDirection(math.FromArray(floor.Mesh.Vertices[0].Normal))
	if !near(n.Y, 1) {
		t.Errorf("floor normal = %v, want +Y", n)
	}
	b := floor.WorldBounds()
	if !near(b.Min.Y, 0) || !near(b.Max.Y, 0) || !near(b.Max.X, 10) || !near(b.Min.Z, -10) {
		t.Errorf("floor bounds = %+v", b)
	}
}

func TestBounds(t *testing.T) {
	s := newHouse(t)

	all := s.Bounds()
	// The door plane hangs 0.1 below the floor line.
	if !near(all.Max.X, 10) || !near(all.Min.Y, -0.1) || !near(all.Max.Y, 3.5) {
		t.Errorf("scene bounds = %+v", all)
	}

	casters := s.ShadowCasterBounds()
	if !near(casters.Max.X, 2) || !near(casters.Max.Y, 2.5) {
		t.Errorf("caster bounds = %+v", casters)
	}
}

func TestShadowCasterBoundsFallback(t *testing.T) {
	s := New(nil, nil, nil)
	s.Add(&Node{Name: "box", Mesh: geometry.Box(2, 2, 2)})
	if got := s.ShadowCasterBounds(); got != s.Bounds() {
		t.Errorf("fallback = %+v, want %+v", got, s.Bounds())
	}
	if !New(nil, nil, nil).Bounds().IsEmpty() {
		t.Error("empty scene should have empty bounds")
	}
}

func TestBackground(t *testing.T) {
	s := New(nil, nil, nil)
	if bg := s.Background(); bg.Kind != lighting.BackgroundSolid {
		t.Errorf("initial background = %+v", bg)
	}

	var _ lighting.BackgroundSetter = s

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetBackground(lighting.ImageBackground("sky.jpg"))
			_ = s.Background()
		}(i)
	}
	wg.Wait()
	if s.Background() != lighting.ImageBackground("sky.jpg") {
		t.Errorf("background = %+v", s.Background())
	}
}

func TestNodeLookupMissing(t *testing.T) {
	if newHouse(t).Node("chimney") != nil {
		t.Error("unexpected node")
	}
	var n Node
	if !n.WorldBounds().IsEmpty() {
		t.Error("node without mesh should have empty bounds")
	}
}
