package scene

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/lowpoly-house/internal/config"
	"github.com/Faultbox/lowpoly-house/internal/engine/geometry"
	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Node names in the house scene.
const (
	NodeRoof  = "roof"
	NodeWalls = "walls"
	NodeDoor  = "door"
	NodeFloor = "floor"
)

var (
	roofColor      = lighting.FromHex(0xb35f45)
	doorLightColor = lighting.FromHex(0xff7d46)
	skyLightColor  = lighting.FromHex(0xb9d5ff)
)

// NewHouse builds the low-poly house on a grass floor with its three lights.
// Lights start with their construction values; the day/night controller
// sets them on the first toggle.
func NewHouse(cfg *config.Config) (*Scene, error) {
	ambientColor, err := lighting.ParseHex(cfg.Lighting.AmbientColor)
	if err != nil {
		return nil, fmt.Errorf("ambient light: %w", err)
	}
	ambient := lighting.NewAmbientLight(ambientColor, cfg.Lighting.AmbientIntensity)

	sky := lighting.NewDirectionalLight(skyLightColor, 0.12)
	sky.CastShadow = cfg.Graphics.Shadows
	sky.ShadowMapSize = cfg.Graphics.ShadowResolution
	sky.ShadowFar = 15

	door := lighting.NewPointLight(doorLightColor, 1)
	door.SetPosition(math.V3(0, 2.1, 3))
	door.CastShadow = cfg.Graphics.Shadows
	door.ShadowMapSize = cfg.Graphics.ShadowResolution
	door.ShadowFar = 7

	s := New(ambient, sky, door)

	tex := func(dir string) func(string) string {
		return func(name string) string { return cfg.AssetPath(dir + "/" + name) }
	}

	s.Add(&Node{
		Name:     NodeRoof,
		Mesh:     geometry.Cone(3.5, 1, 4),
		Material: Material{Color: roofColor},
		Position: math.V3(0, 2.5+0.5, 0),
		Rotation: math.V3(0, gomath.Pi*0.25, 0),
	})

	bricks := tex("bricks")
	s.Add(&Node{
		Name: NodeWalls,
		Mesh: geometry.Box(4, 2.5, 4),
		Material: Material{
			Color: lighting.White,
			Maps: Maps{
				Color:     bricks("color.jpg"),
				AO:        bricks("ambientOcclusion.jpg"),
				Normal:    bricks("normal.jpg"),
				Roughness: bricks("roughness.jpg"),
			},
		},
		Position:   math.V3(0, 1.25, 0),
		CastShadow: true,
	})

	doorTex := tex("door")
	s.Add(&Node{
		Name: NodeDoor,
		Mesh: geometry.Plane(2.2, 2.2, 100, 100),
		Material: Material{
			Color: lighting.White,
			Maps: Maps{
				Color:     doorTex("color.jpg"),
				AO:        doorTex("ambientOcclusion.jpg"),
				Normal:    doorTex("normal.jpg"),
				Roughness: doorTex("roughness.jpg"),
				Alpha:     doorTex("alpha.jpg"),
				Metalness: doorTex("metalness.jpg"),
				Height:    doorTex("height.jpg"),
			},
			Transparent:       true,
			DisplacementScale: 0.1,
		},
		Position: math.V3(0, 1, 2+0.01),
	})

	grass := tex("grass")
	floor := geometry.Plane(20, 20, 1, 1)
	floor.ScaleUV(8, 8)
	s.Add(&Node{
		Name: NodeFloor,
		Mesh: floor,
		Material: Material{
			Color: lighting.White,
			Maps: Maps{
				Color:     grass("color.jpg"),
				AO:        grass("ambientOcclusion.jpg"),
				Normal:    grass("normal.jpg"),
				Roughness: grass("roughness.jpg"),
			},
			Repeat: true,
		},
		Rotation:      math.V3(-gomath.Pi*0.5, 0, 0),
		ReceiveShadow: true,
	})

	return s, nil
}
