package texture

import (
	"image"
	"image/color"
	gomath "math"
	"path/filepath"
	"strings"

	perlin "github.com/aquilax/go-perlin"
)

// Kind selects a procedural pattern.
type Kind int

const (
	KindFlat Kind = iota // mid gray
	KindGrass
	KindBricks
	KindDoor
	KindSky
	KindNormal    // flat tangent-space normal
	KindWhite     // ambient occlusion, alpha
	KindBlack     // metalness, height
	KindRoughness // mostly rough
)

var kindNames = map[Kind]string{
	KindFlat:      "flat",
	KindGrass:     "grass",
	KindBricks:    "bricks",
	KindDoor:      "door",
	KindSky:       "sky",
	KindNormal:    "normal",
	KindWhite:     "white",
	KindBlack:     "black",
	KindRoughness: "roughness",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// KindFor guesses a stand-in pattern from a texture path such as
// "Texture/grass/color.jpg" or "Texture/Daylight.jpg".
func KindFor(path string) Kind {
	base := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	dir := strings.ToLower(filepath.Base(filepath.Dir(path)))

	switch base {
	case "normal":
		return KindNormal
	case "alpha":
		if dir == "door" {
			return KindDoor
		}
		return KindWhite
	case "ambientocclusion":
		return KindWhite
	case "metalness", "height":
		return KindBlack
	case "roughness":
		return KindRoughness
	case "daylight", "sky":
		return KindSky
	}
	switch dir {
	case "grass":
		return KindGrass
	case "bricks":
		return KindBricks
	case "door":
		return KindDoor
	}
	return KindFlat
}

// Procedural renders a size x size stand-in texture. Noisy kinds use
// Perlin noise seeded with seed, so output is deterministic.
func Procedural(kind Kind, size int, seed int64) *image.NRGBA {
	size = max(size, 1)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	noise := perlin.NewPerlin(2, 2, 3, seed)

	for y := 0; y < size; y++ {
		v := float64(y) / float64(size)
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size)
			img.SetNRGBA(x, y, pixel(kind, noise, u, v))
		}
	}
	return img
}

func pixel(kind Kind, noise *perlin.Perlin, u, v float64) color.NRGBA {
	// n is roughly in 0..1.
	n := func(scale float64) float64 {
		return clamp01(noise.Noise2D(u*scale, v*scale)*0.5 + 0.5)
	}

	switch kind {
	case KindGrass:
		k := n(16)*0.7 + n(64)*0.3
		return rgb(40+50*k, 90+90*k, 30+30*k)
	case KindBricks:
		if mortar(u, v) {
			return rgb(180, 175, 165)
		}
		k := n(24)
		return rgb(140+50*k, 60+25*k, 45+20*k)
	case KindDoor:
		// Opaque door leaf with a transparent margin, like the alpha map.
		if u < 0.12 || u > 0.88 || v < 0.05 {
			return color.NRGBA{A: 0}
		}
		k := n(8)
		plank := 0.85 + 0.15*gomath.Sin(u*gomath.Pi*12)
		return rgb((90+40*k)*plank, (55+25*k)*plank, (30+15*k)*plank)
	case KindSky:
		k := n(6)
		g := 1 - v
		return rgb(120+100*g+20*k, 170+70*g+15*k, 230+25*g)
	case KindNormal:
		return color.NRGBA{R: 128, G: 128, B: 255, A: 255}
	case KindWhite:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case KindBlack:
		return color.NRGBA{A: 255}
	case KindRoughness:
		k := n(32)
		return gray(200 + 55*k)
	}
	return gray(128)
}

// mortar reports whether (u, v) falls on a mortar line of an 8x16 running
// bond brick pattern.
func mortar(u, v float64) bool {
	const rows, cols, line = 16.0, 8.0, 0.08
	ry := v * rows
	row := gomath.Floor(ry)
	rx := u*cols + 0.5*gomath.Mod(row, 2)
	return ry-row < line || rx-gomath.Floor(rx) < line/2
}

func rgb(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: byte8(r), G: byte8(g), B: byte8(b), A: 255}
}

func gray(v float64) color.NRGBA {
	return rgb(v, v, v)
}

func byte8(v float64) uint8 {
	return uint8(gomath.Round(gomath.Max(0, gomath.Min(255, v))))
}

func clamp01(v float64) float64 {
	return gomath.Max(0, gomath.Min(1, v))
}
