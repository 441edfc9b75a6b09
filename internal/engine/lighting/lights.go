package lighting

import "github.com/Faultbox/lowpoly-house/pkg/math"

// DirectionalLight shines from Position towards the origin, like the sun or
// moon. Only its position's direction matters for shading.
type DirectionalLight struct {
	position  math.Vec3
	color     Color
	intensity float32

	CastShadow    bool
	ShadowMapSize int32
	ShadowFar     float32
}

// NewDirectionalLight creates a directional light at (0, 1, 0).
func NewDirectionalLight(color Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		position:  math.V3(0, 1, 0),
		color:     color,
		intensity: intensity,
	}
}

func (l *DirectionalLight) Position() math.Vec3     { return l.position }
func (l *DirectionalLight) SetPosition(p math.Vec3) { l.position = p }
func (l *DirectionalLight) Color() Color            { return l.color }
func (l *DirectionalLight) SetColor(c Color)        { l.color = c }
func (l *DirectionalLight) Intensity() float32      { return l.intensity }
func (l *DirectionalLight) SetIntensity(v float32)  { l.intensity = v }

// Direction returns the unit vector pointing from the origin to the light.
func (l *DirectionalLight) Direction() math.Vec3 {
	return Direction(l.position)
}

// PointLight radiates from a position and falls off with distance.
type PointLight struct {
	position  math.Vec3
	color     Color
	intensity float32

	// Distance is the cutoff range; 0 means unlimited.
	Distance float32
	// Decay is the falloff exponent; the shader mirrors three.js punctual
	// light falloff.
	Decay float32

	CastShadow    bool
	ShadowMapSize int32
	ShadowFar     float32
}

// NewPointLight creates a point light at the origin with physical decay 2.
func NewPointLight(color Color, intensity float32) *PointLight {
	return &PointLight{
		color:     color,
		intensity: intensity,
		Decay:     2,
	}
}

func (l *PointLight) Position() math.Vec3     { return l.position }
func (l *PointLight) SetPosition(p math.Vec3) { l.position = p }
func (l *PointLight) Color() Color            { return l.color }
func (l *PointLight) SetColor(c Color)        { l.color = c }
func (l *PointLight) Intensity() float32      { return l.intensity }
func (l *PointLight) SetIntensity(v float32)  { l.intensity = v }

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	color     Color
	intensity float32
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(color Color, intensity float32) *AmbientLight {
	return &AmbientLight{color: color, intensity: intensity}
}

func (l *AmbientLight) Color() Color           { return l.color }
func (l *AmbientLight) SetColor(c Color)       { l.color = c }
func (l *AmbientLight) Intensity() float32     { return l.intensity }
func (l *AmbientLight) SetIntensity(v float32) { l.intensity = v }

// BackgroundKind tells how a Background is drawn.
type BackgroundKind int

const (
	BackgroundSolid BackgroundKind = iota
	BackgroundImage
)

// Background is either a flat color or a reference to an image file.
// The renderer loads an image once per path.
type Background struct {
	Kind  BackgroundKind
	Color Color
	Image string
}

// SolidBackground returns a flat-color background.
func SolidBackground(c Color) Background {
	return Background{Kind: BackgroundSolid, Color: c}
}

// ImageBackground returns an image background.
func ImageBackground(path string) Background {
	return Background{Kind: BackgroundImage, Image: path}
}
