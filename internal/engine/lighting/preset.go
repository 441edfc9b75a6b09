package lighting

import "github.com/Faultbox/lowpoly-house/pkg/math"

// Preset is one complete lighting configuration. Applying a preset writes
// every field; nothing is derived from the previous state.
type Preset struct {
	Background      Background
	SkyPosition     math.Vec3
	SkyColor        Color
	SkyIntensity    float32
	AccentIntensity float32
}

// Night preset values.
var (
	NightSky         = FromHex(0x0a0f29)
	NightSkyPosition = math.V3(-5, 6.5, 5)
	NightLightColor  = MustParseHex("#8a8ac7")
)

// Day preset values.
var (
	DaySkyPosition = math.V3(5, 6.5, -5)
	DayLightColor  = White
)

const (
	NightSkyIntensity    = 0.2
	NightAccentIntensity = 4.0
	DaySkyIntensity      = 0.12
	DayAccentIntensity   = 0.0
)

// NightPreset is the dark-blue sky with a dim violet moon and the door lamp on.
func NightPreset() Preset {
	return Preset{
		Background:      SolidBackground(NightSky),
		SkyPosition:     NightSkyPosition,
		SkyColor:        NightLightColor,
		SkyIntensity:    NightSkyIntensity,
		AccentIntensity: NightAccentIntensity,
	}
}

// DayPreset uses the daylight image as background, a white sun on the
// opposite side and the door lamp off.
func DayPreset(daylightImage string) Preset {
	return Preset{
		Background:      ImageBackground(daylightImage),
		SkyPosition:     DaySkyPosition,
		SkyColor:        DayLightColor,
		SkyIntensity:    DaySkyIntensity,
		AccentIntensity: DayAccentIntensity,
	}
}
