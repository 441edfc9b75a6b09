// Package config loads the demo's settings: defaults, then a YAML file,
// then command-line flags.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Lighting LightingConfig `yaml:"lighting"`
	Assets   AssetsConfig   `yaml:"assets"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and renderer settings.
type GraphicsConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Fullscreen       bool    `yaml:"fullscreen"`
	VSync            bool    `yaml:"vsync"`
	FOV              float32 `yaml:"fov"` // vertical, degrees
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
	Shadows          bool    `yaml:"shadows"`
	ShadowResolution int32   `yaml:"shadow_resolution"`
	MaxPixelRatio    float32 `yaml:"max_pixel_ratio"`
}

// LightingConfig holds the orbiting sky light and ambient light settings.
// Day and night presets are fixed and not configurable.
type LightingConfig struct {
	OrbitRadius      float64 `yaml:"orbit_radius"`
	OrbitStep        float64 `yaml:"orbit_step"` // radians per frame
	Spin             bool    `yaml:"spin"`
	AmbientColor     string  `yaml:"ambient_color"`
	AmbientIntensity float32 `yaml:"ambient_intensity"`
}

// AssetsConfig points at the texture directory.
type AssetsConfig struct {
	Dir                string `yaml:"dir"`
	Daylight           string `yaml:"daylight"` // relative to Dir
	MaxTextureSize     int    `yaml:"max_texture_size"`
	ProceduralFallback bool   `yaml:"procedural_fallback"`
}

// DebugConfig holds developer tooling switches.
type DebugConfig struct {
	Panel         bool   `yaml:"panel"`
	CameraHelper  bool   `yaml:"camera_helper"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings the house scene was tuned with.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:            1280,
			Height:           720,
			VSync:            true,
			FOV:              75,
			Near:             0.1,
			Far:              100,
			Shadows:          true,
			ShadowResolution: 256,
			MaxPixelRatio:    2,
		},
		Lighting: LightingConfig{
			OrbitRadius:      5,
			OrbitStep:        0.02,
			AmbientColor:     "#b9d5ff",
			AmbientIntensity: 0.12,
		},
		Assets: AssetsConfig{
			Dir:                "Texture",
			Daylight:           "Daylight.jpg",
			MaxTextureSize:     2048,
			ProceduralFallback: true,
		},
		Debug: DebugConfig{
			Panel:         true,
			CameraHelper:  true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the renderer or lighting cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov %.1f out of range (0, 180)", c.Graphics.FOV))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Near >= c.Graphics.Far {
		errs = append(errs, fmt.Errorf("graphics: near %.3f must be positive and below far %.3f", c.Graphics.Near, c.Graphics.Far))
	}
	if c.Graphics.ShadowResolution <= 0 {
		errs = append(errs, fmt.Errorf("graphics: shadow_resolution %d must be positive", c.Graphics.ShadowResolution))
	}
	if c.Lighting.OrbitRadius <= 0 {
		errs = append(errs, fmt.Errorf("lighting: orbit_radius %.3f must be positive", c.Lighting.OrbitRadius))
	}
	if c.Assets.MaxTextureSize <= 0 {
		errs = append(errs, fmt.Errorf("assets: max_texture_size %d must be positive", c.Assets.MaxTextureSize))
	}
	return errors.Join(errs...)
}
