package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.FOV != 75 || cfg.Graphics.Near != 0.1 || cfg.Graphics.Far != 100 {
		t.Errorf("unexpected camera defaults: %+v", cfg.Graphics)
	}
	if cfg.Graphics.ShadowResolution != 256 {
		t.Errorf("expected shadow resolution 256, got %d", cfg.Graphics.ShadowResolution)
	}
	if cfg.Lighting.OrbitRadius != 5 {
		t.Errorf("expected orbit radius 5, got %f", cfg.Lighting.OrbitRadius)
	}
	if cfg.Lighting.OrbitStep != 0.02 {
		t.Errorf("expected orbit step 0.02, got %f", cfg.Lighting.OrbitStep)
	}
	if cfg.Lighting.Spin {
		t.Error("expected spin to be off by default")
	}
	if cfg.Lighting.AmbientColor != "#b9d5ff" || cfg.Lighting.AmbientIntensity != 0.12 {
		t.Errorf("unexpected ambient defaults: %+v", cfg.Lighting)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "size"},
		{"fov too wide", func(c *Config) { c.Graphics.FOV = 200 }, "fov"},
		{"near past far", func(c *Config) { c.Graphics.Near = 200 }, "near"},
		{"no shadow map", func(c *Config) { c.Graphics.ShadowResolution = 0 }, "shadow_resolution"},
		{"zero radius", func(c *Config) { c.Lighting.OrbitRadius = 0 }, "orbit_radius"},
		{"zero texture size", func(c *Config) { c.Assets.MaxTextureSize = 0 }, "max_texture_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  shadow_resolution: 1024

lighting:
  orbit_radius: 7.5
  orbit_step: 0.05
  spin: true

assets:
  dir: "/srv/textures"
  daylight: "noon.png"

debug:
  panel: false

logging:
  level: "debug"
  log_file: "house.log"
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || !cfg.Graphics.Fullscreen || cfg.Graphics.ShadowResolution != 1024 {
		t.Errorf("graphics not loaded: %+v", cfg.Graphics)
	}
	// Unset keys keep defaults.
	if cfg.Graphics.FOV != 75 {
		t.Errorf("expected fov default 75 to survive merge, got %f", cfg.Graphics.FOV)
	}
	if cfg.Lighting.OrbitRadius != 7.5 || cfg.Lighting.OrbitStep != 0.05 || !cfg.Lighting.Spin {
		t.Errorf("lighting not loaded: %+v", cfg.Lighting)
	}
	if cfg.Debug.Panel {
		t.Error("expected panel disabled")
	}
	if got := cfg.DaylightPath(); got != filepath.Join("/srv/textures", "noon.png") {
		t.Errorf("daylight path = %s", got)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "house.log" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  width: not a number\n  invalid syntax here\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected error loading invalid YAML")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file")
	}
}

func TestAssetPath(t *testing.T) {
	cfg := Default()
	if got := cfg.AssetPath("bricks/color.jpg"); got != filepath.Join("Texture", "bricks", "color.jpg") {
		t.Errorf("relative asset = %s", got)
	}
	if got := cfg.AssetPath("/abs/sky.jpg"); got != "/abs/sky.jpg" {
		t.Errorf("absolute asset = %s", got)
	}
	cfg.Assets.Dir = ""
	if got := cfg.AssetPath("sky.jpg"); got != "sky.jpg" {
		t.Errorf("no asset dir = %s", got)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Fatal("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should be absolute, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected no config, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in working directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected debug level, got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.CameraHelper {
					t.Error("expected camera helper with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "no-panel flag",
			setup: func() { *flagNoPanel = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Debug.Panel {
					t.Error("expected panel disabled")
				}
			},
			teardown: func() { *flagNoPanel = false },
		},
		{
			name:  "spin flag",
			setup: func() { *flagSpin = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Lighting.Spin {
					t.Error("expected spin enabled")
				}
			},
			teardown: func() { *flagSpin = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  width: 1600\n  height: 900\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	*flagConfig = path
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("lighting:\n  orbit_radius: -1\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	*flagConfig = path
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Lighting.OrbitRadius = 9

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Lighting.OrbitRadius != 9 {
		t.Errorf("expected saved radius 9, got %f", loaded.Lighting.OrbitRadius)
	}
}

func TestSaveWritesDefaultPath(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not redirectable through XDG_CONFIG_HOME here")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	want := filepath.Join(xdg, "lowpoly-house", "config.yaml")
	if got := DefaultPath(); got != want {
		t.Fatalf("DefaultPath = %s, want %s", got, want)
	}

	cfg := Default()
	cfg.Lighting.AmbientIntensity = 0.5
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := Default()
	if err := loadFromFile(loaded, want); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Lighting.AmbientIntensity != 0.5 {
		t.Errorf("ambient intensity = %v, want 0.5", loaded.Lighting.AmbientIntensity)
	}
}
