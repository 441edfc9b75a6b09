package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load builds the config from defaults, the config file and flags, in that
// order, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, path := range []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for this OS.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "LowpolyHouse")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "LowpolyHouse")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lowpoly-house")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lowpoly-house")
	}
}

// loadFromFile merges the YAML at path over cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// DaylightPath returns the daylight background image path.
func (c *Config) DaylightPath() string {
	return c.AssetPath(c.Assets.Daylight)
}

// AssetPath resolves name against the asset directory.
func (c *Config) AssetPath(name string) string {
	if filepath.IsAbs(name) || c.Assets.Dir == "" {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}
