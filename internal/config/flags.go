package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagNoPanel    = flag.Bool("no-panel", false, "Run in a plain SDL window without the debug panel")
	flagSpin       = flag.Bool("spin", false, "Start with the sky light orbiting")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call it first in main.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the --config value.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags overrides cfg with any flags that were set.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.CameraHelper = true
	}
	if *flagNoPanel {
		cfg.Debug.Panel = false
	}
	if *flagSpin {
		cfg.Lighting.Spin = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
