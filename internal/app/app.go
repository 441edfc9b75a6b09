// Package app wires the house scene, the day/night controller, the camera
// and the renderer together and runs them in a window.
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-house/internal/config"
	"github.com/Faultbox/lowpoly-house/internal/engine/camera"
	"github.com/Faultbox/lowpoly-house/internal/engine/debug"
	"github.com/Faultbox/lowpoly-house/internal/engine/input"
	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/internal/engine/picking"
	"github.com/Faultbox/lowpoly-house/internal/engine/renderer"
	"github.com/Faultbox/lowpoly-house/internal/engine/scene"
	"github.com/Faultbox/lowpoly-house/internal/engine/texture"
	"github.com/Faultbox/lowpoly-house/internal/logger"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Title is the window title.
const Title = "Low-poly House"

// CameraStart is where the orbit camera starts, looking at the origin.
var CameraStart = math.V3(4, 2, 10)

// ErrNoRenderer is returned by operations that need a GL context before a
// host has created one.
var ErrNoRenderer = errors.New("app: renderer not initialized")

// App owns the scene and everything that acts on it.
type App struct {
	cfg *config.Config
	log *zap.Logger

	scene    *scene.Scene
	lights   *lighting.Controller
	camera   *camera.OrbitCamera
	textures *texture.Cache
	shots    *debug.ScreenshotCapture
	renderer *renderer.Renderer

	running  bool
	hovered  string
	ground   math.Vec3
	onGround bool
}

// New builds the scene and the lighting controller and toggles once, so the
// first frame shows night. No GL calls are made until a host runs.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	var err error
	if a.scene, err = scene.NewHouse(cfg); err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	a.lights, err = lighting.New(a.scene.Sky, a.scene.Door, a.scene, lighting.Options{
		OrbitRadius:   cfg.Lighting.OrbitRadius,
		OrbitStep:     cfg.Lighting.OrbitStep,
		Spin:          cfg.Lighting.Spin,
		DaylightImage: cfg.DaylightPath(),
		Logger:        logger.Named("lighting"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating lighting controller: %w", err)
	}
	if err := a.lights.Toggle(); err != nil {
		return nil, fmt.Errorf("applying initial lighting: %w", err)
	}

	aspect := float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)
	a.camera = camera.NewOrbitCamera(CameraStart, cfg.Graphics.FOV, aspect, cfg.Graphics.Near, cfg.Graphics.Far)

	a.textures = texture.NewCache(texture.CacheOptions{
		MaxSize:  cfg.Assets.MaxTextureSize,
		Fallback: cfg.Assets.ProceduralFallback,
		Logger:   logger.Named("texture"),
	})
	a.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "house")

	a.log.Info("scene ready",
		zap.Int("nodes", len(a.scene.Nodes)),
		zap.Stringer("mode", a.lights.Mode()),
		zap.Bool("spin", a.lights.Spinning()),
	)
	return a, nil
}

// Run opens the configured host and blocks until it is closed.
func (a *App) Run() error {
	a.running = true
	switch HostFor(a.cfg) {
	case HostPanel:
		return a.runPanel()
	default:
		return a.runWindow()
	}
}

// Close releases GPU resources.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
}

// Scene returns the house scene.
func (a *App) Scene() *scene.Scene { return a.scene }

// Lights returns the day/night controller.
func (a *App) Lights() *lighting.Controller { return a.lights }

// Camera returns the orbit camera.
func (a *App) Camera() *camera.OrbitCamera { return a.camera }

// initRenderer creates the renderer once a GL context is current.
func (a *App) initRenderer(width, height int32) error {
	r, err := renderer.New(a.scene, renderer.Options{
		Width:        width,
		Height:       height,
		Shadows:      a.cfg.Graphics.Shadows,
		CameraHelper: a.cfg.Debug.CameraHelper,
		Textures:     a.textures,
		Logger:       logger.Named("renderer"),
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	a.renderer = r
	return nil
}

// handleAction applies a key action and reports whether to keep running.
func (a *App) handleAction(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionToggleMode:
		if err := a.lights.Toggle(); err != nil {
			a.log.Error("toggle failed", zap.Error(err))
		}
	case input.ActionToggleSpin:
		a.lights.SetSpin(!a.lights.Spinning())
	case input.ActionSaveSettings:
		if path, err := a.saveSettings(); err != nil {
			a.log.Warn("saving settings failed", zap.Error(err))
		} else {
			a.log.Info("settings saved", zap.String("path", path))
		}
	case input.ActionScreenshot:
		if path, err := a.screenshot(); err != nil {
			a.log.Warn("screenshot failed", zap.Error(err))
		} else {
			a.log.Info("screenshot saved", zap.String("path", path))
		}
	}
	return true
}

// update advances the lighting animation and the camera by one frame.
func (a *App) update() error {
	if err := a.lights.Tick(); err != nil {
		return err
	}
	a.camera.Update()
	return nil
}

// frame runs update and renders, returning the scene texture.
func (a *App) frame() (uint32, error) {
	if err := a.update(); err != nil {
		return 0, err
	}
	if a.renderer == nil {
		return 0, ErrNoRenderer
	}
	return a.renderer.Render(a.scene, a.camera), nil
}

// resize follows a new viewport size in screen coordinates.
func (a *App) resize(width, height int32, pixelRatio float32) {
	if width <= 0 || height <= 0 {
		return
	}
	a.camera.SetAspect(width, height)
	if a.renderer != nil {
		a.renderer.Resize(renderer.DrawableSize(width, height, pixelRatio, a.cfg.Graphics.MaxPixelRatio))
	}
}

// hover records the node under the cursor at x, y inside a viewport of
// width x height.
func (a *App) hover(x, y, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	inv := a.camera.ViewProjection().Inverse()
	ray := picking.ScreenToRay(x, y, width, height, inv)
	a.hovered, a.onGround = "", false
	if hit, ok := picking.Pick(ray, a.scene.Nodes); ok {
		a.hovered = hit.Node.Name
		return
	}
	a.ground, a.onGround = ray.IntersectPlaneY(0)
}

// Hovered returns the name of the node last under the cursor.
func (a *App) Hovered() string { return a.hovered }

// HoveredGround returns the point on the ground plane under the cursor when
// no node was hit.
func (a *App) HoveredGround() (math.Vec3, bool) { return a.ground, a.onGround }

// hoverLabel describes what is under the cursor for the debug window.
func (a *App) hoverLabel() string {
	switch {
	case a.hovered != "":
		return a.hovered
	case a.onGround:
		return fmt.Sprintf("ground (%.1f, %.1f)", a.ground.X, a.ground.Z)
	}
	return ""
}

// saveSettings writes the panel's ambient edits and the spin state to the
// user config file. Day/night mode and preset light values are not stored.
func (a *App) saveSettings() (string, error) {
	a.cfg.Lighting.AmbientColor = a.scene.Ambient.Color().Hex()
	a.cfg.Lighting.AmbientIntensity = a.scene.Ambient.Intensity()
	a.cfg.Lighting.Spin = a.lights.Spinning()
	if err := a.cfg.Save(); err != nil {
		return "", fmt.Errorf("saving settings: %w", err)
	}
	return config.DefaultPath(), nil
}

func (a *App) screenshot() (string, error) {
	if a.renderer == nil {
		return "", ErrNoRenderer
	}
	fb := a.renderer.Framebuffer()
	w, h := fb.Size()
	return a.shots.CaptureFromPixels(fb.ReadPixels(), int(w), int(h))
}
