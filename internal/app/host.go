package app

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-house/internal/config"
	"github.com/Faultbox/lowpoly-house/internal/engine/input"
	"github.com/Faultbox/lowpoly-house/internal/engine/renderer"
	"github.com/Faultbox/lowpoly-house/internal/engine/ui"
	"github.com/Faultbox/lowpoly-house/internal/engine/window"
)

// Host selects how the scene is presented.
type Host int

const (
	// HostWindow blits the scene to a plain SDL window.
	HostWindow Host = iota
	// HostPanel shows the scene inside an ImGui window next to the
	// lighting panel.
	HostPanel
)

func (h Host) String() string {
	if h == HostPanel {
		return "panel"
	}
	return "window"
}

// HostFor picks the host for cfg.
func HostFor(cfg *config.Config) Host {
	if cfg.Debug.Panel {
		return HostPanel
	}
	return HostWindow
}

const panelWidth = 320

// runWindow drives the plain SDL host.
func (a *App) runWindow() error {
	win, err := window.New(window.Config{
		Title:      Title,
		Width:      int32(a.cfg.Graphics.Width),
		Height:     int32(a.cfg.Graphics.Height),
		Fullscreen: a.cfg.Graphics.Fullscreen,
		VSync:      a.cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	w, h := win.Size()
	fw, fh := renderer.DrawableSize(w, h, win.PixelRatio(), a.cfg.Graphics.MaxPixelRatio)
	if err := a.initRenderer(fw, fh); err != nil {
		return err
	}
	defer a.Close()
	a.camera.SetAspect(w, h)

	in := input.New(input.DefaultBindings())
	fps := newFPSCounter()

	a.log.Info("starting render loop", zap.Stringer("host", HostWindow))
	for a.running {
		in.Update()
		for _, action := range in.Actions() {
			if !a.handleAction(action) {
				a.running = false
			}
		}
		if !a.running {
			break
		}
		if w, h, ok := in.Resized(); ok {
			a.resize(w, h, win.PixelRatio())
		}
		if dx, dy := in.Drag(); dx != 0 || dy != 0 {
			a.camera.HandleDrag(dx, dy)
		}
		if wheel := in.Wheel(); wheel != 0 {
			a.camera.HandleZoom(wheel)
		}

		if _, err := a.frame(); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		dw, dh := win.DrawableSize()
		a.renderer.Framebuffer().BlitToScreen(dw, dh)
		win.SwapBuffers()

		if n, ok := fps.tick(time.Now()); ok {
			a.log.Debug("fps", zap.Int("count", n))
		}
	}
	return nil
}

// runPanel drives the ImGui host. The first frame error closes the window;
// later callbacks draw nothing and the error is returned once Run exits.
func (a *App) runPanel() error {
	b, err := ui.NewBackend(Title, int32(a.cfg.Graphics.Width), int32(a.cfg.Graphics.Height))
	if err != nil {
		return err
	}

	viewW := int32(a.cfg.Graphics.Width - panelWidth)
	if err := a.initRenderer(max(viewW, 1), int32(a.cfg.Graphics.Height)); err != nil {
		return err
	}
	defer a.Close()

	panel := ui.NewLightingPanel(a.scene.Ambient, a.scene.Sky, a.lights, a.log)
	panel.OnSave = func() error {
		_, err := a.saveSettings()
		return err
	}
	view := &ui.SceneView{
		OnDrag:  a.camera.HandleDrag,
		OnZoom:  a.camera.HandleZoom,
		OnHover: a.hover,
	}

	var latch frameLatch
	var tex uint32
	var lastW, lastH float32

	a.log.Info("starting render loop", zap.Stringer("host", HostPanel))
	b.Run(func() {
		ok := latch.step(func() error {
			a.panelKeys()
			var err error
			if tex, err = a.frame(); err != nil {
				a.log.Error("frame failed", zap.Error(err))
				b.Stop()
			}
			return err
		})
		if !ok {
			return
		}

		x, y, w, h := ui.Viewport()
		flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

		imgui.SetNextWindowPos(imgui.NewVec2(x, y))
		imgui.SetNextWindowSize(imgui.NewVec2(w-panelWidth, h))
		if imgui.BeginV("Scene", nil, flags|imgui.WindowFlagsNoScrollbar) {
			vw, vh := view.Draw(tex)
			if vw != lastW || vh != lastH {
				lastW, lastH = vw, vh
				a.resize(int32(vw), int32(vh), ui.FramebufferScale())
			}
		}
		imgui.End()

		imgui.SetNextWindowPos(imgui.NewVec2(x+w-panelWidth, y))
		imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, h))
		if imgui.BeginV("Debug", nil, flags) {
			panel.Draw()
			imgui.Separator()
			if label := a.hoverLabel(); label != "" {
				imgui.Text(fmt.Sprintf("Under cursor: %s", label))
			}
			imgui.TextDisabled("N: day/night  S: spin  F5: save  F12: screenshot")
		}
		imgui.End()
	})
	return latch.err
}

// panelKeys maps the window host's key bindings onto ImGui key presses.
func (a *App) panelKeys() {
	if imgui.CurrentIO().WantCaptureKeyboard() {
		return
	}
	keys := []struct {
		key    imgui.Key
		action input.Action
	}{
		{imgui.KeyN, input.ActionToggleMode},
		{imgui.KeyS, input.ActionToggleSpin},
		{imgui.KeyF5, input.ActionSaveSettings},
		{imgui.KeyF12, input.ActionScreenshot},
	}
	for _, k := range keys {
		if ui.IsKeyPressed(k.key) {
			a.handleAction(k.action)
		}
	}
}

// fpsCounter counts frames per wall-clock second.
type fpsCounter struct {
	start time.Time
	count int
}

func newFPSCounter() *fpsCounter {
	return &fpsCounter{start: time.Now()}
}

// tick records a frame and returns the count once a second has passed.
func (f *fpsCounter) tick(now time.Time) (int, bool) {
	f.count++
	if now.Sub(f.start) < time.Second {
		return 0, false
	}
	n := f.count
	f.count = 0
	f.start = now
	return n, true
}

// frameLatch keeps the first error returned by a frame and skips every
// frame after it.
type frameLatch struct {
	err error
}

// step runs fn unless an earlier frame failed and reports whether fn ran
// without error.
func (l *frameLatch) step(fn func() error) bool {
	if l.err != nil {
		return false
	}
	l.err = fn()
	return l.err == nil
}
