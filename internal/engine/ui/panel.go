package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// Slider ranges of the lighting panel.
const (
	IntensityMin   = 0
	IntensityMax   = 1
	SkyPositionMin = -5
	SkyPositionMax = 5
)

// LightControls is the part of the day/night controller the panel drives.
type LightControls interface {
	Toggle() error
	SetSpin(on bool)
	Spinning() bool
	Mode() lighting.Mode
}

// LightingPanel edits the ambient and sky lights and drives the day/night
// controller. The "Lighting" node starts collapsed.
type LightingPanel struct {
	ambient  *lighting.AmbientLight
	sky      *lighting.DirectionalLight
	controls LightControls
	log      *zap.Logger

	// OnSave persists the current settings. The "Save settings" button is
	// hidden while it is nil.
	OnSave func() error

	lastErr error
}

// NewLightingPanel creates a panel over the given lights and controller.
func NewLightingPanel(ambient *lighting.AmbientLight, sky *lighting.DirectionalLight, controls LightControls, log *zap.Logger) *LightingPanel {
	if log == nil {
		log = zap.NewNop()
	}
	return &LightingPanel{
		ambient:  ambient,
		sky:      sky,
		controls: controls,
		log:      log,
	}
}

// Draw renders the panel widgets into the current ImGui window.
func (p *LightingPanel) Draw() {
	if !imgui.TreeNodeExStrV("Lighting", imgui.TreeNodeFlagsNone) {
		return
	}
	defer imgui.TreePop()

	ambient := p.ambient.Intensity()
	if imgui.SliderFloatV("Ambient intensity", &ambient, IntensityMin, IntensityMax, "%.3f", imgui.SliderFlagsNone) {
		p.SetAmbientIntensity(ambient)
	}

	sky := p.sky.Intensity()
	if imgui.SliderFloatV("Sky intensity", &sky, IntensityMin, IntensityMax, "%.3f", imgui.SliderFlagsNone) {
		p.SetSkyIntensity(sky)
	}

	pos := p.sky.Position()
	for i, label := range []string{"Sky X", "Sky Y", "Sky Z"} {
		v := axis(pos, i)
		if imgui.SliderFloatV(label, &v, SkyPositionMin, SkyPositionMax, "%.3f", imgui.SliderFlagsNone) {
			p.SetSkyAxis(i, v)
		}
	}

	if imgui.Button("Toggle Day/Night") {
		p.Toggle()
	}
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("(%s)", p.controls.Mode()))

	spin := p.controls.Spinning()
	if imgui.Checkbox("Spin light", &spin) {
		p.controls.SetSpin(spin)
	}

	if p.OnSave != nil && imgui.Button("Save settings") {
		p.Save()
	}

	if p.lastErr != nil {
		imgui.Text(p.lastErr.Error())
	}
}

// Save calls OnSave, remembering any error for display.
func (p *LightingPanel) Save() {
	if p.OnSave == nil {
		return
	}
	if err := p.OnSave(); err != nil {
		p.log.Error("saving settings failed", zap.Error(err))
		p.lastErr = err
		return
	}
	p.lastErr = nil
}

// SetAmbientIntensity sets the ambient intensity clamped to the slider range.
func (p *LightingPanel) SetAmbientIntensity(v float32) {
	p.ambient.SetIntensity(clamp(v, IntensityMin, IntensityMax))
}

// SetSkyIntensity sets the sky light intensity clamped to the slider range.
func (p *LightingPanel) SetSkyIntensity(v float32) {
	p.sky.SetIntensity(clamp(v, IntensityMin, IntensityMax))
}

// SetSkyAxis sets one coordinate (0=x, 1=y, 2=z) of the sky light position.
// A spinning light overwrites x and z on the next tick.
func (p *LightingPanel) SetSkyAxis(i int, v float32) {
	v = clamp(v, SkyPositionMin, SkyPositionMax)
	pos := p.sky.Position()
	switch i {
	case 0:
		pos.X = v
	case 1:
		pos.Y = v
	case 2:
		pos.Z = v
	default:
		return
	}
	p.sky.SetPosition(pos)
}

// Toggle flips day and night, remembering any error for display.
func (p *LightingPanel) Toggle() {
	if err := p.controls.Toggle(); err != nil {
		p.log.Error("toggle failed", zap.Error(err))
		p.lastErr = err
		return
	}
	p.lastErr = nil
}

// Err returns the last toggle or save error, if any.
func (p *LightingPanel) Err() error {
	return p.lastErr
}

func axis(v math.Vec3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
