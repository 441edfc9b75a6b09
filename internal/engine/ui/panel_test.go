package ui

import (
	"errors"
	"testing"

	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

type fakeControls struct {
	toggles int
	spin    bool
	err     error
}

func (f *fakeControls) Toggle() error {
	if f.err != nil {
		return f.err
	}
	f.toggles++
	return nil
}
func (f *fakeControls) SetSpin(on bool) { f.spin = on }
func (f *fakeControls) Spinning() bool  { return f.spin }
func (f *fakeControls) Mode() lighting.Mode {
	if f.toggles%2 == 1 {
		return lighting.Night
	}
	return lighting.Day
}

func newTestPanel() (*LightingPanel, *lighting.AmbientLight, *lighting.DirectionalLight, *fakeControls) {
	ambient := lighting.NewAmbientLight(lighting.White, 0.12)
	sky := lighting.NewDirectionalLight(lighting.White, 0.12)
	sky.SetPosition(math.V3(4, 5, -2))
	controls := &fakeControls{}
	return NewLightingPanel(ambient, sky, controls, nil), ambient, sky, controls
}

func TestIntensitySlidersClamp(t *testing.T) {
	p, ambient, sky, _ := newTestPanel()

	tests := []struct {
		in, want float32
	}{
		{0.5, 0.5},
		{-1, 0},
		{3, 1},
		{0.001, 0.001},
	}
	for _, tt := range tests {
		p.SetAmbientIntensity(tt.in)
		if got := ambient.Intensity(); got != tt.want {
			t.Errorf("ambient(%v) = %v, want %v", tt.in, got, tt.want)
		}
		p.SetSkyIntensity(tt.in)
		if got := sky.Intensity(); got != tt.want {
			t.Errorf("sky(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetSkyAxis(t *testing.T) {
	p, _, sky, _ := newTestPanel()

	p.SetSkyAxis(0, -3)
	p.SetSkyAxis(1, 9)
	p.SetSkyAxis(2, 1.5)
	p.SetSkyAxis(7, 2)

	want := math.V3(-3, 5, 1.5)
	if got := sky.Position(); got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
}

func TestAxis(t *testing.T) {
	v := math.V3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		if got := axis(v, i); got != want {
			t.Errorf("axis(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestToggleDelegates(t *testing.T) {
	p, _, _, controls := newTestPanel()

	p.Toggle()
	p.Toggle()
	p.Toggle()
	if controls.toggles != 3 {
		t.Errorf("toggles = %d, want 3", controls.toggles)
	}
	if controls.Mode() != lighting.Night {
		t.Errorf("mode = %v, want night", controls.Mode())
	}
	if p.Err() != nil {
		t.Errorf("unexpected error %v", p.Err())
	}
}

func TestToggleErrorIsKept(t *testing.T) {
	p, _, _, controls := newTestPanel()
	controls.err = lighting.ErrCollaboratorNotInitialized

	p.Toggle()
	if !errors.Is(p.Err(), lighting.ErrCollaboratorNotInitialized) {
		t.Fatalf("err = %v", p.Err())
	}

	controls.err = nil
	p.Toggle()
	if p.Err() != nil {
		t.Errorf("error not cleared: %v", p.Err())
	}
}

func TestSaveDelegates(t *testing.T) {
	p, _, _, _ := newTestPanel()

	// No handler: nothing to call, no error.
	p.Save()
	if p.Err() != nil {
		t.Fatalf("unexpected error %v", p.Err())
	}

	saves := 0
	saveErr := errors.New("read-only config dir")
	p.OnSave = func() error {
		saves++
		if saves == 1 {
			return saveErr
		}
		return nil
	}

	p.Save()
	if !errors.Is(p.Err(), saveErr) {
		t.Errorf("err = %v, want %v", p.Err(), saveErr)
	}
	p.Save()
	if p.Err() != nil {
		t.Errorf("error not cleared: %v", p.Err())
	}
	if saves != 2 {
		t.Errorf("saves = %d, want 2", saves)
	}
}

func TestPanelDrivesRealController(t *testing.T) {
	ambient := lighting.NewAmbientLight(lighting.White, 0.12)
	sky := lighting.NewDirectionalLight(lighting.White, 0.12)
	door := lighting.NewPointLight(lighting.White, 1)
	bg := &nopBackground{}

	c, err := lighting.New(sky, door, bg, lighting.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	p := NewLightingPanel(ambient, sky, c, nil)

	p.Toggle()
	if c.Mode() != lighting.Night {
		t.Errorf("mode = %v, want night", c.Mode())
	}
	if sky.Intensity() != lighting.NightSkyIntensity {
		t.Errorf("sky intensity = %v", sky.Intensity())
	}

	// Slider edits survive until the next toggle.
	p.SetSkyIntensity(0.9)
	p.Toggle()
	if sky.Intensity() != lighting.DaySkyIntensity {
		t.Errorf("toggle did not restore day intensity: %v", sky.Intensity())
	}
}

type nopBackground struct{}

func (nopBackground) SetBackground(lighting.Background) {}
