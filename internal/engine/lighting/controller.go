// Package lighting owns the scene's lights and the day/night controller
// that switches between the two lighting presets and orbits the sky light.
package lighting

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-house/internal/logger"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// ErrCollaboratorNotInitialized is returned when the controller is built or
// used without its sky light, accent light or background target.
var ErrCollaboratorNotInitialized = errors.New("lighting: collaborator not initialized")

// SkyLight is the sun/moon light the controller repositions and recolors.
type SkyLight interface {
	Position() math.Vec3
	SetPosition(math.Vec3)
	SetColor(Color)
	SetIntensity(float32)
}

// AccentLight is the door lamp; only its intensity changes between modes.
type AccentLight interface {
	SetIntensity(float32)
}

// BackgroundSetter receives the scene background.
type BackgroundSetter interface {
	SetBackground(Background)
}

// Mode is the current lighting mode.
type Mode int

const (
	Day Mode = iota
	Night
)

func (m Mode) String() string {
	if m == Night {
		return "night"
	}
	return "day"
}

// Options configures a Controller.
type Options struct {
	OrbitRadius   float64 // distance of the orbiting sky light from the origin
	OrbitStep     float64 // radians added per Tick while spinning
	Spin          bool    // initial spin state
	DaylightImage string  // background image for day mode
	Logger        *zap.Logger
}

// DefaultOptions returns radius 5, step 0.02 rad and spin off.
func DefaultOptions() Options {
	return Options{
		OrbitRadius:   5,
		OrbitStep:     0.02,
		DaylightImage: "Texture/Daylight.jpg",
	}
}

// State is a snapshot of the controller.
type State struct {
	Mode     Mode
	Spinning bool
	Angle    float64
	Radius   float64
	Step     float64
}

// Controller switches the scene between day and night and orbits the sky
// light while spinning. Toggle and Tick are serialized, so a preset is never
// observed half applied even if input and rendering run on different
// goroutines.
type Controller struct {
	mu sync.Mutex

	sky    SkyLight
	accent AccentLight
	bg     BackgroundSetter

	night    bool
	spinning bool
	angle    float64
	radius   float64
	step     float64
	daylight string

	log *zap.Logger
}

// New creates a controller driving the given collaborators. It does not
// apply any preset; callers toggle once at startup.
func New(sky SkyLight, accent AccentLight, bg BackgroundSetter, opts Options) (*Controller, error) {
	if err := checkCollaborators(sky, accent, bg); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("lighting")
	}
	return &Controller{
		sky:      sky,
		accent:   accent,
		bg:       bg,
		spinning: opts.Spin,
		radius:   opts.OrbitRadius,
		step:     opts.OrbitStep,
		daylight: opts.DaylightImage,
		log:      log,
	}, nil
}

// Toggle flips the mode and applies the matching preset in full.
func (c *Controller) Toggle() error {
	if err := c.ready(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.night = !c.night
	p := DayPreset(c.daylight)
	if c.night {
		p = NightPreset()
	}
	c.apply(p)

	c.logOrNop().Info("lighting mode applied",
		zap.Stringer("mode", c.modeLocked()),
		zap.Float32("sky_intensity", p.SkyIntensity),
		zap.Float32("accent_intensity", p.AccentIntensity),
	)
	return nil
}

func (c *Controller) apply(p Preset) {
	c.bg.SetBackground(p.Background)
	c.sky.SetPosition(p.SkyPosition)
	c.sky.SetColor(p.SkyColor)
	c.sky.SetIntensity(p.SkyIntensity)
	c.accent.SetIntensity(p.AccentIntensity)
}

// Tick advances the orbit by one step while spinning and moves the sky
// light along it. Height and every other light property stay untouched.
// Without spin it does nothing.
func (c *Controller) Tick() error {
	if err := c.ready(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.spinning {
		return nil
	}
	c.angle = wrapAngle(c.angle + c.step)
	y := c.sky.Position().Y
	c.sky.SetPosition(OrbitPosition(c.radius, c.angle, y))
	return nil
}

// SetSpin turns the orbit animation on or off. The angle is kept, so
// re-enabling continues where it stopped.
func (c *Controller) SetSpin(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.spinning != on {
		c.logOrNop().Debug("sky light spin changed", zap.Bool("spinning", on))
	}
	c.spinning = on
}

// Spinning reports whether the orbit animation is on.
func (c *Controller) Spinning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spinning
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modeLocked()
}

func (c *Controller) modeLocked() Mode {
	if c.night {
		return Night
	}
	return Day
}

// Angle returns the orbit angle in radians.
func (c *Controller) Angle() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angle
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Mode:     c.modeLocked(),
		Spinning: c.spinning,
		Angle:    c.angle,
		Radius:   c.radius,
		Step:     c.step,
	}
}

// logOrNop keeps a zero-value controller from dereferencing a nil logger.
func (c *Controller) logOrNop() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

func (c *Controller) ready() error {
	if c == nil {
		return fmt.Errorf("%w: nil controller", ErrCollaboratorNotInitialized)
	}
	return checkCollaborators(c.sky, c.accent, c.bg)
}

func checkCollaborators(sky SkyLight, accent AccentLight, bg BackgroundSetter) error {
	switch {
	case isNil(sky):
		return fmt.Errorf("%w: sky light", ErrCollaboratorNotInitialized)
	case isNil(accent):
		return fmt.Errorf("%w: accent light", ErrCollaboratorNotInitialized)
	case isNil(bg):
		return fmt.Errorf("%w: background", ErrCollaboratorNotInitialized)
	}
	return nil
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
