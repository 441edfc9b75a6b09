// Package input turns SDL2 events into camera movement and scene actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDrag
	EventMouseWheel
)

// Event is a translated SDL event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int32
	Height int32
	DX, DY float32 // drag delta in pixels
	Wheel  float32
}

// Action is something a key press asks the application to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMode
	ActionToggleSpin
	ActionScreenshot
	ActionSaveSettings
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionToggleMode:
		return "toggle-mode"
	case ActionToggleSpin:
		return "toggle-spin"
	case ActionScreenshot:
		return "screenshot"
	case ActionSaveSettings:
		return "save-settings"
	}
	return "none"
}

// Bindings maps keys to actions.
type Bindings map[sdl.Scancode]Action

// DefaultBindings returns N for day/night, S for spin, F5 to save settings,
// F12 for a screenshot and Escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_N:      ActionToggleMode,
		sdl.SCANCODE_S:      ActionToggleSpin,
		sdl.SCANCODE_F5:     ActionSaveSettings,
		sdl.SCANCODE_F12:    ActionScreenshot,
		sdl.SCANCODE_ESCAPE: ActionQuit,
	}
}

// Translate converts an SDL event. Key repeats, mouse motion without the
// left button held and unrelated events are dropped.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: e.Data1, Height: e.Data2}, true
		}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}
	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() != 0 {
			return Event{Type: EventMouseDrag, DX: float32(e.XRel), DY: float32(e.YRel)}, true
		}
	case *sdl.MouseWheelEvent:
		wheel := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			wheel = -wheel
		}
		return Event{Type: EventMouseWheel, Wheel: wheel}, true
	}
	return Event{}, false
}

// Input collects one frame of events.
type Input struct {
	bindings Bindings
	events   []Event
	actions  []Action

	dragX, dragY float32
	wheel        float32
	resized      bool
	width        int32
	height       int32
}

// New creates an input handler with the given key bindings.
func New(bindings Bindings) *Input {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls SDL events for this frame.
func (i *Input) Update() {
	i.reset()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := Translate(event); ok {
			i.add(e)
		}
	}
}

func (i *Input) reset() {
	i.events = i.events[:0]
	i.actions = i.actions[:0]
	i.dragX, i.dragY, i.wheel = 0, 0, 0
	i.resized = false
}

func (i *Input) add(e Event) {
	i.events = append(i.events, e)
	switch e.Type {
	case EventQuit:
		i.actions = append(i.actions, ActionQuit)
	case EventKeyDown:
		if a, ok := i.bindings[e.Key]; ok {
			i.actions = append(i.actions, a)
		}
	case EventMouseDrag:
		i.dragX += e.DX
		i.dragY += e.DY
	case EventMouseWheel:
		i.wheel += e.Wheel
	case EventWindowResize:
		i.resized = true
		i.width, i.height = e.Width, e.Height
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Actions returns triggered actions in event order.
func (i *Input) Actions() []Action {
	return i.actions
}

// Drag returns the summed drag delta.
func (i *Input) Drag() (dx, dy float32) {
	return i.dragX, i.dragY
}

// Wheel returns the summed wheel delta.
func (i *Input) Wheel() float32 {
	return i.wheel
}

// Resized returns the last window size if the window was resized.
func (i *Input) Resized() (width, height int32, ok bool) {
	return i.width, i.height, i.resized
}
