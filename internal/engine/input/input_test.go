package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyDown(sc sdl.Scancode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sc}}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		want   Event
		wantOK bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{"key", keyDown(sdl.SCANCODE_N), Event{Type: EventKeyDown, Key: sdl.SCANCODE_N}, true},
		{"key repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_N}}, Event{}, false},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_N}}, Event{}, false},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600}, true},
		{"focus", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_GAINED}, Event{}, false},
		{"drag", &sdl.MouseMotionEvent{State: sdl.ButtonLMask(), XRel: 4, YRel: -2},
			Event{Type: EventMouseDrag, DX: 4, DY: -2}, true},
		{"hover", &sdl.MouseMotionEvent{XRel: 4, YRel: -2}, Event{}, false},
		{"wheel", &sdl.MouseWheelEvent{Y: 2}, Event{Type: EventMouseWheel, Wheel: 2}, true},
		{"wheel flipped", &sdl.MouseWheelEvent{Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED}, Event{Type: EventMouseWheel, Wheel: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Translate = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestActionsFollowBindings(t *testing.T) {
	in := New(nil)
	for _, sc := range []sdl.Scancode{sdl.SCANCODE_N, sdl.SCANCODE_A, sdl.SCANCODE_S, sdl.SCANCODE_F5, sdl.SCANCODE_F12, sdl.SCANCODE_ESCAPE} {
		e, _ := Translate(keyDown(sc))
		in.add(e)
	}

	want := []Action{ActionToggleMode, ActionToggleSpin, ActionSaveSettings, ActionScreenshot, ActionQuit}
	got := in.Actions()
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCustomBindings(t *testing.T) {
	in := New(Bindings{sdl.SCANCODE_SPACE: ActionToggleMode})
	e, _ := Translate(keyDown(sdl.SCANCODE_N))
	in.add(e)
	e, _ = Translate(keyDown(sdl.SCANCODE_SPACE))
	in.add(e)
	if got := in.Actions(); len(got) != 1 || got[0] != ActionToggleMode {
		t.Errorf("actions = %v", got)
	}
}

func TestAccumulateAndReset(t *testing.T) {
	in := New(nil)
	in.add(Event{Type: EventMouseDrag, DX: 3, DY: 1})
	in.add(Event{Type: EventMouseDrag, DX: -1, DY: 2})
	in.add(Event{Type: EventMouseWheel, Wheel: 1})
	in.add(Event{Type: EventMouseWheel, Wheel: 0.5})
	in.add(Event{Type: EventWindowResize, Width: 640, Height: 480})
	in.add(Event{Type: EventQuit})

	if dx, dy := in.Drag(); dx != 2 || dy != 3 {
		t.Errorf("drag = %v,%v", dx, dy)
	}
	if in.Wheel() != 1.5 {
		t.Errorf("wheel = %v", in.Wheel())
	}
	if w, h, ok := in.Resized(); !ok || w != 640 || h != 480 {
		t.Errorf("resized = %v,%v,%v", w, h, ok)
	}
	if got := in.Actions(); len(got) != 1 || got[0] != ActionQuit {
		t.Errorf("actions = %v", got)
	}
	if len(in.Events()) != 6 {
		t.Errorf("events = %d", len(in.Events()))
	}

	in.reset()
	if dx, dy := in.Drag(); dx != 0 || dy != 0 || in.Wheel() != 0 || len(in.Actions()) != 0 || len(in.Events()) != 0 {
		t.Error("reset left state behind")
	}
	if _, _, ok := in.Resized(); ok {
		t.Error("reset left resize flag")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleMode.String() != "toggle-mode" || ActionSaveSettings.String() != "save-settings" || ActionNone.String() != "none" {
		t.Error("unexpected action names")
	}
}
