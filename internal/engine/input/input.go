// Package input translates SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

var scancodeKeys = map[sdl.Scancode]Key{
	sdl.SCANCODE_ESCAPE:   KeyEscape,
	sdl.SCANCODE_W:        KeyW,
	sdl.SCANCODE_A:        KeyA,
	sdl.SCANCODE_S:        KeyS,
	sdl.SCANCODE_D:        KeyD,
	sdl.SCANCODE_R:        KeyR,
	sdl.SCANCODE_F:        KeyF,
	sdl.SCANCODE_P:        KeyP,
	sdl.SCANCODE_B:        KeyB,
	sdl.SCANCODE_LEFT:     KeyLeft,
	sdl.SCANCODE_RIGHT:    KeyRight,
	sdl.SCANCODE_UP:       KeyUp,
	sdl.SCANCODE_DOWN:     KeyDown,
	sdl.SCANCODE_PAGEUP:   KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: KeyPageDown,
	sdl.SCANCODE_F12:      KeyF12,
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Poll drains the SDL event queue and returns the events in arrival order.
// The returned slice is reused by the next call.
func (i *Input) Poll() []Event {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := translate(event); ok {
			i.events = append(i.events, ev)
		}
	}
	return i.events
}

// Events returns the events from the last Poll.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether k went down during the last Poll.
func (i *Input) IsKeyPressed(k Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == k {
			return true
		}
	}
	return false
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		k, ok := scancodeKeys[e.Keysym.Scancode]
		if !ok {
			return Event{}, false
		}
		t := EventKeyDown
		if e.Type == sdl.KEYUP {
			t = EventKeyUp
		}
		return Event{Type: t, Key: k, Repeat: e.Repeat != 0}, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DX:     int(e.XRel),
			DY:     int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = EventMouseUp
		}
		return Event{
			Type:   t,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: button(e.Button),
		}, true

	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		return Event{Type: EventMouseWheel, WheelY: y}, true
	}
	return Event{}, false
}

func button(b uint8) MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return ButtonRight
	}
	return ButtonNone
}
