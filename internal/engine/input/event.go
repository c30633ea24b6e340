package input

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Key is a physical key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyF
	KeyP
	KeyB
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyF12
)

var keyNames = [...]string{
	KeyUnknown:  "unknown",
	KeyEscape:   "escape",
	KeyW:        "w",
	KeyA:        "a",
	KeyS:        "s",
	KeyD:        "d",
	KeyR:        "r",
	KeyF:        "f",
	KeyP:        "p",
	KeyB:        "b",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
	KeyF12:      "f12",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is a window-system independent input event.
type Event struct {
	Type EventType

	Key    Key
	Repeat bool

	Width  int
	Height int

	MouseX int
	MouseY int
	// DX and DY are the motion since the previous mouse event, in pixels.
	DX     int
	DY     int
	Button MouseButton

	// WheelY is positive when scrolling away from the user.
	WheelY float32
}

// KeyDown returns a key press event.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// MouseDown returns a button press event.
func MouseDown(b MouseButton) Event { return Event{Type: EventMouseDown, Button: b} }

// MouseUp returns a button release event.
func MouseUp(b MouseButton) Event { return Event{Type: EventMouseUp, Button: b} }

// MouseMove returns a motion event with relative movement dx, dy.
func MouseMove(dx, dy int) Event { return Event{Type: EventMouseMove, DX: dx, DY: dy} }

// Wheel returns a vertical scroll event.
func Wheel(dy float32) Event { return Event{Type: EventMouseWheel, WheelY: dy} }
