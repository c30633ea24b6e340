package input

import "testing"

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyEscape:   "escape",
		KeyPageDown: "pagedown",
		KeyF12:      "f12",
		Key(999):    "unknown",
		Key(-1):     "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	if e := MouseMove(3, -2); e.Type != EventMouseMove || e.DX != 3 || e.DY != -2 {
		t.Errorf("MouseMove = %+v", e)
	}
	if e := Wheel(1.5); e.Type != EventMouseWheel || e.WheelY != 1.5 {
		t.Errorf("Wheel = %+v", e)
	}
	if e := KeyDown(KeyP); e.Type != EventKeyDown || e.Key != KeyP {
		t.Errorf("KeyDown = %+v", e)
	}
	if e := MouseDown(ButtonLeft); e.Type != EventMouseDown || e.Button != ButtonLeft {
		t.Errorf("MouseDown = %+v", e)
	}
	if e := MouseUp(ButtonRight); e.Type != EventMouseUp || e.Button != ButtonRight {
		t.Errorf("MouseUp = %+v", e)
	}
}

func TestIsKeyPressed(t *testing.T) {
	i := New()
	i.events = append(i.events, KeyDown(KeyB), Event{Type: EventKeyUp, Key: KeyP})

	if !i.IsKeyPressed(KeyB) {
		t.Error("expected B pressed")
	}
	if i.IsKeyPressed(KeyP) {
		t.Error("key up must not count as pressed")
	}
}
