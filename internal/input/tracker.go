package input

// Sample is the polled input state of one frame, as reported by hosts that
// expose device state rather than an event queue.
type Sample struct {
	CloseRequested bool
	Keys           []Key
	Pressed        []Button
	Held           Buttons
	X, Y           int
	WheelY         float64
}

// Tracker turns consecutive samples into events. It remembers the previous
// cursor position so drags carry their relative motion.
type Tracker struct {
	lastX, lastY int
	seen         bool
}

// Events converts one sample. Presses come before drags so a press followed
// by motion in the same frame paints both pixels.
func (t *Tracker) Events(s Sample) []Event {
	var out []Event
	if s.CloseRequested {
		out = append(out, Quit{})
	}
	for _, k := range s.Keys {
		out = append(out, KeyPress{Key: k})
	}
	for _, b := range s.Pressed {
		out = append(out, PointerDown{Button: b, X: s.X, Y: s.Y})
	}

	if t.seen && s.Held != 0 && (s.X != t.lastX || s.Y != t.lastY) {
		out = append(out, PointerDrag{
			Held: s.Held,
			X:    s.X,
			Y:    s.Y,
			DX:   s.X - t.lastX,
			DY:   s.Y - t.lastY,
		})
	}
	t.lastX, t.lastY, t.seen = s.X, s.Y, true

	switch {
	case s.WheelY > 0:
		out = append(out, Scroll{DY: 1})
	case s.WheelY < 0:
		out = append(out, Scroll{DY: -1})
	}
	return out
}
