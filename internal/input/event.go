// Package input defines the host-independent events a display host feeds to
// the session.
package input

import "fmt"

// Key names the keyboard keys the session reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyC
	KeyF
	KeyH
	KeyN
	KeyR
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyC:
		return "c"
	case KeyF:
		return "f"
	case KeyH:
		return "h"
	case KeyN:
		return "n"
	case KeyR:
		return "r"
	}
	return "unknown"
}

// Button is a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Buttons is the set of pointer buttons held during a drag.
type Buttons uint8

// Has reports whether b is held.
func (bs Buttons) Has(b Button) bool {
	if b == ButtonNone {
		return false
	}
	return bs&(1<<uint(b)) != 0
}

// With returns the set including b.
func (bs Buttons) With(b Button) Buttons {
	if b == ButtonNone {
		return bs
	}
	return bs | 1<<uint(b)
}

// HoldingButtons builds a Buttons set.
func HoldingButtons(bs ...Button) Buttons {
	var out Buttons
	for _, b := range bs {
		out = out.With(b)
	}
	return out
}

// Event is one input occurrence delivered by a host.
type Event interface {
	fmt.Stringer
	event()
}

// Quit is a request from the host to close the program.
type Quit struct{}

// KeyPress is a key going down.
type KeyPress struct {
	Key Key
}

// PointerDown is a pointer button going down at pixel (X, Y).
type PointerDown struct {
	Button Button
	X, Y   int
}

// PointerDrag is pointer motion to (X, Y) by (DX, DY) pixels with Held
// buttons pressed.
type PointerDrag struct {
	Held   Buttons
	X, Y   int
	DX, DY int
}

// Scroll is wheel movement; positive DY scrolls up.
type Scroll struct {
	DY int
}

func (Quit) event()        {}
func (KeyPress) event()    {}
func (PointerDown) event() {}
func (PointerDrag) event() {}
func (Scroll) event()      {}

func (Quit) String() string       { return "quit" }
func (e KeyPress) String() string { return "key " + e.Key.String() }
func (e PointerDown) String() string {
	return fmt.Sprintf("down button=%d at (%d,%d)", e.Button, e.X, e.Y)
}
func (e PointerDrag) String() string {
	return fmt.Sprintf("drag held=%b at (%d,%d) by (%d,%d)", e.Held, e.X, e.Y, e.DX, e.DY)
}
func (e Scroll) String() string { return fmt.Sprintf("scroll %d", e.DY) }
