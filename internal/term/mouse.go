package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"mad-life/internal/input"
)

// pointer converts terminal mouse reports into input events. Terminals report
// absolute positions only, so it keeps the last one to derive drag deltas.
type pointer struct {
	lastX, lastY int
	seen         bool
}

func buttonOf(b tea.MouseButton) input.Button {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonLeft
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle
	case tea.MouseButtonRight:
		return input.ButtonRight
	}
	return input.ButtonNone
}

// events translates one report. inGrid reports whether (x, y) lies on the
// grid; pointer edits outside it are dropped but still move the anchor.
func (p *pointer) events(m tea.MouseMsg, inGrid func(x, y int) bool) []input.Event {
	defer func() { p.lastX, p.lastY, p.seen = m.X, m.Y, true }()

	switch m.Button {
	case tea.MouseButtonWheelUp:
		return []input.Event{input.Scroll{DY: 1}}
	case tea.MouseButtonWheelDown:
		return []input.Event{input.Scroll{DY: -1}}
	}

	b := buttonOf(m.Button)
	if b == input.ButtonNone {
		return nil
	}
	switch m.Action {
	case tea.MouseActionPress:
		if !inGrid(m.X, m.Y) {
			return nil
		}
		return []input.Event{input.PointerDown{Button: b, X: m.X, Y: m.Y}}
	case tea.MouseActionMotion:
		if !p.seen || (m.X == p.lastX && m.Y == p.lastY) {
			return nil
		}
		if b != input.ButtonMiddle && !inGrid(m.X, m.Y) {
			return nil
		}
		return []input.Event{input.PointerDrag{
			Held: input.HoldingButtons(b),
			X:    m.X,
			Y:    m.Y,
			DX:   m.X - p.lastX,
			DY:   m.Y - p.lastY,
		}}
	}
	return nil
}

// keyOf maps a key report to the session's key set.
func keyOf(k tea.KeyMsg) (input.Key, bool) {
	switch k.Type {
	case tea.KeyEsc:
		return input.KeyEscape, true
	case tea.KeySpace:
		return input.KeySpace, true
	case tea.KeyRunes:
		if len(k.Runes) != 1 {
			return input.KeyUnknown, false
		}
		switch k.Runes[0] {
		case ' ':
			return input.KeySpace, true
		case 'c', 'C':
			return input.KeyC, true
		case 'f', 'F':
			return input.KeyF, true
		case 'h', 'H':
			return input.KeyH, true
		case 'n', 'N':
			return input.KeyN, true
		case 'r', 'R':
			return input.KeyR, true
		}
	}
	return input.KeyUnknown, false
}
