package session

import "mad-life/internal/input"

// Action is work the session asks its host to perform.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleFullscreen
	ActionToggleHUD
)

// Apply reacts to one input event.
func (s *State) Apply(ev input.Event) Action {
	switch e := ev.(type) {
	case input.Quit:
		return ActionQuit
	case input.KeyPress:
		return s.applyKey(e.Key)
	case input.PointerDown:
		switch e.Button {
		case input.ButtonLeft:
			s.InsertCell(e.X, e.Y)
		case input.ButtonRight:
			s.RemoveCell(e.X, e.Y)
		}
	case input.PointerDrag:
		switch {
		case e.Held.Has(input.ButtonLeft):
			s.InsertCell(e.X, e.Y)
		case e.Held.Has(input.ButtonRight):
			s.RemoveCell(e.X, e.Y)
		case e.Held.Has(input.ButtonMiddle):
			s.View.Pan(e.DX, e.DY)
		}
	case input.Scroll:
		switch {
		case e.DY > 0:
			s.View.ZoomBy(1)
		case e.DY < 0:
			s.View.ZoomBy(-1)
		}
	}
	return ActionNone
}

func (s *State) applyKey(k input.Key) Action {
	switch k {
	case input.KeyEscape:
		return ActionQuit
	case input.KeySpace:
		s.TogglePause()
	case input.KeyC:
		s.Reset()
	case input.KeyF:
		return ActionToggleFullscreen
	case input.KeyH:
		return ActionToggleHUD
	case input.KeyN:
		s.StepOnce()
	case input.KeyR:
		s.Reseed()
	}
	return ActionNone
}

// ApplyAll applies the events in order and stops at the first quit request.
// Host actions are collected for the caller.
func (s *State) ApplyAll(events []input.Event) (actions []Action, quit bool) {
	for _, ev := range events {
		a := s.Apply(ev)
		switch a {
		case ActionNone:
		case ActionQuit:
			return actions, true
		default:
			actions = append(actions, a)
		}
	}
	return actions, false
}
