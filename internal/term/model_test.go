package term

import (
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mad-life/internal/core"
	"mad-life/internal/input"
	"mad-life/internal/session"
	"mad-life/internal/view"
)

func newTestModel() (*Model, *session.State) {
	state := session.New(session.Options{
		View:       view.New(2, 10, 5),
		Background: color.RGBA{B: 0xff, A: 0xff},
		Foreground: color.RGBA{R: 0xff, A: 0xff},
		Paused:     true,
		History:    16,
	})
	m := NewModel(state, Options{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m.View()
	return m, state
}

func press(b tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: b, Action: tea.MouseActionPress}
}

func motion(b tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: b, Action: tea.MouseActionMotion}
}

func TestLayout(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 30 {
		t.Fatalf("view has %d lines, want 30", got)
	}
	if m.gridHeight <= 0 || m.gridHeight >= 30 {
		t.Fatalf("grid height = %d", m.gridHeight)
	}
	if !strings.Contains(view, "population") || !strings.Contains(view, "Generation 0") {
		t.Fatal("chart caption or status missing")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	withoutChart := m.View()
	if strings.Contains(withoutChart, "population\n") || m.gridHeight != 29 {
		t.Fatalf("hiding the chart should leave only the status line, grid height = %d", m.gridHeight)
	}
}

func TestMouseEditing(t *testing.T) {
	m, state := newTestModel()

	m.Update(press(tea.MouseButtonLeft, 10, 5))
	m.Update(motion(tea.MouseButtonLeft, 12, 5))
	m.Update(motion(tea.MouseButtonLeft, 12, 5)) // no movement
	want := core.NewCellSet(core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0})
	if !state.Cells.Equal(want) {
		t.Fatalf("cells = %v, want %v", state.Cells.Sorted(), want.Sorted())
	}

	m.Update(press(tea.MouseButtonRight, 11, 6))
	if state.Cells.Has(core.Cell{X: 0, Y: 0}) {
		t.Fatal("right press should remove the cell")
	}

	// presses on the status bar are not edits
	m.Update(press(tea.MouseButtonLeft, 10, 29))
	if state.Cells.Len() != 1 {
		t.Fatalf("population = %d, want 1", state.Cells.Len())
	}
}

func TestMousePanAndZoom(t *testing.T) {
	m, state := newTestModel()

	m.Update(press(tea.MouseButtonMiddle, 20, 10))
	m.Update(motion(tea.MouseButtonMiddle, 23, 8))
	if state.View.TX != 13 || state.View.TY != 3 {
		t.Fatalf("translate = (%d,%d), want (13,3)", state.View.TX, state.View.TY)
	}
	if state.Cells.Len() != 0 {
		t.Fatal("middle button must not edit")
	}

	m.Update(press(tea.MouseButtonWheelUp, 0, 0))
	m.Update(press(tea.MouseButtonWheelUp, 0, 0))
	if state.View.Scale != 4 {
		t.Fatalf("scale = %d, want 4", state.View.Scale)
	}
	for i := 0; i < 10; i++ {
		m.Update(press(tea.MouseButtonWheelDown, 0, 0))
	}
	if state.View.Scale != view.MinScale {
		t.Fatalf("scale = %d, want %d", state.View.Scale, view.MinScale)
	}
}

func TestKeys(t *testing.T) {
	m, state := newTestModel()

	m.Update(press(tea.MouseButtonLeft, 10, 5))
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if state.Paused {
		t.Fatal("space should unpause")
	}
	m.Update(tickMsg{})
	if state.Generation != 1 || state.Cells.Len() != 0 {
		t.Fatalf("after tick gen=%d population=%d", state.Generation, state.Cells.Len())
	}

	m.Update(press(tea.MouseButtonLeft, 10, 5))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if state.Cells.Len() != 0 || state.Generation != 0 {
		t.Fatal("c should reset the board")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if cmd == nil || m.altScreen {
		t.Fatal("f should leave the alternate screen")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("escape should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("escape should produce a quit message")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should produce a quit message")
	}
}

func TestPausedTickDoesNotAdvance(t *testing.T) {
	m, state := newTestModel()
	m.Update(press(tea.MouseButtonLeft, 10, 5))
	for i := 0; i < 3; i++ {
		m.Update(tickMsg{})
	}
	if state.Generation != 0 || state.Cells.Len() != 1 {
		t.Fatalf("paused ticks changed state: gen=%d population=%d", state.Generation, state.Cells.Len())
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyEsc}, input.KeyEscape, true},
		{tea.KeyMsg{Type: tea.KeySpace}, input.KeySpace, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}}, input.KeyN, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, input.KeyR, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, input.KeyUnknown, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cf")}, input.KeyUnknown, false},
		{tea.KeyMsg{Type: tea.KeyTab}, input.KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := keyOf(tt.msg)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyOf(%v) = %v, %v; want %v, %v", tt.msg, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGridDrawsLiveCells(t *testing.T) {
	m, state := newTestModel()
	state.Cells.Add(core.Cell{X: 0, Y: 0})
	out := m.View()
	lines := strings.Split(out, "\n")
	// cell (0,0) covers pixels x 10..11 on rows 5..6
	for _, row := range []int{5, 6} {
		if !strings.Contains(lines[row], liveGlyph+liveGlyph) {
			t.Errorf("row %d missing live glyphs: %q", row, lines[row])
		}
	}
	if strings.Contains(lines[4], liveGlyph) {
		t.Errorf("row 4 should be empty: %q", lines[4])
	}
}
