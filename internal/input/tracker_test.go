package input

import (
	"reflect"
	"testing"
)

func TestTrackerEvents(t *testing.T) {
	var tr Tracker

	tests := []struct {
		name   string
		sample Sample
		want   []Event
	}{
		{
			"first frame never drags",
			Sample{X: 10, Y: 10, Held: HoldingButtons(ButtonLeft)},
			nil,
		},
		{
			"press and key",
			Sample{X: 10, Y: 10, Keys: []Key{KeySpace}, Pressed: []Button{ButtonLeft}, Held: HoldingButtons(ButtonLeft)},
			[]Event{KeyPress{Key: KeySpace}, PointerDown{Button: ButtonLeft, X: 10, Y: 10}},
		},
		{
			"drag carries delta",
			Sample{X: 14, Y: 7, Held: HoldingButtons(ButtonMiddle)},
			[]Event{PointerDrag{Held: HoldingButtons(ButtonMiddle), X: 14, Y: 7, DX: 4, DY: -3}},
		},
		{
			"motion without buttons",
			Sample{X: 20, Y: 20},
			nil,
		},
		{
			"held without motion",
			Sample{X: 20, Y: 20, Held: HoldingButtons(ButtonRight)},
			nil,
		},
		{
			"wheel collapses to one step",
			Sample{X: 20, Y: 20, WheelY: 2.5},
			[]Event{Scroll{DY: 1}},
		},
		{
			"negative wheel",
			Sample{X: 20, Y: 20, WheelY: -0.1},
			[]Event{Scroll{DY: -1}},
		},
		{
			"close request first",
			Sample{X: 20, Y: 20, CloseRequested: true, Keys: []Key{KeyC}},
			[]Event{Quit{}, KeyPress{Key: KeyC}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Events(tt.sample)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Events() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestButtons(t *testing.T) {
	bs := HoldingButtons(ButtonLeft, ButtonRight)
	if !bs.Has(ButtonLeft) || !bs.Has(ButtonRight) || bs.Has(ButtonMiddle) {
		t.Fatalf("unexpected set %b", bs)
	}
	if bs.Has(ButtonNone) || HoldingButtons(ButtonNone) != 0 {
		t.Fatal("ButtonNone must never be held")
	}
}
