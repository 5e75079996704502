// Package session owns the mutable state shared by a host loop: the live
// cells, the viewport and the pause flag.
package session

import (
	"image/color"
	"strconv"

	"mad-life/internal/core"
	"mad-life/internal/life"
	"mad-life/internal/view"
)

// Seeder rebuilds a population from a seed.
type Seeder func(seed int64) core.CellSet

// Options configures a new State.
type Options struct {
	View       view.Viewport
	Background color.RGBA
	Foreground color.RGBA
	Paused     bool
	Cells      core.CellSet
	// Seed is the seed Cells was built from; Reseed continues from it.
	Seed    int64
	Seeder  Seeder
	History int
}

// State is the single mutable aggregate driven by one host loop. It is not
// safe for concurrent use.
type State struct {
	View       view.Viewport
	Cells      core.CellSet
	Background color.RGBA
	Foreground color.RGBA
	Paused     bool

	Generation int
	history    *History
	seed       int64
	seeder     Seeder
}

// New constructs a State from the options.
func New(opts Options) *State {
	cells := opts.Cells
	if cells == nil {
		cells = core.NewCellSet()
	}
	s := &State{
		View:       opts.View,
		Cells:      cells,
		Background: opts.Background,
		Foreground: opts.Foreground,
		Paused:     opts.Paused,
		history:    NewHistory(opts.History),
		seed:       opts.Seed,
		seeder:     opts.Seeder,
	}
	s.history.Push(cells.Len())
	return s
}

// InsertCell makes the cell under the pixel (sx, sy) alive.
func (s *State) InsertCell(sx, sy int) {
	s.Cells.Add(s.View.CellAt(sx, sy))
}

// RemoveCell kills the cell under the pixel (sx, sy).
func (s *State) RemoveCell(sx, sy int) {
	s.Cells.Remove(s.View.CellAt(sx, sy))
}

// Reset kills every cell and restarts the generation count.
func (s *State) Reset() {
	s.Cells = core.NewCellSet()
	s.Generation = 0
	s.history.Clear()
	s.history.Push(0)
}

// TogglePause flips the pause flag.
func (s *State) TogglePause() {
	s.Paused = !s.Paused
}

// Update advances one generation unless paused.
func (s *State) Update() {
	if s.Paused {
		return
	}
	s.advance()
}

// StepOnce advances exactly one generation regardless of the pause flag.
func (s *State) StepOnce() {
	s.advance()
}

// Reseed replaces the population with the next seed's. It reports false when
// no seeder is configured.
func (s *State) Reseed() bool {
	if s.seeder == nil {
		return false
	}
	s.seed++
	s.Cells = s.seeder(s.seed)
	s.Generation = 0
	s.history.Clear()
	s.history.Push(s.Cells.Len())
	return true
}

// Seed returns the seed of the current population.
func (s *State) Seed() int64 { return s.seed }

// History returns the recorded population samples, oldest first.
func (s *State) History() []float64 { return s.history.Values() }

func (s *State) advance() {
	s.Cells = life.Advance(s.Cells)
	s.Generation++
	s.history.Push(s.Cells.Len())
}

// Snapshot reports the values a host displays alongside the grid.
func (s *State) Snapshot() core.ParameterSnapshot {
	mode := "running"
	if s.Paused {
		mode = "paused"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(s.Generation)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(s.Cells.Len())},
				{Key: "mode", Label: "Mode", Value: mode},
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				{Key: "scale", Label: "Scale", Value: strconv.Itoa(s.View.Scale)},
				{Key: "translate", Label: "Origin", Value: strconv.Itoa(s.View.TX) + "," + strconv.Itoa(s.View.TY)},
			},
		},
	}}
}
