// Package pattern provides named seed populations for the live-cell set.
package pattern

import (
	"fmt"
	"sort"

	"mad-life/internal/core"
)

// Params controls the generated population. Procedural patterns fill a
// Width*Height cell region centred on the world origin; fixed shapes are
// centred on the origin and ignore the region.
type Params struct {
	Seed    int64
	Width   int
	Height  int
	Density float64
}

// DefaultParams returns the parameters used when none are configured.
func DefaultParams() Params {
	return Params{Seed: 42, Width: 120, Height: 80, Density: 0.3}
}

// Factory builds a population.
type Factory func(p Params) core.CellSet

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownPattern, name)
	}
	return f, nil
}

// Build looks up name and runs its factory.
func Build(name string, p Params) (core.CellSet, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(p), nil
}

// Names lists the registered patterns in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromRows parses a picture where '#' or 'O' marks a live cell, then centres
// it on the origin.
func FromRows(rows ...string) core.CellSet {
	s := core.NewCellSet()
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' || ch == 'O' {
				s.Add(core.Cell{X: x, Y: y})
			}
		}
	}
	return Centre(s)
}

// Centre shifts the set so its bounding box is centred on the origin.
func Centre(s core.CellSet) core.CellSet {
	b, ok := s.Bounds()
	if !ok {
		return s
	}
	return s.Translate(core.Cell{X: -(b.Min.X + b.Dx()/2), Y: -(b.Min.Y + b.Dy()/2)})
}

func fixed(rows ...string) Factory {
	return func(Params) core.CellSet { return FromRows(rows...) }
}

func init() {
	Register("empty", func(Params) core.CellSet { return core.NewCellSet() })
	Register("block", fixed(
		"##",
		"##",
	))
	Register("blinker", fixed(
		"#",
		"#",
		"#",
	))
	Register("glider", fixed(
		".#.",
		"..#",
		"###",
	))
	Register("r-pentomino", fixed(
		".##",
		"##.",
		".#.",
	))
	Register("acorn", fixed(
		".#.....",
		"...#...",
		"##..###",
	))
	Register("gosper-gun", fixed(
		"........................#...........",
		"......................#.#...........",
		"............##......##............##",
		"...........#...#....##............##",
		"##........#.....#...##..............",
		"##........#...#.##....#.#...........",
		"..........#.....#.......#...........",
		"...........#...#....................",
		"............##......................",
	))
	Register("random", Random)
	Register("noise", Noise)
}
