// Package life implements Conway's Game of Life over an unbounded sparse
// lattice.
package life

import "mad-life/internal/core"

// neighborhood lists the eight offsets adjacent to a cell.
var neighborhood = [8]core.Cell{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// candidate accumulates what one generation step knows about a cell.
type candidate struct {
	neighbors int
	alive     bool
}

// Survives reports whether a cell is alive in the next generation:
// (alive && neighbors == 2) || neighbors == 3.
func Survives(neighbors int, alive bool) bool {
	return neighbors == 3 || (neighbors == 2 && alive)
}

// Advance computes the next generation of cells. The input is left untouched.
func Advance(cells core.CellSet) core.CellSet {
	candidates := make(map[core.Cell]candidate, len(cells)*9)
	for c := range cells {
		cand := candidates[c]
		cand.alive = true
		candidates[c] = cand

		for _, d := range neighborhood {
			n := c.Add(d)
			cand := candidates[n]
			cand.neighbors++
			candidates[n] = cand
		}
	}

	next := make(core.CellSet, len(cells))
	for c, cand := range candidates {
		if Survives(cand.neighbors, cand.alive) {
			next[c] = struct{}{}
		}
	}
	return next
}

// Step applies Advance n times. For n <= 0 it returns a copy of cells.
func Step(cells core.CellSet, n int) core.CellSet {
	if n <= 0 {
		return cells.Clone()
	}
	for i := 0; i < n; i++ {
		cells = Advance(cells)
	}
	return cells
}
