package core

import "sort"

// Cell identifies one square of the unbounded lattice.
type Cell struct {
	X, Y int
}

// Add returns c shifted by d.
func (c Cell) Add(d Cell) Cell { return Cell{X: c.X + d.X, Y: c.Y + d.Y} }

// Size describes the dimensions of a drawable area in pixels.
type Size struct {
	W int
	H int
}

// Rect is a half-open rectangle of cells: Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Cell
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of the rectangle.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.Min.X && c.X < r.Max.X && c.Y >= r.Min.Y && c.Y < r.Max.Y
}

// CellSet holds the live cells. Absence means dead.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the provided cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add marks c alive. Adding an existing cell is a no-op.
func (s CellSet) Add(c Cell) { s[c] = struct{}{} }

// Remove marks c dead. Removing an absent cell is a no-op.
func (s CellSet) Remove(c Cell) { delete(s, c) }

// Has reports whether c is alive.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the population.
func (s CellSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells.
func (s CellSet) Equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if _, ok := o[c]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the cells ordered by row, then column.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Bounds returns the smallest rectangle containing every live cell. The
// second result is false for an empty set.
func (s CellSet) Bounds() (Rect, bool) {
	var r Rect
	first := true
	for c := range s {
		if first {
			r = Rect{Min: c, Max: Cell{X: c.X + 1, Y: c.Y + 1}}
			first = false
			continue
		}
		if c.X < r.Min.X {
			r.Min.X = c.X
		}
		if c.Y < r.Min.Y {
			r.Min.Y = c.Y
		}
		if c.X >= r.Max.X {
			r.Max.X = c.X + 1
		}
		if c.Y >= r.Max.Y {
			r.Max.Y = c.Y + 1
		}
	}
	return r, !first
}

// Translate returns a copy of the set shifted by d.
func (s CellSet) Translate(d Cell) CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c.Add(d)] = struct{}{}
	}
	return out
}
