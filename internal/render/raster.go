// Package render turns the live-cell set into pixels for a host.
package render

import (
	"mad-life/internal/core"
	"mad-life/internal/view"
)

// Raster stores one byte per cell for a rectangular window of the lattice in
// row-major order. A non-zero value marks a live cell.
type Raster struct {
	Origin core.Cell
	W, H   int
	data   []uint8
}

// NewRaster allocates a raster covering the rectangle r.
func NewRaster(r core.Rect) *Raster {
	ras := &Raster{}
	ras.Resize(r)
	return ras
}

// Resize moves the raster to cover r, reusing the buffer when it is large
// enough, and clears it.
func (r *Raster) Resize(rect core.Rect) {
	w, h := rect.Dx(), rect.Dy()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.Origin = rect.Min
	r.W, r.H = w, h
	if cap(r.data) < w*h {
		r.data = make([]uint8, w*h)
	} else {
		r.data = r.data[:w*h]
	}
	r.Clear()
}

// Bounds returns the covered rectangle.
func (r *Raster) Bounds() core.Rect {
	return core.Rect{Min: r.Origin, Max: core.Cell{X: r.Origin.X + r.W, Y: r.Origin.Y + r.H}}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (r *Raster) Cells() []uint8 { return r.data }

// At returns the value of the world cell c, or 0 outside the raster.
func (r *Raster) At(c core.Cell) uint8 {
	if !r.Bounds().Contains(c) {
		return 0
	}
	return r.data[r.Index(c)]
}

// Index returns the linear slice index for the world cell c.
func (r *Raster) Index(c core.Cell) int { return (c.Y-r.Origin.Y)*r.W + (c.X - r.Origin.X) }

// Clear fills the raster with zeros.
func (r *Raster) Clear() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// Fill marks every live cell inside the raster and returns how many were
// visible.
func (r *Raster) Fill(cells core.CellSet) int {
	r.Clear()
	b := r.Bounds()
	visible := 0
	for c := range cells {
		if !b.Contains(c) {
			continue
		}
		r.data[r.Index(c)] = 1
		visible++
	}
	return visible
}

// Frame describes where a host should draw a raster so that every cell lands
// on WorldToScreen(cell).
type Frame struct {
	Raster *Raster
	// X, Y is the screen position of the raster's origin cell.
	X, Y  int
	Scale int
	// Visible is the number of live cells inside the raster.
	Visible int
}

// Rasterize fills r with the live cells visible in a w*h pixel drawable and
// reports where to draw it.
func Rasterize(r *Raster, v view.Viewport, cells core.CellSet, w, h int) Frame {
	r.Resize(v.VisibleCells(w, h))
	n := r.Fill(cells)
	x, y := v.WorldToScreen(r.Origin.X, r.Origin.Y)
	return Frame{Raster: r, X: x, Y: y, Scale: v.Scale, Visible: n}
}
