// Package view maps between screen pixels and lattice cells.
//
// Both directions use floor division so that every pixel belongs to exactly
// one cell, including pixels left of or above the world origin.
package view

import "mad-life/internal/core"

const (
	// MinScale is the smallest cell edge in pixels.
	MinScale = 1
	// MaxScale is the largest cell edge in pixels.
	MaxScale = 8
)

// Viewport holds the zoom level and pan offset of the display.
type Viewport struct {
	// Scale is the cell edge length in pixels.
	Scale int
	// TX and TY locate the world origin on screen.
	TX, TY int
}

// New returns a viewport with the provided scale (clamped) and translation.
func New(scale, tx, ty int) Viewport {
	return Viewport{Scale: clampScale(scale), TX: tx, TY: ty}
}

// ScreenToWorld returns the cell under the pixel (sx, sy).
func (v Viewport) ScreenToWorld(sx, sy int) (int, int) {
	s := v.scale()
	return floorDiv(sx-v.TX, s), floorDiv(sy-v.TY, s)
}

// WorldToScreen returns the top-left pixel of the cell (wx, wy).
func (v Viewport) WorldToScreen(wx, wy int) (int, int) {
	s := v.scale()
	return wx*s + v.TX, wy*s + v.TY
}

// CellAt is ScreenToWorld returning a core.Cell.
func (v Viewport) CellAt(sx, sy int) core.Cell {
	x, y := v.ScreenToWorld(sx, sy)
	return core.Cell{X: x, Y: y}
}

// Pan moves the world origin by (dx, dy) pixels. Panning is unbounded.
func (v *Viewport) Pan(dx, dy int) {
	v.TX += dx
	v.TY += dy
}

// ZoomBy changes the scale by delta and clamps it to [MinScale, MaxScale].
func (v *Viewport) ZoomBy(delta int) {
	v.Scale = clampScale(v.scale() + delta)
}

// ZoomTo sets the scale and clamps it to [MinScale, MaxScale].
func (v *Viewport) ZoomTo(scale int) {
	v.Scale = clampScale(scale)
}

// VisibleCells returns the cells that overlap a w*h pixel drawable anchored at
// the screen origin. Partially visible cells on the edges are included.
func (v Viewport) VisibleCells(w, h int) core.Rect {
	if w <= 0 || h <= 0 {
		return core.Rect{}
	}
	minX, minY := v.ScreenToWorld(0, 0)
	maxX, maxY := v.ScreenToWorld(w-1, h-1)
	return core.Rect{
		Min: core.Cell{X: minX, Y: minY},
		Max: core.Cell{X: maxX + 1, Y: maxY + 1},
	}
}

// scale guards against a zero-value Viewport being used directly.
func (v Viewport) scale() int {
	return clampScale(v.Scale)
}

func clampScale(s int) int {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// floorDiv divides rounding towards negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
