//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"mad-life/internal/core"
)

// HUD renders the status panel in the top-left corner of the window.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
	lines   []string
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update caches the lines to draw for the current frame.
func (h *HUD) Update(snap core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.lines = append(h.lines[:0], snap.Lines()...)
	h.lines = append(h.lines, "", helpText)
}

// Draw paints the panel over the grid.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13

	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(h.lines) * lineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height+2*panelPadding))
	op.ColorScale.ScaleWithColor(panelColor)
	screen.DrawImage(h.pixel, op)

	for i, line := range h.lines {
		y := panelPadding + i*lineHeight + lineBaseline
		text.Draw(screen, line, face, panelPadding, y, textColor)
	}
}

const helpText = "space run/pause  n step  c clear  r reseed  f fullscreen  h hide"

const (
	panelPadding = 8
	lineHeight   = 15
	lineBaseline = 11
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 180}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)
