//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"mad-life/internal/core"
	"mad-life/internal/view"
)

// GridPainter draws the visible part of the lattice through a single image of
// one pixel per cell, scaled up on the GPU.
type GridPainter struct {
	raster *Raster
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates an empty painter; the image is sized on first use.
func NewGridPainter() *GridPainter {
	return &GridPainter{raster: NewRaster(core.Rect{})}
}

// Draw fills dst with the background and paints every visible live cell as a
// scale*scale square at its screen position. Cells are drawn with the
// transparent background so only live squares cover the fill.
func (gp *GridPainter) Draw(dst *ebiten.Image, v view.Viewport, cells core.CellSet, bg, fg color.Color) Frame {
	dst.Fill(bg)

	size := dst.Bounds().Size()
	frame := Rasterize(gp.raster, v, cells, size.X, size.Y)
	if frame.Visible == 0 || gp.raster.W == 0 || gp.raster.H == 0 {
		return frame
	}

	if gp.img == nil || gp.img.Bounds().Dx() != gp.raster.W || gp.img.Bounds().Dy() != gp.raster.H {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.img = ebiten.NewImage(gp.raster.W, gp.raster.H)
	}
	gp.buf = gp.raster.Pixels(gp.buf, fg, color.Transparent)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(frame.Scale), float64(frame.Scale))
	op.GeoM.Translate(float64(frame.X), float64(frame.Y))
	dst.DrawImage(gp.img, op)
	return frame
}
