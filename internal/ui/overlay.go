//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minLineScale is the cell pixel size below which grid lines would swallow
// the cells themselves.
const minLineScale = 4

// Overlay draws optional cell boundary lines on top of the simulation view,
// which makes it easier to aim clicks at individual cells.
type Overlay struct {
	w, h      int
	showLines bool
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay for a grid of w x h cells.
func NewOverlay(w, h int) *Overlay {
	o := &Overlay{w: w, h: h}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the grid-lines toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
}

// Draw paints cell boundary lines when enabled and the scale leaves room.
func (o *Overlay) Draw(screen *ebiten.Image, scale int) {
	if o == nil || !o.showLines || scale < minLineScale {
		return
	}
	lineColor := color.RGBA{R: 48, G: 48, B: 56, A: 255}
	for x := 1; x < o.w; x++ {
		o.drawLine(screen, float64(x*scale), 0, 1, float64(o.h*scale), lineColor)
	}
	for y := 1; y < o.h; y++ {
		o.drawLine(screen, 0, float64(y*scale), float64(o.w*scale), 1, lineColor)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
