//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter renders a life.Grid into an RGBA image, one pixel per cell,
// and draws it scaled onto the screen.
type GridPainter struct {
	w, h     int
	img      *ebiten.Image
	buf      []byte
	onColor  color.Color
	offColor color.Color
}

// NewGridPainter allocates a painter matching the grid's dimensions.
func NewGridPainter(g *life.Grid, on, off color.Color) *GridPainter {
	w, h := g.Width(), g.Height()
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), onColor: on, offColor: off}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Paint uploads the grid's current generation into the painter image and
// draws it so each cell covers scale x scale pixels.
func (gp *GridPainter) Paint(dst *ebiten.Image, g *life.Grid, scale int) {
	cells := g.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.onColor, gp.offColor)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// fillBinaryRGBA converts alive/dead cell data into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
