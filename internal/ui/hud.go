//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var hudTextColor = color.RGBA{R: 120, G: 220, B: 120, A: 255}

// HUD renders a one-line status readout in the top-left corner.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update handles the visibility toggle key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the status line for the provided snapshot.
func (h *HUD) Draw(screen *ebiten.Image, stats core.Stats) {
	if h == nil || !h.visible {
		return
	}
	state := "playing"
	if stats.Paused {
		state = "paused"
	}
	line := fmt.Sprintf("%s  gen %d  pop %d  %d tps  [%s]",
		stats.Pattern, stats.Generation, stats.Population, stats.TPS, state)
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, hudTextColor)
}
