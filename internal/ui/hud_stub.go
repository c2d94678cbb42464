//go:build !ebiten

package ui

import "lifegrid/internal/core"

// HUD is a headless placeholder so non-GUI builds compile.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD() *HUD { return &HUD{} }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, core.Stats) {}
