//go:build !ebiten

package ui

// Overlay is a headless placeholder so non-GUI builds compile.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay(int, int) *Overlay { return &Overlay{} }

// Update is a no-op in the headless build.
func (o *Overlay) Update() {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any, int) {}
