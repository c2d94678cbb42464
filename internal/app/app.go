//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface: it owns the grid,
// drives the stepper off a fixed-rate clock, and translates input into direct
// grid mutations.
type Game struct {
	grid    *life.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	clock    *core.FixedStep
	playback *core.Playback

	pattern    string
	seeder     life.Seeder
	seed       int64
	scale      int
	generation int
	tickOnce   bool
}

// New constructs a Game around a freshly seeded grid.
func New(grid *life.Grid, pattern string, seeder life.Seeder, cfg *Config) *Game {
	return &Game{
		grid:     grid,
		painter:  render.NewGridPainter(grid, color.White, color.Black),
		hud:      ui.NewHUD(),
		overlay:  ui.NewOverlay(grid.Width(), grid.Height()),
		clock:    core.NewFixedStep(cfg.TPS),
		playback: core.NewPlayback(true),
		pattern:  pattern,
		seeder:   seeder,
		seed:     cfg.Seed,
		scale:    cfg.Scale,
	}
}

// Reset reseeds the grid from the configured pattern and rewinds the
// generation counter.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	fresh, err := life.New(g.grid.Width(), g.grid.Height(), g.seeder(g.grid.Width(), g.grid.Height(), seed)...)
	if err != nil {
		panic(err)
	}
	g.grid = fresh
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on clock ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.playback.Toggle() {
			g.clock.Rewind()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.clock.SetTPS(g.clock.TPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.clock.SetTPS(g.clock.TPS() - 1)
	}

	g.handleMouse()
	g.hud.Update()
	g.overlay.Update()

	if g.tickOnce || (g.playback.Playing() && g.clock.ShouldStep()) {
		life.Step(g.grid)
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// handleMouse toggles the cell under the cursor on left click. Clicks land
// on the grid image directly, so the cell is the pixel position divided by
// the scale; anything outside the field is ignored.
func (g *Game) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	px, py := ebiten.CursorPosition()
	c := life.Coord{X: px / g.scale, Y: py / g.scale}
	if !g.grid.InBounds(c) {
		return
	}
	if g.grid.IsAlive(c) {
		g.grid.Kill(c)
	} else {
		g.grid.Spawn(c)
	}
}

// Draw renders the current generation plus the overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Paint(screen, g.grid, g.scale)
	g.overlay.Draw(screen, g.scale)
	g.hud.Draw(screen, core.Stats{
		Pattern:    g.pattern,
		Generation: g.generation,
		Population: g.grid.Population(),
		TPS:        g.clock.TPS(),
		Paused:     !g.playback.Playing(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width() * g.scale, g.grid.Height() * g.scale
}
