//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seeder, ok := life.Patterns()[cfg.Pattern]
	if !ok {
		log.Fatalf("unknown pattern %q", cfg.Pattern)
	}

	grid, err := life.New(cfg.Width, cfg.Height, seeder(cfg.Width, cfg.Height, cfg.Seed)...)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(grid, cfg.Pattern, seeder, cfg)

	ebiten.SetWindowTitle("lifegrid — " + cfg.Pattern)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
