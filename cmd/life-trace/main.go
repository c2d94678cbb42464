// Command life-trace steps a starting pattern for a fixed number of
// generations and prints each one as ASCII art. It exercises the engine
// without a display, which is handy for eyeballing rule changes.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"lifegrid/pkg/life"
)

func main() {
	width := flag.Int("width", 20, "grid width in cells")
	height := flag.Int("height", 12, "grid height in cells")
	pattern := flag.String("pattern", "glider", "starting pattern name")
	steps := flag.Int("steps", 8, "generations to simulate")
	seed := flag.Int64("seed", 42, "seed for randomized patterns")
	flag.Parse()

	seeder, ok := life.Patterns()[*pattern]
	if !ok {
		log.Fatalf("unknown pattern %q (have: %s)", *pattern, strings.Join(patternNames(), ", "))
	}

	grid, err := life.New(*width, *height, seeder(*width, *height, *seed)...)
	if err != nil {
		log.Fatal(err)
	}

	display(0, grid)
	for gen := 1; gen <= *steps; gen++ {
		life.Step(grid)
		display(gen, grid)
	}
}

func display(gen int, g *life.Grid) {
	fmt.Printf("gen %d  pop %d\n", gen, g.Population())
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsAlive(life.Coord{X: x, Y: y}) {
				b.WriteString("##")
			} else {
				b.WriteString("..")
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	fmt.Println()
}

func patternNames() []string {
	names := make([]string, 0, len(life.Patterns()))
	for name := range life.Patterns() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
