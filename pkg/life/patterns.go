package life

import "lifegrid/pkg/core"

// Seeder produces the initial alive coordinates for a grid of the given
// dimensions. Seeders must only emit in-bounds coordinates; deterministic
// seeders ignore the seed.
type Seeder func(width, height int, seed int64) []Coord

var patterns = map[string]Seeder{}

// RegisterPattern adds a named starting pattern to the registry.
func RegisterPattern(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	patterns[name] = s
}

// Patterns exposes the registry of available starting patterns.
func Patterns() map[string]Seeder {
	return patterns
}

// offset shifts a canonical shape so it lands fully inside the grid, as close
// to the requested origin as the bounds allow.
func offset(shape []Coord, ox, oy, w, h int) []Coord {
	maxX, maxY := 0, 0
	for _, c := range shape {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	if ox+maxX >= w {
		ox = w - 1 - maxX
	}
	if oy+maxY >= h {
		oy = h - 1 - maxY
	}
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	out := make([]Coord, len(shape))
	for i, c := range shape {
		out[i] = Coord{X: c.X + ox, Y: c.Y + oy}
	}
	return out
}

func init() {
	RegisterPattern("empty", func(w, h int, seed int64) []Coord {
		return nil
	})
	RegisterPattern("block", func(w, h int, seed int64) []Coord {
		shape := []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
		return offset(shape, w/2-1, h/2-1, w, h)
	})
	RegisterPattern("blinker", func(w, h int, seed int64) []Coord {
		shape := []Coord{{0, 0}, {1, 0}, {2, 0}}
		return offset(shape, w/2-1, h/2, w, h)
	})
	RegisterPattern("glider", func(w, h int, seed int64) []Coord {
		shape := []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
		return offset(shape, 1, 1, w, h)
	})
	RegisterPattern("soup", func(w, h int, seed int64) []Coord {
		rng := core.NewRNG(seed)
		var out []Coord
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Chance(0.25) {
					out = append(out, Coord{X: x, Y: y})
				}
			}
		}
		return out
	})
}
