package life

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension reports a non-positive width or height at construction.
var ErrInvalidDimension = errors.New("life: grid dimensions must be positive")

// Coord identifies one cell on the grid.
type Coord struct {
	X int
	Y int
}

// Grid is a bounded rectangular field of cells, each alive or dead.
// Coordinates outside [0,width) x [0,height) are caller programming errors
// and make the accessors panic; the field never wraps or clamps.
type Grid struct {
	w, h  int
	cells []uint8
}

// New returns a Grid with every cell dead except the listed coordinates.
// Listed coordinates must be in bounds.
func New(width, height int, alive ...Coord) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	g := &Grid{w: width, h: height, cells: make([]uint8, width*height)}
	g.Spawn(alive...)
	return g, nil
}

// Width returns the fixed horizontal cell count.
func (g *Grid) Width() int { return g.w }

// Height returns the fixed vertical cell count.
func (g *Grid) Height() int { return g.h }

// Cells exposes the row-major backing buffer for rendering. Callers must
// treat it as read-only; mutations go through Spawn and Kill.
func (g *Grid) Cells() []uint8 { return g.cells }

// InBounds reports whether c addresses a cell on this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) mustInBounds(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("life: coordinate (%d,%d) out of bounds for %dx%d grid", c.X, c.Y, g.w, g.h))
	}
}

func (g *Grid) index(c Coord) int {
	g.mustInBounds(c)
	return c.Y*g.w + c.X
}

// IsAlive reports the state of the cell at c.
func (g *Grid) IsAlive(c Coord) bool {
	return g.cells[g.index(c)] == 1
}

// Spawn marks the given cells alive. Spawning an already-alive cell is a no-op.
func (g *Grid) Spawn(coords ...Coord) {
	for _, c := range coords {
		g.cells[g.index(c)] = 1
	}
}

// Kill marks the cell at c dead. Killing an already-dead cell is a no-op.
func (g *Grid) Kill(c Coord) {
	g.cells[g.index(c)] = 0
}

// CountLivingNeighbors counts alive cells among the up-to-eight adjacent
// positions. Positions beyond the grid edge do not exist and are skipped, so
// edge cells see at most 5 neighbors and corner cells at most 3.
func (g *Grid) CountLivingNeighbors(c Coord) int {
	g.mustInBounds(c)
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			if !g.InBounds(n) {
				continue
			}
			if g.cells[n.Y*g.w+n.X] == 1 {
				count++
			}
		}
	}
	return count
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	total := 0
	for _, c := range g.cells {
		total += int(c)
	}
	return total
}
