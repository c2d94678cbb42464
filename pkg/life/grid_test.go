package life

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}}
	for _, c := range cases {
		if _, err := New(c[0], c[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d, %d) error = %v, want ErrInvalidDimension", c[0], c[1], err)
		}
	}
}

func TestNewStartsDeadExceptInitialCells(t *testing.T) {
	g, err := New(4, 3, Coord{X: 1, Y: 2}, Coord{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := (x == 1 && y == 2) || (x == 0 && y == 0)
			if got := g.IsAlive(Coord{X: x, Y: y}); got != want {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestInBoundsAccessNeverPanics(t *testing.T) {
	g, _ := New(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			g.IsAlive(Coord{X: x, Y: y})
			g.CountLivingNeighbors(Coord{X: x, Y: y})
		}
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	g, _ := New(3, 3)
	bad := []Coord{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 99, Y: 99}}
	ops := map[string]func(Coord){
		"IsAlive":              func(c Coord) { g.IsAlive(c) },
		"Spawn":                func(c Coord) { g.Spawn(c) },
		"Kill":                 func(c Coord) { g.Kill(c) },
		"CountLivingNeighbors": func(c Coord) { g.CountLivingNeighbors(c) },
	}
	for name, op := range ops {
		for _, c := range bad {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("%s(%v) did not panic", name, c)
					}
				}()
				op(c)
			}()
		}
	}
}

func TestSpawnAndKillAreIdempotent(t *testing.T) {
	g, _ := New(3, 3)
	c := Coord{X: 1, Y: 1}

	g.Spawn(c)
	g.Spawn(c)
	if !g.IsAlive(c) {
		t.Fatalf("cell dead after double spawn")
	}
	if pop := g.Population(); pop != 1 {
		t.Fatalf("population = %d after double spawn, want 1", pop)
	}

	g.Kill(c)
	g.Kill(c)
	if g.IsAlive(c) {
		t.Fatalf("cell alive after double kill")
	}
	if pop := g.Population(); pop != 0 {
		t.Fatalf("population = %d after double kill, want 0", pop)
	}
}

func TestSpawnAcceptsMultipleCoordinates(t *testing.T) {
	g, _ := New(4, 4)
	g.Spawn(Coord{X: 0, Y: 0}, Coord{X: 3, Y: 3}, Coord{X: 1, Y: 2})
	if pop := g.Population(); pop != 3 {
		t.Fatalf("population = %d, want 3", pop)
	}
}

func TestCornerAndEdgeNeighborCounts(t *testing.T) {
	// Fill everything so each count equals the number of in-bounds neighbor
	// positions.
	g, _ := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Spawn(Coord{X: x, Y: y})
		}
	}
	cases := []struct {
		c    Coord
		want int
	}{
		{Coord{X: 0, Y: 0}, 3},
		{Coord{X: 3, Y: 0}, 3},
		{Coord{X: 0, Y: 3}, 3},
		{Coord{X: 3, Y: 3}, 3},
		{Coord{X: 1, Y: 0}, 5},
		{Coord{X: 0, Y: 2}, 5},
		{Coord{X: 1, Y: 1}, 8},
	}
	for _, tc := range cases {
		if got := g.CountLivingNeighbors(tc.c); got != tc.want {
			t.Fatalf("CountLivingNeighbors(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestNoWraparoundInNeighborCounts(t *testing.T) {
	// A cell on the right edge must not see cells on the left edge.
	g, _ := New(5, 5, Coord{X: 0, Y: 2})
	if got := g.CountLivingNeighbors(Coord{X: 4, Y: 2}); got != 0 {
		t.Fatalf("right-edge cell counted %d neighbors across the gap, want 0", got)
	}
}
