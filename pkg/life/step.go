package life

// Step advances g by one generation under Conway's rules and returns it.
//
// Every cell is classified against the pre-step grid before any mutation is
// applied: an in-place update during the scan would change the neighbor
// counts seen by cells visited later in the same pass. The kill and spawn
// sets are disjoint (a cell is either alive and dying, or dead and spawning),
// so the order they are applied in does not matter.
func Step(g *Grid) *Grid {
	var kills, spawns []Coord
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := Coord{X: x, Y: y}
			n := g.CountLivingNeighbors(c)
			switch {
			case g.IsAlive(c) && n < 2:
				kills = append(kills, c) // underpopulation
			case g.IsAlive(c) && n > 3:
				kills = append(kills, c) // overpopulation
			case !g.IsAlive(c) && n == 3:
				spawns = append(spawns, c)
			}
		}
	}
	for _, c := range kills {
		g.Kill(c)
	}
	g.Spawn(spawns...)
	return g
}
