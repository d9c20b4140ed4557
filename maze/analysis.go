package maze

// Stats summarizes the open-edge graph of a grid.
type Stats struct {
	Cells      int // Number of cells
	OpenEdges  int // Interior edges open on both sides
	Components int // Connected components of the open-edge graph
}

// Connected reports whether every cell is reachable from every other cell.
func (s Stats) Connected() bool {
	return s.Components == 1
}

// Cycles returns the number of independent cycles (the cyclomatic number).
func (s Stats) Cycles() int {
	return s.OpenEdges - s.Cells + s.Components
}

// Perfect reports whether the open edges form a spanning tree.
func (s Stats) Perfect() bool {
	return s.Connected() && s.OpenEdges == s.Cells-1
}

// Analyze counts open edges and connected components. An edge is open only
// when neither of its cells is walled on the shared side.
func Analyze(g *Grid) Stats {
	stats := Stats{Cells: g.Size()}

	open := func(p Position, d Direction) bool {
		n := p.Step(d)
		return g.InBound(n) && !g.HasWall(p, d) && !g.HasWall(n, d.Opposite())
	}

	for i := range g.cells {
		p := g.position(i)
		for _, d := range [2]Direction{East, South} {
			if open(p, d) {
				stats.OpenEdges++
			}
		}
	}

	seen := make([]bool, g.Size())
	queue := make([]int, 0, g.Size())
	for root := range g.cells {
		if seen[root] {
			continue
		}
		stats.Components++
		seen[root] = true
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			p := g.position(queue[head])
			for _, d := range Directions {
				if !open(p, d) {
					continue
				}
				if n := g.index(p.Step(d)); !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
	}

	return stats
}
