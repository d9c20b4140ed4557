package maze

import (
	"fmt"
)

const (
	// loopCellRatio is the number of cells per extra opening in an imperfect maze.
	loopCellRatio = 20
)

// GenerateConfig holds the parameters of one generation run.
type GenerateConfig struct {
	Width   int      // Width of the maze (number of columns)
	Height  int      // Height of the maze (number of rows)
	Start   Position // Cell the spanning tree grows from
	Perfect bool     // Whether to keep exactly one path between any two cells
	Loops   int      // Extra openings for imperfect mazes; 0 selects max(1, cells/20)
}

// Generate builds a connected wall layout with a randomized depth-first
// spanning tree grown from cfg.Start. Imperfect mazes then get extra openings.
// Every random choice goes through p, so a fixed pick sequence reproduces the grid.
func Generate(cfg GenerateConfig, p Picker) (*Grid, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil picker", ErrInvalidConfig)
	}
	if cfg.Loops < 0 {
		return nil, fmt.Errorf("%w: loops %d must not be negative", ErrInvalidConfig, cfg.Loops)
	}

	g, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if !g.InBound(cfg.Start) {
		return nil, fmt.Errorf("%w: start %s outside %dx%d", ErrInvalidConfig, cfg.Start, cfg.Width, cfg.Height)
	}

	if err := g.carveSpanningTree(cfg.Start, p); err != nil {
		return nil, err
	}

	if !cfg.Perfect {
		loops := cfg.Loops
		if loops == 0 {
			loops = max(1, g.Size()/loopCellRatio)
		}
		if err := g.carveLoops(loops, p); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// carveSpanningTree runs the recursive backtracker with an explicit stack of cell indices.
func (g *Grid) carveSpanningTree(start Position, p Picker) error {
	visited := make([]bool, g.Size())
	stack := make([]int, 0, g.Size())

	visited[g.index(start)] = true
	stack = append(stack, g.index(start))

	candidates := make([]Position, 0, len(Directions))
	for len(stack) > 0 {
		top := g.position(stack[len(stack)-1])

		candidates = candidates[:0]
		for _, n := range g.Neighbors(top) {
			if !visited[g.index(n)] {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next, err := pick(p, candidates)
		if err != nil {
			return err
		}
		if err := g.OpenWall(top, next); err != nil {
			return err
		}
		visited[g.index(next)] = true
		stack = append(stack, g.index(next))
	}

	return nil
}

// edge is an interior edge identified by its west or north cell and the side facing the other cell.
type edge struct {
	from Position
	side Direction
}

// carveLoops opens up to n still-walled interior edges chosen uniformly without replacement.
func (g *Grid) carveLoops(n int, p Picker) error {
	walled := g.walledInteriorEdges()
	n = min(n, len(walled))

	// Partial Fisher-Yates: the first n slots end up holding a uniform sample.
	for i := 0; i < n; i++ {
		j := i + p.Pick(len(walled)-i)
		if j < i || j >= len(walled) {
			return fmt.Errorf("%w: picker returned %d for %d candidates", ErrInvalidConfig, j-i, len(walled)-i)
		}
		walled[i], walled[j] = walled[j], walled[i]

		e := walled[i]
		if err := g.OpenWall(e.from, e.from.Step(e.side)); err != nil {
			return err
		}
	}

	return nil
}

// walledInteriorEdges lists interior edges that still carry a wall, in row-major order, East before South.
func (g *Grid) walledInteriorEdges() []edge {
	var result []edge
	for i := range g.cells {
		from := g.position(i)
		for _, side := range [2]Direction{East, South} {
			if g.InBound(from.Step(side)) && g.HasWall(from, side) {
				result = append(result, edge{from: from, side: side})
			}
		}
	}
	return result
}

func pick(p Picker, candidates []Position) (Position, error) {
	i := p.Pick(len(candidates))
	if i < 0 || i >= len(candidates) {
		return Position{}, fmt.Errorf("%w: picker returned %d for %d candidates", ErrInvalidConfig, i, len(candidates))
	}
	return candidates[i], nil
}
