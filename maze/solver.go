package maze

import (
	"fmt"
)

// searchState tracks where a solver run is in its lifecycle.
type searchState int

const (
	stateInit searchState = iota
	stateSearching
	stateFound
	stateUnreachable
)

// solver encapsulates the mutable state of one breadth-first search.
type solver struct {
	grid  *Grid
	entry int
	exit  int
	state searchState
	queue []int
	seen  []bool
	prev  []int       // predecessor cell index, valid when seen
	via   []Direction // step taken from prev to reach the cell
}

// Solve returns the shortest path from entry to exit, moving only through open
// sides. A cell's own mask decides whether a step leaves it. entry == exit
// yields an empty path.
func Solve(g *Grid, entry, exit Position) (Path, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrMalformedGrid)
	}
	for _, p := range [2]Position{entry, exit} {
		if !g.InBound(p) {
			return nil, fmt.Errorf("%w: %s outside %dx%d", ErrInvalidCoordinate, p, g.Width(), g.Height())
		}
	}

	s := &solver{
		grid:  g,
		entry: g.index(entry),
		exit:  g.index(exit),
		state: stateInit,
		queue: make([]int, 0, g.Size()),
		seen:  make([]bool, g.Size()),
		prev:  make([]int, g.Size()),
		via:   make([]Direction, g.Size()),
	}
	s.search()

	if s.state != stateFound {
		return nil, fmt.Errorf("%w: no open route from %s to %s", ErrUnreachableExit, entry, exit)
	}
	return s.path(), nil
}

func (s *solver) search() {
	s.state = stateSearching
	s.seen[s.entry] = true
	s.queue = append(s.queue, s.entry)

	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		if cur == s.exit {
			s.state = stateFound
			return
		}

		pos := s.grid.position(cur)
		for _, d := range Directions {
			if !s.grid.CanMove(pos, d) {
				continue
			}
			next := s.grid.index(pos.Step(d))
			if s.seen[next] {
				continue
			}
			s.seen[next] = true
			s.prev[next] = cur
			s.via[next] = d
			s.queue = append(s.queue, next)
		}
	}

	s.state = stateUnreachable
}

// path walks predecessors back from the exit and reverses the collected steps.
func (s *solver) path() Path {
	path := Path{}
	for cur := s.exit; cur != s.entry; cur = s.prev[cur] {
		path = append(path, s.via[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
