package maze

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of steps from one cell to another.
type Path []Direction

// String renders the path as direction letters, e.g. "ESSW".
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, d := range p {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// ParsePath parses a string of N/E/S/W letters.
func ParsePath(s string) (Path, error) {
	path := make(Path, 0, len(s))
	for i, r := range s {
		d, err := ParseDirection(r)
		if err != nil {
			return nil, fmt.Errorf("%w at step %d", err, i)
		}
		path = append(path, d)
	}
	return path, nil
}

// Cells returns every cell the path visits, starting with from.
func (p Path) Cells(from Position) []Position {
	cells := make([]Position, 0, len(p)+1)
	cells = append(cells, from)
	for _, d := range p {
		from = from.Step(d)
		cells = append(cells, from)
	}
	return cells
}

// Follow walks the path through g from the given cell and returns where it ends.
// It fails on the first step that leaves the grid or crosses a wall.
func (p Path) Follow(g *Grid, from Position) (Position, error) {
	if !g.InBound(from) {
		return from, fmt.Errorf("%w: %s outside %dx%d", ErrInvalidCoordinate, from, g.Width(), g.Height())
	}
	for i, d := range p {
		if !g.CanMove(from, d) {
			return from, fmt.Errorf("%w: step %d (%s) from %s is blocked", ErrInvalidPath, i, d, from)
		}
		from = from.Step(d)
	}
	return from, nil
}
