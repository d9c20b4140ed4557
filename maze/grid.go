package maze

import (
	"fmt"
)

// Grid is a rectangular array of cells, each holding a wall mask.
// Cells are stored row-major. Mutations only ever clear the wall pair shared
// by two in-bound neighbors, so boundary walls stay closed and both sides of
// an edge always agree.
type Grid struct {
	width  int
	height int
	cells  []Walls
}

// NewGrid creates a grid of the given dimensions with every wall present.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, width, height)
	}

	cells := make([]Walls, width*height)
	for i := range cells {
		cells[i] = AllWalls
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBound reports whether p lies inside the grid.
func (g *Grid) InBound(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

func (g *Grid) position(i int) Position {
	return Position{X: i % g.width, Y: i / g.width}
}

// Walls returns the wall mask of the cell at p. Out-of-bound cells are fully walled.
func (g *Grid) Walls(p Position) Walls {
	if !g.InBound(p) {
		return AllWalls
	}
	return g.cells[g.index(p)]
}

// HasWall reports whether the cell at p is walled on side d.
func (g *Grid) HasWall(p Position, d Direction) bool {
	return g.Walls(p).Has(d)
}

// CanMove reports whether a step from p towards d stays in the grid and
// crosses an open side of p.
func (g *Grid) CanMove(p Position, d Direction) bool {
	return g.InBound(p) && g.InBound(p.Step(d)) && !g.HasWall(p, d)
}

// OpenWall clears the wall between two adjacent cells on both sides.
func (g *Grid) OpenWall(a, b Position) error {
	if !g.InBound(a) || !g.InBound(b) {
		return fmt.Errorf("%w: %s and %s must both lie in %dx%d", ErrInvalidAdjacency, a, b, g.width, g.height)
	}

	d, ok := a.DirectionTo(b)
	if !ok {
		return fmt.Errorf("%w: %s and %s", ErrInvalidAdjacency, a, b)
	}

	ia, ib := g.index(a), g.index(b)
	g.cells[ia] = g.cells[ia].Without(d)
	g.cells[ib] = g.cells[ib].Without(d.Opposite())
	return nil
}

// Neighbors returns the in-bound cells adjacent to p, in North, East, South, West order.
func (g *Grid) Neighbors(p Position) []Position {
	result := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		if n := p.Step(d); g.InBound(n) {
			result = append(result, n)
		}
	}
	return result
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Walls, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and wall masks.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Validate checks the wall symmetry and closed boundary invariants.
// Grids built through OpenWall always pass; decoded grids may not.
func (g *Grid) Validate() error {
	for i, w := range g.cells {
		p := g.position(i)
		for _, d := range Directions {
			n := p.Step(d)
			if !g.InBound(n) {
				if !w.Has(d) {
					return fmt.Errorf("%w: boundary side %s of %s is open", ErrInconsistentWalls, d, p)
				}
				continue
			}
			if w.Has(d) != g.HasWall(n, d.Opposite()) {
				return fmt.Errorf("%w: %s and %s disagree on their shared wall", ErrInconsistentWalls, p, n)
			}
		}
	}
	return nil
}
