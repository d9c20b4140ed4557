/*
Package maze provides tools for creating, solving and persisting rectangular mazes.

A Grid holds one 4-bit wall mask per cell (North=1, East=2, South=4, West=8).
Generate grows a randomized depth-first spanning tree over it, optionally
followed by extra openings that introduce cycles. Solve finds the shortest
route between two cells with a breadth-first search, and Marshal/Unmarshal
convert a Maze to and from its one-hex-digit-per-cell text form.
*/
package maze

import (
	"fmt"
	"strings"
)

// Maze is a grid with designated entry and exit cells and an optional solution.
type Maze struct {
	Grid     *Grid    // Wall layout
	Entry    Position // Start cell for the solver
	Exit     Position // Goal cell for the solver
	Solution Path     // Route from Entry to Exit, meaningful when Solved is set
	Solved   bool     // Whether Solution has been computed
}

// New wraps a grid with entry and exit cells. Both must lie inside the grid; they may coincide.
func New(g *Grid, entry, exit Position) (*Maze, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfig)
	}
	for _, p := range [2]Position{entry, exit} {
		if !g.InBound(p) {
			return nil, fmt.Errorf("%w: %s outside %dx%d", ErrInvalidConfig, p, g.Width(), g.Height())
		}
	}
	return &Maze{Grid: g, Entry: entry, Exit: exit}, nil
}

// Solve computes and records the shortest path from Entry to Exit.
func (m *Maze) Solve() (Path, error) {
	path, err := Solve(m.Grid, m.Entry, m.Exit)
	if err != nil {
		return nil, err
	}
	m.Solution = path
	m.Solved = true
	return path, nil
}

// Equal reports whether both mazes have identical grids, endpoints and solutions.
func (m *Maze) Equal(o *Maze) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Grid.Equal(o.Grid) &&
		m.Entry == o.Entry &&
		m.Exit == o.Exit &&
		m.Solved == o.Solved &&
		m.Solution.String() == o.Solution.String()
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var sb strings.Builder
	g := m.Grid

	// Top boundary
	sb.WriteString("+")
	for x := 0; x < g.Width(); x++ {
		if g.HasWall(Position{X: x, Y: 0}, North) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteString("\n")

	for y := 0; y < g.Height(); y++ {
		// Cell rows
		if g.HasWall(Position{X: 0, Y: y}, West) {
			sb.WriteString("|")
		} else {
			sb.WriteString(" ")
		}
		for x := 0; x < g.Width(); x++ {
			p := Position{X: x, Y: y}
			switch p {
			case m.Entry:
				sb.WriteString(" S ")
			case m.Exit:
				sb.WriteString(" E ")
			default:
				sb.WriteString("   ")
			}
			if g.HasWall(p, East) {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		// Wall rows
		sb.WriteString("+")
		for x := 0; x < g.Width(); x++ {
			if g.HasWall(Position{X: x, Y: y}, South) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
