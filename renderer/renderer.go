// Package renderer defines how a maze is drawn and the state the drawing
// backends share: palettes, display options and the solution animation.
package renderer

import (
	"fmt"
	"image/color"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
)

// Renderer draws a maze.
type Renderer interface {
	Render(m *maze.Maze, opts Options) error
}

// Options controls what is drawn.
type Options struct {
	ShowSolution bool // Draw the solution path when the maze is solved
	Palette      int  // Index into Palettes, wrapped around
}

// Palette is a named wall color for both backends.
type Palette struct {
	Name string
	Wall color.RGBA
	ANSI string
}

// Palettes available to the renderers, cycled by the window's C key.
var Palettes = []Palette{
	{Name: "Black & White", Wall: color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}, ANSI: config.ColorWhite},
	{Name: "Orange & Blue", Wall: color.RGBA{R: 0xFF, G: 0x66, B: 0x00, A: 0xFF}, ANSI: config.ColorYellow},
	{Name: "Pink & Cyan", Wall: color.RGBA{R: 0xFF, G: 0x00, B: 0x66, A: 0xFF}, ANSI: config.ColorMagenta},
}

// Fixed colors of the window backend.
var (
	ColorBackground = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	ColorPassage    = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xFF}
	ColorEntry      = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	ColorExit       = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	ColorSolution   = color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
)

// PaletteAt returns the palette for index i, wrapping in both directions.
func PaletteAt(i int) Palette {
	n := len(Palettes)
	return Palettes[((i%n)+n)%n]
}

// Check reports whether m can be drawn: it needs a grid and in-bound endpoints.
func Check(m *maze.Maze) error {
	if m == nil || m.Grid == nil {
		return fmt.Errorf("%w: nothing to render", maze.ErrMalformedGrid)
	}
	for _, p := range [2]maze.Position{m.Entry, m.Exit} {
		if !m.Grid.InBound(p) {
			return fmt.Errorf("%w: %s outside %dx%d", maze.ErrInvalidCoordinate, p, m.Grid.Width(), m.Grid.Height())
		}
	}
	return nil
}

// SolutionCells returns the cells of m's solution from entry to exit, or nil
// when the maze is unsolved or the path leaves the grid.
func SolutionCells(m *maze.Maze) []maze.Position {
	if m == nil || m.Grid == nil || !m.Solved {
		return nil
	}
	cells := m.Solution.Cells(m.Entry)
	for _, c := range cells {
		if !m.Grid.InBound(c) {
			return nil
		}
	}
	return cells
}

// WallBetween reports whether a wall should be drawn between a and its
// neighbor in direction d. Either side claiming the wall is enough.
func WallBetween(g *maze.Grid, a maze.Position, d maze.Direction) bool {
	b := a.Step(d)
	if !g.InBound(b) {
		return true
	}
	return g.HasWall(a, d) || g.HasWall(b, d.Opposite())
}
