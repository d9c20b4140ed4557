// Package terminal draws mazes with block characters.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/renderer"
)

const (
	wallRune     = '█'
	openRune     = ' '
	solutionRune = '·'
	entryRune    = 'S'
	exitRune     = 'E'

	// cellWidth is the number of characters of one cell.
	cellWidth = 2
)

var _ renderer.Renderer = &Renderer{}

// Renderer writes a maze picture, framed by a title and a legend.
type Renderer struct {
	out   io.Writer
	color bool
}

// New creates a Renderer writing to out. With color set, walls and markers
// are wrapped in ANSI escape sequences.
func New(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color}
}

// Render implements renderer.Renderer.
func (r *Renderer) Render(m *maze.Maze, opts renderer.Options) error {
	if err := renderer.Check(m); err != nil {
		return err
	}

	canvas := draw(m, opts.ShowSolution)
	width := len(canvas[0])
	rule := strings.Repeat("=", width+4)
	palette := renderer.PaletteAt(opts.Palette)

	w := bufio.NewWriter(r.out)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", rule, center("A-Maze-ing", width+4), rule)
	for _, row := range canvas {
		w.WriteString("  ")
		for _, c := range row {
			w.WriteString(r.paint(c, palette))
		}
		w.WriteByte('\n')
	}

	fmt.Fprintf(w, "\n%s\nLegend:\n", rule)
	fmt.Fprintf(w, "  %s = Entry %s\n", r.paint(entryRune, palette), m.Entry)
	fmt.Fprintf(w, "  %s = Exit %s\n", r.paint(exitRune, palette), m.Exit)
	switch {
	case !opts.ShowSolution:
		w.WriteString("  (solution hidden)\n")
	case !m.Solved:
		w.WriteString("  (maze not solved)\n")
	default:
		fmt.Fprintf(w, "  %s = Solution (%d steps)\n", r.paint(solutionRune, palette), len(m.Solution))
	}
	fmt.Fprintf(w, "  %s = Wall, palette %s\n", r.paint(wallRune, palette), palette.Name)
	fmt.Fprintf(w, "%s\n", rule)

	return w.Flush()
}

// draw lays the maze out on a (2H+1) x (W*(cellWidth+1)+1) character canvas.
// Cell x,y sits on row 2y+1 starting at column x*(cellWidth+1)+1.
func draw(m *maze.Maze, showSolution bool) [][]rune {
	g := m.Grid
	rows, cols := 2*g.Height()+1, g.Width()*(cellWidth+1)+1

	canvas := make([][]rune, rows)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(string(wallRune), cols))
	}

	fill := func(row, col, n int, c rune) {
		for k := 0; k < n; k++ {
			canvas[row][col+k] = c
		}
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Position{X: x, Y: y}
			row, col := 2*y+1, x*(cellWidth+1)+1
			fill(row, col, cellWidth, openRune)
			if !renderer.WallBetween(g, p, maze.East) {
				canvas[row][col+cellWidth] = openRune
			}
			if !renderer.WallBetween(g, p, maze.South) {
				fill(row+1, col, cellWidth, openRune)
			}
		}
	}

	if showSolution {
		cells := renderer.SolutionCells(m)
		for k, c := range cells {
			row, col := 2*c.Y+1, c.X*(cellWidth+1)+1
			fill(row, col, cellWidth, solutionRune)
			if k == 0 {
				continue
			}
			// Mark the gap crossed from the previous cell.
			prev := cells[k-1]
			pr, pc := 2*prev.Y+1, prev.X*(cellWidth+1)+1
			switch {
			case pr == row:
				canvas[row][min(pc, col)+cellWidth] = solutionRune
			default:
				fill(min(pr, row)+1, col, cellWidth, solutionRune)
			}
		}
	}

	mark := func(p maze.Position, c rune) {
		fill(2*p.Y+1, p.X*(cellWidth+1)+1, cellWidth, c)
	}
	mark(m.Entry, entryRune)
	if m.Exit != m.Entry {
		mark(m.Exit, exitRune)
	}

	return canvas
}

func (r *Renderer) paint(c rune, palette renderer.Palette) string {
	if !r.color {
		return string(c)
	}
	switch c {
	case wallRune:
		return palette.ANSI + string(c) + config.ColorReset
	case entryRune:
		return config.ColorGreen + string(c) + config.ColorReset
	case exitRune:
		return config.ColorRed + string(c) + config.ColorReset
	case solutionRune:
		return config.ColorYellow + string(c) + config.ColorReset
	}
	return string(c)
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
