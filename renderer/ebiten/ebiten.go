// Package ebiten shows a maze in a window and lets the user explore it from the keyboard.
package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/renderer"
)

const (
	windowTitle = "A-Maze-ing"

	defaultCellSize = 24
	minCellSize     = 4
	maxWindowSide   = 960

	padding     = 40
	legendSpace = 36
	wallWidth   = 2
)

var _ renderer.Renderer = &Renderer{}

// Renderer opens a window for the maze.
//
// Keys: S toggles the solution, C cycles palettes, R asks Regenerate for a
// new maze, Esc closes the window.
type Renderer struct {
	CellSize   int                        // Pixel size of one cell, shrunk to fit large mazes
	Regenerate func() (*maze.Maze, error) // Called on R; nil disables the key
	OnError    func(error)                // Receives Regenerate failures
}

// Render implements renderer.Renderer. It blocks until the window closes.
func (r *Renderer) Render(m *maze.Maze, opts renderer.Options) error {
	if err := renderer.Check(m); err != nil {
		return err
	}

	w := newWindow(m, opts, r)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(windowTitle)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// window is the ebiten.Game showing one maze at a time.
type window struct {
	maze       *maze.Maze
	palette    int
	animation  *renderer.Animation
	cellSize   int
	width      int
	height     int
	regenerate func() (*maze.Maze, error)
	onError    func(error)
}

func newWindow(m *maze.Maze, opts renderer.Options, r *Renderer) *window {
	w := &window{
		palette:    opts.Palette,
		regenerate: r.Regenerate,
		onError:    r.OnError,
	}

	cellSize := r.CellSize
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	side := max(m.Grid.Width(), m.Grid.Height())
	if side*cellSize > maxWindowSide {
		cellSize = max(minCellSize, maxWindowSide/side)
	}
	w.cellSize = cellSize

	w.load(m)
	if opts.ShowSolution {
		w.animation.ShowAll()
	}
	return w
}

// load replaces the displayed maze and sizes the window for it.
func (w *window) load(m *maze.Maze) {
	w.maze = m
	w.width = m.Grid.Width()*w.cellSize + 2*padding
	w.height = m.Grid.Height()*w.cellSize + 2*padding + legendSpace
	if w.animation == nil {
		w.animation = renderer.NewAnimation(renderer.SolutionCells(m), renderer.DefaultStepTicks)
		return
	}
	w.animation.Reset(renderer.SolutionCells(m))
}

// Update handles keyboard input and advances the solution animation.
func (w *window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		w.animation.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		w.palette = (w.palette + 1) % len(renderer.Palettes)
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && w.regenerate != nil:
		m, err := w.regenerate()
		if err == nil {
			err = renderer.Check(m)
		}
		if err != nil {
			if w.onError != nil {
				w.onError(err)
			}
			break
		}
		w.load(m)
		ebiten.SetWindowSize(w.width, w.height)
	}

	w.animation.Tick()
	return nil
}

// Draw paints the passages, the revealed solution, the endpoints, the walls and the legend.
func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.ColorBackground)

	g := w.maze.Grid
	size := float32(w.cellSize)
	origin := func(p maze.Position) (float32, float32) {
		return float32(padding + p.X*w.cellSize), float32(padding + p.Y*w.cellSize)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			px, py := origin(maze.Position{X: x, Y: y})
			vector.FillRect(screen, px, py, size, size, renderer.ColorPassage, false)
		}
	}

	inset := size / 4
	for _, c := range w.animation.Shown() {
		px, py := origin(c)
		vector.FillRect(screen, px+inset, py+inset, size-2*inset, size-2*inset, renderer.ColorSolution, false)
	}

	ex, ey := origin(w.maze.Entry)
	vector.FillRect(screen, ex+1, ey+1, size-2, size-2, renderer.ColorEntry, false)
	if w.maze.Exit != w.maze.Entry {
		xx, xy := origin(w.maze.Exit)
		vector.FillRect(screen, xx+1, xy+1, size-2, size-2, renderer.ColorExit, false)
	}

	wall := renderer.PaletteAt(w.palette).Wall
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Position{X: x, Y: y}
			px, py := origin(p)
			if renderer.WallBetween(g, p, maze.North) {
				vector.StrokeLine(screen, px, py, px+size, py, wallWidth, wall, false)
			}
			if renderer.WallBetween(g, p, maze.West) {
				vector.StrokeLine(screen, px, py, px, py+size, wallWidth, wall, false)
			}
			if y == g.Height()-1 && renderer.WallBetween(g, p, maze.South) {
				vector.StrokeLine(screen, px, py+size, px+size, py+size, wallWidth, wall, false)
			}
			if x == g.Width()-1 && renderer.WallBetween(g, p, maze.East) {
				vector.StrokeLine(screen, px+size, py, px+size, py+size, wallWidth, wall, false)
			}
		}
	}

	legend := fmt.Sprintf("S: solution  C: colors (%s)  R: new maze  Esc: quit", renderer.PaletteAt(w.palette).Name)
	ebitenutil.DebugPrintAt(screen, legend, padding, w.height-legendSpace)
}

// Layout keeps a fixed logical screen matching the maze.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
