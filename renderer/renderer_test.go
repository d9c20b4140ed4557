package renderer

import (
	"testing"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solvedExample(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Unmarshal([]byte("D3\nD6\n\n0,0\n1,1\nES\n"))
	require.NoError(t, err)
	return m
}

func TestPaletteAt(t *testing.T) {
	assert.Equal(t, Palettes[0], PaletteAt(0))
	assert.Equal(t, Palettes[1], PaletteAt(len(Palettes)+1))
	assert.Equal(t, Palettes[len(Palettes)-1], PaletteAt(-1))
}

func TestSolutionCells(t *testing.T) {
	m := solvedExample(t)
	assert.Equal(t, []maze.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, SolutionCells(m))

	m.Solved = false
	assert.Nil(t, SolutionCells(m))

	m.Solved, m.Solution = true, maze.Path{maze.North}
	assert.Nil(t, SolutionCells(m), "path leaving the grid")
}

func TestWallBetween(t *testing.T) {
	m := solvedExample(t)
	g := m.Grid

	assert.False(t, WallBetween(g, maze.Position{X: 0, Y: 0}, maze.East))
	assert.True(t, WallBetween(g, maze.Position{X: 0, Y: 0}, maze.South))
	assert.True(t, WallBetween(g, maze.Position{X: 0, Y: 0}, maze.North), "border")
	assert.False(t, WallBetween(g, maze.Position{X: 1, Y: 0}, maze.South))
}

func TestAnimation(t *testing.T) {
	cells := SolutionCells(solvedExample(t))
	a := NewAnimation(cells, 2)

	assert.False(t, a.Visible())
	assert.Empty(t, a.Shown())

	a.Toggle()
	assert.True(t, a.Visible())
	assert.Equal(t, cells[:1], a.Shown())

	a.Tick()
	assert.Len(t, a.Shown(), 1)
	a.Tick()
	assert.Len(t, a.Shown(), 2)
	for k := 0; k < 10; k++ {
		a.Tick()
	}
	assert.True(t, a.Done())
	assert.Equal(t, cells, a.Shown())

	a.Toggle()
	assert.False(t, a.Visible())
	assert.Empty(t, a.Shown())

	a.ShowAll()
	assert.Equal(t, cells, a.Shown())

	a.Reset(cells[:2])
	assert.False(t, a.Visible())
	a.Toggle()
	assert.Len(t, a.Shown(), 1)
}

func TestAnimationEmptyPath(t *testing.T) {
	a := NewAnimation(nil, 0)
	a.Toggle()
	a.Tick()
	assert.True(t, a.Done())
	assert.Empty(t, a.Shown())
}

func TestCheck(t *testing.T) {
	assert.ErrorIs(t, Check(nil), maze.ErrMalformedGrid)
	assert.ErrorIs(t, Check(&maze.Maze{}), maze.ErrMalformedGrid)

	m := solvedExample(t)
	assert.NoError(t, Check(m))

	m.Exit = maze.Position{X: 2, Y: 1}
	assert.ErrorIs(t, Check(m), maze.ErrInvalidCoordinate)

	m.Exit, m.Entry = maze.Position{X: 1, Y: 1}, maze.Position{X: -1, Y: 0}
	assert.ErrorIs(t, Check(m), maze.ErrInvalidCoordinate)
}
