package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func example(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Unmarshal([]byte("D3\nD6\n\n0,0\n1,1\nES\n"))
	require.NoError(t, err)
	return m
}

func lines(canvas [][]rune) []string {
	out := make([]string, len(canvas))
	for k, row := range canvas {
		out[k] = string(row)
	}
	return out
}

func TestDraw(t *testing.T) {
	m := example(t)

	t.Run("Hidden solution", func(t *testing.T) {
		assert.Equal(t, []string{
			"███████",
			"█SS   █",
			"████  █",
			"█   EE█",
			"███████",
		}, lines(draw(m, false)))
	})

	t.Run("Shown solution", func(t *testing.T) {
		assert.Equal(t, []string{
			"███████",
			"█SS···█",
			"████··█",
			"█   EE█",
			"███████",
		}, lines(draw(m, true)))
	})

	t.Run("Entry equals exit", func(t *testing.T) {
		m.Exit = m.Entry
		m.Solution = maze.Path{}
		canvas := lines(draw(m, true))
		assert.Equal(t, "█SS   █", canvas[1])
		assert.NotContains(t, strings.Join(canvas, ""), "E")
	})
}

func TestRender(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, false).Render(example(t), renderer.Options{ShowSolution: true}))

		out := buf.String()
		assert.Contains(t, out, "  █SS···█\n")
		assert.Contains(t, out, "S = Entry 0,0")
		assert.Contains(t, out, "E = Exit 1,1")
		assert.Contains(t, out, "· = Solution (2 steps)")
		assert.NotContains(t, out, "\033[")
	})

	t.Run("Hidden solution", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, false).Render(example(t), renderer.Options{}))
		assert.Contains(t, buf.String(), "(solution hidden)")
		assert.NotContains(t, buf.String(), "·")
	})

	t.Run("Colored", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, true).Render(example(t), renderer.Options{Palette: 1}))
		out := buf.String()
		assert.Contains(t, out, renderer.Palettes[1].ANSI+"█"+config.ColorReset)
		assert.Contains(t, out, config.ColorGreen+"S"+config.ColorReset)
		assert.Contains(t, out, renderer.Palettes[1].Name)
	})

	t.Run("Endpoint outside the grid", func(t *testing.T) {
		m := example(t)
		m.Exit = maze.Position{X: 7, Y: 7}

		var buf bytes.Buffer
		assert.NotPanics(t, func() {
			err := New(&buf, false).Render(m, renderer.Options{ShowSolution: true})
			assert.ErrorIs(t, err, maze.ErrInvalidCoordinate)
		})
		assert.Empty(t, buf.String())
	})

	t.Run("Nil maze", func(t *testing.T) {
		var buf bytes.Buffer
		err := New(&buf, false).Render(nil, renderer.Options{})
		assert.ErrorIs(t, err, maze.ErrMalformedGrid)
	})
}
