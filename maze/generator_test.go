package maze

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPicker replays fixed choices, wrapping each into range, then falls back to 0.
type scriptedPicker struct {
	choices []int
	calls   int
}

func (s *scriptedPicker) Pick(n int) int {
	defer func() { s.calls++ }()
	if s.calls < len(s.choices) {
		return s.choices[s.calls] % n
	}
	return 0
}

// badPicker always answers out of range.
type badPicker struct{}

func (badPicker) Pick(n int) int { return n }

func TestGeneratePerfect(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 5}, {8, 3}, {20, 15}}
	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			t.Run(fmt.Sprintf("%dx%d seed %d", size[0], size[1], seed), func(t *testing.T) {
				g, err := Generate(GenerateConfig{
					Width:   size[0],
					Height:  size[1],
					Start:   Position{X: 0, Y: 0},
					Perfect: true,
				}, NewRandPicker(seed))
				require.NoError(t, err)

				stats := Analyze(g)
				assert.Equal(t, size[0]*size[1]-1, stats.OpenEdges)
				assert.True(t, stats.Connected())
				assert.Zero(t, stats.Cycles())
				assert.True(t, stats.Perfect())
				assert.NoError(t, g.Validate())
			})
		}
	}
}

func TestGenerateImperfect(t *testing.T) {
	sizes := [][2]int{{2, 2}, {3, 3}, {5, 5}, {10, 10}, {25, 8}}
	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			t.Run(fmt.Sprintf("%dx%d seed %d", size[0], size[1], seed), func(t *testing.T) {
				cfg := GenerateConfig{Width: size[0], Height: size[1], Start: Position{X: 1, Y: 1}}

				cfg.Perfect = true
				tree, err := Generate(cfg, NewRandPicker(seed))
				require.NoError(t, err)

				cfg.Perfect = false
				g, err := Generate(cfg, NewRandPicker(seed))
				require.NoError(t, err)

				stats := Analyze(g)
				assert.True(t, stats.Connected())
				assert.Greater(t, stats.OpenEdges, size[0]*size[1]-1)
				assert.Equal(t, max(1, size[0]*size[1]/loopCellRatio), stats.Cycles())
				assert.NoError(t, g.Validate())

				// The same picker sequence grows the same tree first, so every tree edge stays open.
				for i := range tree.cells {
					p := tree.position(i)
					for _, d := range Directions {
						if !tree.HasWall(p, d) {
							assert.False(t, g.HasWall(p, d), "tree edge %s %s closed", p, d)
						}
					}
				}
			})
		}
	}
}

func TestGenerateLoops(t *testing.T) {
	t.Run("Explicit count", func(t *testing.T) {
		g, err := Generate(GenerateConfig{Width: 6, Height: 6, Loops: 7}, NewRandPicker(3))
		require.NoError(t, err)
		assert.Equal(t, 7, Analyze(g).Cycles())
	})

	t.Run("Capped at walled interior edges", func(t *testing.T) {
		g, err := Generate(GenerateConfig{Width: 3, Height: 3, Loops: 1000}, NewRandPicker(3))
		require.NoError(t, err)

		stats := Analyze(g)
		assert.Equal(t, 12, stats.OpenEdges)
		assert.Empty(t, g.walledInteriorEdges())
	})

	t.Run("Corridor has no room for loops", func(t *testing.T) {
		g, err := Generate(GenerateConfig{Width: 6, Height: 1}, NewRandPicker(3))
		require.NoError(t, err)
		assert.True(t, Analyze(g).Perfect())
	})

	t.Run("Negative count", func(t *testing.T) {
		_, err := Generate(GenerateConfig{Width: 6, Height: 6, Loops: -1}, NewRandPicker(3))
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := GenerateConfig{Width: 12, Height: 9, Start: Position{X: 4, Y: 2}}
	for _, perfect := range []bool{true, false} {
		cfg.Perfect = perfect

		a, err := Generate(cfg, NewRandPicker(42))
		require.NoError(t, err)
		b, err := Generate(cfg, NewRandPicker(42))
		require.NoError(t, err)
		assert.True(t, a.Equal(b), "perfect=%v", perfect)

		c, err := Generate(cfg, NewRandPicker(43))
		require.NoError(t, err)
		assert.False(t, a.Equal(c), "different seeds should differ, perfect=%v", perfect)
	}
}

func TestGenerateScripted(t *testing.T) {
	// Always taking the first unvisited neighbor from (0,0) walks E, S, W.
	g, err := Generate(GenerateConfig{Width: 2, Height: 2, Perfect: true}, &scriptedPicker{})
	require.NoError(t, err)

	assert.Equal(t, Walls(North|South|West), g.Walls(Position{X: 0, Y: 0}))
	assert.Equal(t, Walls(North|East), g.Walls(Position{X: 1, Y: 0}))
	assert.Equal(t, Walls(North|South|West), g.Walls(Position{X: 0, Y: 1}))
	assert.Equal(t, Walls(East|South), g.Walls(Position{X: 1, Y: 1}))
}

func TestGenerateErrors(t *testing.T) {
	cases := map[string]GenerateConfig{
		"zero width":     {Width: 0, Height: 3},
		"negative":       {Width: 3, Height: -3},
		"start outside":  {Width: 3, Height: 3, Start: Position{X: 3, Y: 0}},
		"negative start": {Width: 3, Height: 3, Start: Position{X: 0, Y: -1}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Generate(cfg, NewRandPicker(1))
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}

	t.Run("nil picker", func(t *testing.T) {
		_, err := Generate(GenerateConfig{Width: 2, Height: 2}, nil)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("out of range picker", func(t *testing.T) {
		_, err := Generate(GenerateConfig{Width: 2, Height: 2, Perfect: true}, badPicker{})
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
}
