package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `# maze settings
WIDTH=20
HEIGHT=15
ENTRY=0,0
EXIT=19,14
OUTPUT_FILE=maze.txt
PERFECT=True
`

func TestParse(t *testing.T) {
	t.Run("Valid file", func(t *testing.T) {
		s, err := Parse(strings.NewReader(validConfig))
		require.NoError(t, err)

		assert.Equal(t, 20, s.Width)
		assert.Equal(t, 15, s.Height)
		assert.Equal(t, maze.Position{X: 0, Y: 0}, s.Entry)
		assert.Equal(t, maze.Position{X: 19, Y: 14}, s.Exit)
		assert.True(t, s.Perfect)
		assert.Equal(t, "maze.txt", s.OutputFile)
		assert.False(t, s.HasSeed)
		assert.Zero(t, s.Loops)
	})

	t.Run("Optional keys", func(t *testing.T) {
		s, err := Parse(strings.NewReader(validConfig + "SEED=-42\nLOOPS=3\n"))
		require.NoError(t, err)

		assert.True(t, s.HasSeed)
		assert.Equal(t, int64(-42), s.Seed)
		assert.Equal(t, 3, s.Loops)
	})

	t.Run("Variables expand in values", func(t *testing.T) {
		body := "MAZE_DIR=/tmp/mazes\n" + strings.Replace(validConfig, "OUTPUT_FILE=maze.txt", "OUTPUT_FILE=${MAZE_DIR}/maze.txt", 1)
		s, err := Parse(strings.NewReader(body))
		require.NoError(t, err)
		assert.Equal(t, "/tmp/mazes/maze.txt", s.OutputFile)
	})

	t.Run("Entry equal to exit", func(t *testing.T) {
		s, err := Parse(strings.NewReader(strings.Replace(validConfig, "EXIT=19,14", "EXIT=0,0", 1)))
		require.NoError(t, err)
		assert.Equal(t, s.Entry, s.Exit)
	})
}

func TestParseInvalid(t *testing.T) {
	cases := map[string][2]string{
		"missing width":      {"WIDTH=20\n", ""},
		"zero width":         {"WIDTH=20", "WIDTH=0"},
		"negative height":    {"HEIGHT=15", "HEIGHT=-2"},
		"width not a number": {"WIDTH=20", "WIDTH=twenty"},
		"entry outside":      {"ENTRY=0,0", "ENTRY=20,0"},
		"exit outside":       {"EXIT=19,14", "EXIT=19,15"},
		"negative exit":      {"EXIT=19,14", "EXIT=-1,3"},
		"entry not a pair":   {"ENTRY=0,0", "ENTRY=0"},
		"perfect not bool":   {"PERFECT=True", "PERFECT=maybe"},
		"missing output":     {"OUTPUT_FILE=maze.txt\n", ""},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(strings.Replace(validConfig, c[0], c[1], 1)))
			assert.True(t, errors.Is(err, maze.ErrInvalidConfig), "got %v", err)
		})
	}

	t.Run("negative loops", func(t *testing.T) {
		_, err := Parse(strings.NewReader(validConfig + "LOOPS=-1\n"))
		assert.True(t, errors.Is(err, maze.ErrInvalidConfig))
	})

	t.Run("bad seed", func(t *testing.T) {
		_, err := Parse(strings.NewReader(validConfig + "SEED=abc\n"))
		assert.True(t, errors.Is(err, maze.ErrInvalidConfig))
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, s.Width)

	cfg := s.GenerateConfig()
	assert.Equal(t, s.Entry, cfg.Start)
	assert.True(t, cfg.Perfect)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
