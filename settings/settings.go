// Package settings loads the validated configuration record that drives one maze run.
package settings

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/joho/godotenv"
)

// Configuration file keys.
const (
	KeyWidth      = "WIDTH"
	KeyHeight     = "HEIGHT"
	KeyEntry      = "ENTRY"
	KeyExit       = "EXIT"
	KeyOutputFile = "OUTPUT_FILE"
	KeyPerfect    = "PERFECT"
	KeySeed       = "SEED"
	KeyLoops      = "LOOPS"
)

var requiredKeys = []string{KeyWidth, KeyHeight, KeyEntry, KeyExit, KeyOutputFile, KeyPerfect}

// Settings is the configuration record handed to the maze core.
type Settings struct {
	Width      int           // Width of the maze (number of columns)
	Height     int           // Height of the maze (number of rows)
	Entry      maze.Position // Entry cell
	Exit       maze.Position // Exit cell
	Perfect    bool          // Whether the maze must be a spanning tree
	OutputFile string        // Where the encoded maze is written
	Seed       int64         // Random seed, meaningful when HasSeed is set
	HasSeed    bool          // Whether SEED was given
	Loops      int           // Extra openings for imperfect mazes; 0 selects the default
}

// Load reads a KEY=VALUE configuration file. Lines starting with '#' are comments.
func Load(path string) (*Settings, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return FromMap(values)
}

// Parse reads KEY=VALUE configuration from r.
func Parse(r io.Reader) (*Settings, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", maze.ErrInvalidConfig, err)
	}
	return FromMap(values)
}

// FromMap builds and validates Settings from raw key/value pairs.
func FromMap(values map[string]string) (*Settings, error) {
	for _, key := range requiredKeys {
		if strings.TrimSpace(values[key]) == "" {
			return nil, fmt.Errorf("%w: missing %s", maze.ErrInvalidConfig, key)
		}
	}

	s := &Settings{
		OutputFile: strings.TrimSpace(values[KeyOutputFile]),
	}

	var err error
	if s.Width, err = atoi(values, KeyWidth); err != nil {
		return nil, err
	}
	if s.Height, err = atoi(values, KeyHeight); err != nil {
		return nil, err
	}
	if s.Entry, err = position(values, KeyEntry); err != nil {
		return nil, err
	}
	if s.Exit, err = position(values, KeyExit); err != nil {
		return nil, err
	}

	s.Perfect, err = strconv.ParseBool(strings.TrimSpace(values[KeyPerfect]))
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false, got %q", maze.ErrInvalidConfig, KeyPerfect, values[KeyPerfect])
	}

	if raw := strings.TrimSpace(values[KeySeed]); raw != "" {
		if s.Seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer, got %q", maze.ErrInvalidConfig, KeySeed, raw)
		}
		s.HasSeed = true
	}
	if strings.TrimSpace(values[KeyLoops]) != "" {
		if s.Loops, err = atoi(values, KeyLoops); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks dimensions, endpoints and options.
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %s and %s must be positive, got %dx%d", maze.ErrInvalidConfig, KeyWidth, KeyHeight, s.Width, s.Height)
	}
	if !s.inBound(s.Entry) {
		return fmt.Errorf("%w: %s %s outside [0,%d)x[0,%d)", maze.ErrInvalidConfig, KeyEntry, s.Entry, s.Width, s.Height)
	}
	if !s.inBound(s.Exit) {
		return fmt.Errorf("%w: %s %s outside [0,%d)x[0,%d)", maze.ErrInvalidConfig, KeyExit, s.Exit, s.Width, s.Height)
	}
	if s.Loops < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", maze.ErrInvalidConfig, KeyLoops, s.Loops)
	}
	if s.OutputFile == "" {
		return fmt.Errorf("%w: missing %s", maze.ErrInvalidConfig, KeyOutputFile)
	}
	return nil
}

// GenerateConfig converts the settings into generator parameters. The tree grows from the entry cell.
func (s *Settings) GenerateConfig() maze.GenerateConfig {
	return maze.GenerateConfig{
		Width:   s.Width,
		Height:  s.Height,
		Start:   s.Entry,
		Perfect: s.Perfect,
		Loops:   s.Loops,
	}
}

func (s *Settings) inBound(p maze.Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

func atoi(values map[string]string, key string) (int, error) {
	raw := strings.TrimSpace(values[key])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", maze.ErrInvalidConfig, key, raw)
	}
	return v, nil
}

func position(values map[string]string, key string) (maze.Position, error) {
	p, err := maze.ParsePosition(values[key])
	if err != nil {
		return maze.Position{}, fmt.Errorf("%w: %s: %v", maze.ErrInvalidConfig, key, err)
	}
	return p, nil
}
