// Package domain holds the persisted representations of mazes.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// Domain errors shared by repositories, caches and services.
var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrCacheMiss    = errors.New("maze not cached")
)

// MazeRecord represents the BSON version of a maze for storage and caching.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Perfect   bool      `bson:"perfect"`
	Seed      int64     `bson:"seed"`
	Imported  bool      `bson:"imported"`
	Encoded   string    `bson:"encoded"` // Marshal output, solution line included once solved
	CreatedAt time.Time `bson:"createdAt"`
}

// MazeRecordConfig holds parameters for creating a MazeRecord.
type MazeRecordConfig struct {
	ID       uuid.UUID
	Maze     *maze.Maze
	Perfect  bool
	Seed     int64
	Imported bool
}

// NewMazeRecord encodes the maze into a storable record.
func NewMazeRecord(config MazeRecordConfig) (*MazeRecord, error) {
	if config.Maze == nil || config.Maze.Grid == nil {
		return nil, errors.New("maze record needs a maze")
	}

	encoded, err := maze.Marshal(config.Maze)
	if err != nil {
		return nil, err
	}

	return &MazeRecord{
		ID:        config.ID,
		Width:     config.Maze.Grid.Width(),
		Height:    config.Maze.Grid.Height(),
		Perfect:   config.Perfect,
		Seed:      config.Seed,
		Imported:  config.Imported,
		Encoded:   string(encoded),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Maze decodes the stored maze.
func (r *MazeRecord) Maze() (*maze.Maze, error) {
	m, err := maze.UnmarshalSized([]byte(r.Encoded), r.Width, r.Height)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}
	return m, nil
}

// Update re-encodes m into the record, keeping its identity and metadata.
func (r *MazeRecord) Update(m *maze.Maze) error {
	encoded, err := maze.Marshal(m)
	if err != nil {
		return err
	}
	r.Encoded = string(encoded)
	return nil
}
