package i

import (
	"context"

	"github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// GenerateRequest describes a maze to generate.
type GenerateRequest struct {
	Width   int
	Height  int
	Entry   maze.Position
	Exit    maze.Position
	Perfect bool
	Seed    *int64 // nil picks a fresh seed
	Loops   int
}

// MazeService generates, stores, solves and imports mazes.
type MazeService interface {
	// Generate creates and stores a new maze. It returns the record and a token granting access to its solution.
	Generate(ctx context.Context, req GenerateRequest) (*domain.MazeRecord, string, error)

	// ByID returns a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// Solution returns the shortest entry to exit path, solving and storing it on first use.
	Solution(ctx context.Context, id uuid.UUID) (maze.Path, error)

	// Import decodes a maze from its text form, solves it and stores it.
	Import(ctx context.Context, data []byte) (*domain.MazeRecord, string, error)

	// Delete removes a stored maze.
	Delete(ctx context.Context, id uuid.UUID) error

	// Authorize checks that token claims grant access to the maze.
	Authorize(claims map[string]interface{}, id uuid.UUID) error
}
