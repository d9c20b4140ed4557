package i

import (
	"context"

	"github.com/beka-birhanu/amazeing/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	// If the maze already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, record *domain.MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns domain.ErrMazeNotFound if there is no such maze.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// Delete removes a maze. Returns domain.ErrMazeNotFound if there is no such maze.
	Delete(ctx context.Context, id uuid.UUID) error
}
