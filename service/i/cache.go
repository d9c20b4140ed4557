package i

import (
	"context"

	"github.com/beka-birhanu/amazeing/domain"
	"github.com/google/uuid"
)

// MazeCache keeps recently used mazes close at hand and serializes work on a single maze.
type MazeCache interface {
	// Get returns the cached record or domain.ErrCacheMiss.
	Get(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// Set caches the record, replacing any previous value.
	Set(ctx context.Context, record *domain.MazeRecord) error

	// Delete evicts the record. Evicting a missing record is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Lock acquires an exclusive lock on the maze and returns the function releasing it.
	Lock(ctx context.Context, id uuid.UUID) (unlock func(), err error)
}
