package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/infrastruture/token"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	records map[uuid.UUID]domain.MazeRecord
	saves   int
	failing bool
}

func (r *memoryRepo) Save(_ context.Context, record *domain.MazeRecord) error {
	if r.failing {
		return errors.New("repo down")
	}
	r.saves++
	r.records[record.ID] = *record
	return nil
}

func (r *memoryRepo) ByID(_ context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, domain.ErrMazeNotFound
	}
	return &record, nil
}

func (r *memoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrMazeNotFound
	}
	delete(r.records, id)
	return nil
}

type memoryCache struct {
	records map[uuid.UUID]domain.MazeRecord
	locks   int
	broken  bool
	mu      sync.Mutex
}

func (c *memoryCache) Get(_ context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	if c.broken {
		return nil, errors.New("cache down")
	}
	record, ok := c.records[id]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return &record, nil
}

func (c *memoryCache) Set(_ context.Context, record *domain.MazeRecord) error {
	if c.broken {
		return errors.New("cache down")
	}
	c.records[record.ID] = *record
	return nil
}

func (c *memoryCache) Delete(_ context.Context, id uuid.UUID) error {
	delete(c.records, id)
	return nil
}

func (c *memoryCache) Lock(_ context.Context, _ uuid.UUID) (func(), error) {
	c.mu.Lock()
	c.locks++
	return c.mu.Unlock, nil
}

type recordingLogger struct {
	infos, warnings, errors []string
}

func (l *recordingLogger) Info(msg string)    { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warning(msg string) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(msg string)   { l.errors = append(l.errors, msg) }

type fixture struct {
	svc    *MazeService
	repo   *memoryRepo
	cache  *memoryCache
	logger *recordingLogger
	tokens i.Tokenizer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:   &memoryRepo{records: map[uuid.UUID]domain.MazeRecord{}},
		cache:  &memoryCache{records: map[uuid.UUID]domain.MazeRecord{}},
		logger: &recordingLogger{},
		tokens: token.NewJwtService("test-secret", "amazeing-test"),
	}

	svc, err := NewMazeService(&Config{
		Repo:         f.repo,
		Cache:        f.cache,
		Tokenizer:    f.tokens,
		Logger:       f.logger,
		MaxDimension: 30,
		TokenTTL:     time.Minute,
		NewSeed:      func() int64 { return 99 },
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(nil)
	assert.Error(t, err)
	_, err = NewMazeService(&Config{})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seed := int64(5)
	req := i.GenerateRequest{
		Width:   8,
		Height:  6,
		Entry:   maze.Position{X: 0, Y: 0},
		Exit:    maze.Position{X: 7, Y: 5},
		Perfect: true,
		Seed:    &seed,
	}

	record, tok, err := f.svc.Generate(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, int64(5), record.Seed)
	assert.Contains(t, f.repo.records, record.ID)
	assert.Contains(t, f.cache.records, record.ID)

	t.Run("Stored unsolved and perfect", func(t *testing.T) {
		m, err := record.Maze()
		require.NoError(t, err)
		assert.False(t, m.Solved)
		assert.True(t, maze.Analyze(m.Grid).Perfect())
	})

	t.Run("Same seed, same grid", func(t *testing.T) {
		again, _, err := f.svc.Generate(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, record.ID, again.ID)
		assert.Equal(t, record.Encoded, again.Encoded)
	})

	t.Run("Default seed", func(t *testing.T) {
		req := req
		req.Seed = nil
		rec, _, err := f.svc.Generate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(99), rec.Seed)
	})

	t.Run("Token unlocks only this maze", func(t *testing.T) {
		claims, err := f.tokens.Decode(tok)
		require.NoError(t, err)
		assert.NoError(t, f.svc.Authorize(claims, record.ID))
		assert.ErrorIs(t, f.svc.Authorize(claims, uuid.New()), ErrForbidden)
		assert.ErrorIs(t, f.svc.Authorize(map[string]interface{}{}, record.ID), ErrForbidden)
		assert.ErrorIs(t, f.svc.Authorize(map[string]interface{}{"mazeID": "nope"}, record.ID), ErrForbidden)
	})

	t.Run("Too large", func(t *testing.T) {
		req := req
		req.Width = 31
		_, _, err := f.svc.Generate(ctx, req)
		assert.ErrorIs(t, err, ErrMazeTooLarge)
	})

	t.Run("Invalid configuration", func(t *testing.T) {
		req := req
		req.Exit = maze.Position{X: 8, Y: 0}
		_, _, err := f.svc.Generate(ctx, req)
		assert.ErrorIs(t, err, maze.ErrInvalidConfig)

		req.Width = 0
		_, _, err = f.svc.Generate(ctx, req)
		assert.ErrorIs(t, err, maze.ErrInvalidConfig)
	})

	t.Run("Repository failure", func(t *testing.T) {
		f.repo.failing = true
		defer func() { f.repo.failing = false }()

		_, _, err := f.svc.Generate(ctx, req)
		assert.Error(t, err)
		assert.NotEmpty(t, f.logger.errors)
	})
}

func TestSolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.svc.Generate(ctx, i.GenerateRequest{
		Width:  5,
		Height: 5,
		Entry:  maze.Position{X: 0, Y: 0},
		Exit:   maze.Position{X: 4, Y: 4},
	})
	require.NoError(t, err)

	path, err := f.svc.Solution(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.locks)

	m, err := record.Maze()
	require.NoError(t, err)
	end, err := path.Follow(m.Grid, m.Entry)
	require.NoError(t, err)
	assert.Equal(t, m.Exit, end)

	t.Run("Stored after first solve", func(t *testing.T) {
		stored := f.repo.records[record.ID]
		decoded, err := stored.Maze()
		require.NoError(t, err)
		assert.True(t, decoded.Solved)
		assert.Equal(t, path, decoded.Solution)

		saves := f.repo.saves
		again, err := f.svc.Solution(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, path, again)
		assert.Equal(t, saves, f.repo.saves)
	})

	t.Run("Unknown maze", func(t *testing.T) {
		_, err := f.svc.Solution(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrMazeNotFound)
	})
}

func TestByIDCacheFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.svc.Generate(ctx, i.GenerateRequest{Width: 3, Height: 3, Exit: maze.Position{X: 2, Y: 2}})
	require.NoError(t, err)

	delete(f.cache.records, record.ID)
	got, err := f.svc.ByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Encoded, got.Encoded)
	assert.Contains(t, f.cache.records, record.ID, "miss refills the cache")

	f.cache.broken = true
	got, err = f.svc.ByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.NotEmpty(t, f.logger.warnings)
}

func TestImport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("Solves on import", func(t *testing.T) {
		record, tok, err := f.svc.Import(ctx, []byte("D3\nD6\n\n0,0\n1,1\n"))
		require.NoError(t, err)
		assert.NotEmpty(t, tok)
		assert.True(t, record.Imported)
		assert.True(t, record.Perfect)

		path, err := f.svc.Solution(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, "ES", path.String())
	})

	t.Run("Damaged walls are logged", func(t *testing.T) {
		before := len(f.logger.warnings)
		_, _, err := f.svc.Import(ctx, []byte("9\n6\n\n0,0\n0,0\n"))
		require.NoError(t, err)
		assert.Greater(t, len(f.logger.warnings), before)
	})

	t.Run("Unreachable exit", func(t *testing.T) {
		_, _, err := f.svc.Import(ctx, []byte("FF\n\n0,0\n1,0\n"))
		assert.ErrorIs(t, err, maze.ErrUnreachableExit)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, _, err := f.svc.Import(ctx, []byte("D3\nD\n\n0,0\n1,1\n"))
		assert.ErrorIs(t, err, maze.ErrMalformedGrid)
	})
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.svc.Generate(ctx, i.GenerateRequest{Width: 2, Height: 2})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, record.ID))
	assert.NotContains(t, f.repo.records, record.ID)
	assert.NotContains(t, f.cache.records, record.ID)

	assert.ErrorIs(t, f.svc.Delete(ctx, record.ID), domain.ErrMazeNotFound)
}
