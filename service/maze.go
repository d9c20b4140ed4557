package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 100
	defaultTokenTTL     = 24 * time.Hour

	// mazeIDClaim is the token claim naming the maze a solution token unlocks.
	mazeIDClaim = "mazeID"
)

// Service errors.
var (
	ErrMazeTooLarge = errors.New("maze dimensions exceed the allowed maximum")
	ErrForbidden    = errors.New("token does not grant access to this maze")
)

var _ i.MazeService = &MazeService{}

// MazeService generates, stores and solves mazes.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.MazeCache
	tokenizer    i.Tokenizer
	logger       i.Logger
	maxDimension int
	tokenTTL     time.Duration
	newPicker    func(seed int64) maze.Picker
	newSeed      func() int64
}

// Config holds the dependencies and limits of a MazeService.
type Config struct {
	Repo         i.MazeRepo
	Cache        i.MazeCache
	Tokenizer    i.Tokenizer
	Logger       i.Logger
	MaxDimension int                          // Largest accepted width or height, defaults to 100
	TokenTTL     time.Duration                // Lifetime of solution tokens, defaults to 24h
	NewPicker    func(seed int64) maze.Picker // Defaults to maze.NewRandPicker
	NewSeed      func() int64                 // Defaults to the current time in nanoseconds
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Repo == nil || c.Cache == nil || c.Tokenizer == nil || c.Logger == nil {
		return nil, errors.New("maze service needs a repo, cache, tokenizer and logger")
	}

	s := &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		tokenizer:    c.Tokenizer,
		logger:       c.Logger,
		maxDimension: c.MaxDimension,
		tokenTTL:     c.TokenTTL,
		newPicker:    c.NewPicker,
		newSeed:      c.NewSeed,
	}

	if s.maxDimension <= 0 {
		s.maxDimension = defaultMaxDimension
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = defaultTokenTTL
	}
	if s.newPicker == nil {
		s.newPicker = func(seed int64) maze.Picker { return maze.NewRandPicker(seed) }
	}
	if s.newSeed == nil {
		s.newSeed = func() int64 { return time.Now().UnixNano() }
	}

	return s, nil
}

// Generate implements i.MazeService. The solution is computed lazily by Solution.
func (s *MazeService) Generate(ctx context.Context, req i.GenerateRequest) (*domain.MazeRecord, string, error) {
	if req.Width > s.maxDimension || req.Height > s.maxDimension {
		return nil, "", fmt.Errorf("%w: %dx%d, limit %d", ErrMazeTooLarge, req.Width, req.Height, s.maxDimension)
	}

	seed := s.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	g, err := maze.Generate(maze.GenerateConfig{
		Width:   req.Width,
		Height:  req.Height,
		Start:   req.Entry,
		Perfect: req.Perfect,
		Loops:   req.Loops,
	}, s.newPicker(seed))
	if err != nil {
		return nil, "", err
	}

	m, err := maze.New(g, req.Entry, req.Exit)
	if err != nil {
		return nil, "", err
	}

	record, err := domain.NewMazeRecord(domain.MazeRecordConfig{
		ID:      uuid.New(),
		Maze:    m,
		Perfect: req.Perfect,
		Seed:    seed,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.store(ctx, record)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info(fmt.Sprintf("Generated maze: ID=%s Size=%dx%d Perfect=%v Seed=%d", record.ID, record.Width, record.Height, record.Perfect, seed))
	return record, token, nil
}

// Import implements i.MazeService. The text comes from outside, so it is
// solved right away and an unreachable exit is reported instead of stored.
func (s *MazeService) Import(ctx context.Context, data []byte) (*domain.MazeRecord, string, error) {
	m, err := maze.Unmarshal(data)
	if err != nil {
		return nil, "", err
	}

	g := m.Grid
	if g.Width() > s.maxDimension || g.Height() > s.maxDimension {
		return nil, "", fmt.Errorf("%w: %dx%d, limit %d", ErrMazeTooLarge, g.Width(), g.Height(), s.maxDimension)
	}
	if err := g.Validate(); err != nil {
		s.logger.Warning(fmt.Sprintf("Importing maze with damaged walls: %v", err))
	}

	if _, err := m.Solve(); err != nil {
		return nil, "", err
	}

	record, err := domain.NewMazeRecord(domain.MazeRecordConfig{
		ID:       uuid.New(),
		Maze:     m,
		Perfect:  maze.Analyze(g).Perfect(),
		Imported: true,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.store(ctx, record)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info(fmt.Sprintf("Imported maze: ID=%s Size=%dx%d PathLength=%d", record.ID, record.Width, record.Height, len(m.Solution)))
	return record, token, nil
}

// store persists a new record, warms the cache and issues its solution token.
func (s *MazeService) store(ctx context.Context, record *domain.MazeRecord) (string, error) {
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save maze %s: %v", record.ID, err))
		return "", err
	}
	s.cacheRecord(ctx, record)

	return s.tokenizer.Generate(map[string]interface{}{
		mazeIDClaim: record.ID.String(),
	}, s.tokenTTL)
}

// ByID implements i.MazeService. Reads go through the cache; cache failures only cost a repository read.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	record, err := s.cache.Get(ctx, id)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warning(fmt.Sprintf("Maze cache read failed for %s: %v", id, err))
	}

	record, err = s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheRecord(ctx, record)
	return record, nil
}

// Solution implements i.MazeService.
func (s *MazeService) Solution(ctx context.Context, id uuid.UUID) (maze.Path, error) {
	unlock, err := s.cache.Lock(ctx, id)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Obtaining solve lock for %s: %v", id, err))
		return nil, err
	}
	defer unlock()

	record, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m, err := record.Maze()
	if err != nil {
		s.logger.Error(fmt.Sprintf("Stored maze %s does not decode: %v", id, err))
		return nil, err
	}
	if m.Solved {
		return m.Solution, nil
	}

	path, err := m.Solve()
	if err != nil {
		s.logger.Error(fmt.Sprintf("Solving maze %s: %v", id, err))
		return nil, err
	}

	if err := record.Update(m); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save solution of %s: %v", id, err))
		return nil, err
	}
	s.cacheRecord(ctx, record)

	s.logger.Info(fmt.Sprintf("Solved maze: ID=%s PathLength=%d", id, len(path)))
	return path, nil
}

// Delete implements i.MazeService.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warning(fmt.Sprintf("Maze cache eviction failed for %s: %v", id, err))
	}
	s.logger.Info(fmt.Sprintf("Deleted maze: ID=%s", id))
	return nil
}

// Authorize implements i.MazeService.
func (s *MazeService) Authorize(claims map[string]interface{}, id uuid.UUID) error {
	raw, ok := claims[mazeIDClaim].(string)
	if !ok {
		return ErrForbidden
	}
	claimed, err := uuid.Parse(raw)
	if err != nil || claimed != id {
		return ErrForbidden
	}
	return nil
}

func (s *MazeService) cacheRecord(ctx context.Context, record *domain.MazeRecord) {
	if err := s.cache.Set(ctx, record); err != nil {
		s.logger.Warning(fmt.Sprintf("Maze cache write failed for %s: %v", record.ID, err))
	}
}
