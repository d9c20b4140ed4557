package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPrefix = "maze"
	defaultTTL    = 10 * time.Minute

	// mazeKeyFmt is <prefix>:<maze id>.
	mazeKeyFmt = "%s:%s"
	// lockSuffix marks the redsync mutex guarding one maze.
	lockSuffix = ":solve_lock"
)

var _ i.MazeCache = &RedisMazeCache{}

// RedisMazeCache caches BSON-encoded maze records in Redis with TTL support
// and hands out per-maze distributed locks.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// Options configures a RedisMazeCache.
type Options struct {
	Prefix string        // Key prefix, defaults to "maze"
	TTL    time.Duration // Expiry of cached records, defaults to 10 minutes
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client.
func NewRedisMazeCache(client *redis.Client, opts *Options) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if opts == nil {
		opts = &Options{}
	}

	cache := &RedisMazeCache{
		client: client,
		prefix: opts.Prefix,
		ttl:    opts.TTL,
	}
	if cache.prefix == "" {
		cache.prefix = defaultPrefix
	}
	if cache.ttl <= 0 {
		cache.ttl = defaultTTL
	}

	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the cached record or domain.ErrCacheMiss.
func (c *RedisMazeCache) Get(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var record domain.MazeRecord
	if err := bson.Unmarshal(raw, &record); err != nil {
		// A value we cannot read is as good as absent.
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, fmt.Errorf("%w: undecodable entry: %v", domain.ErrCacheMiss, err)
	}
	return &record, nil
}

// Set caches the record and refreshes its expiry.
func (c *RedisMazeCache) Set(ctx context.Context, record *domain.MazeRecord) error {
	raw, err := bson.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(record.ID), raw, c.ttl).Err()
}

// Delete evicts the record.
func (c *RedisMazeCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

// Lock acquires the maze's redsync mutex. The returned function releases it.
func (c *RedisMazeCache) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	mutex := c.locker.NewMutex(c.key(id) + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisMazeCache) key(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, c.prefix, id)
}
