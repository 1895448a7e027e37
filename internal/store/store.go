// Package store persists session snapshots behind a small key-value
// interface. Drivers must treat a missing or unreadable stored value as an
// empty session rather than an error, so a corrupt snapshot never takes the
// assistant down.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anshuchowdary926-eng/visamate/internal/models"
)

var (
	ErrInvalidDriver = errors.New("store: unknown driver")
	ErrInvalidConfig = errors.New("store: invalid driver configuration")
)

type Store interface {
	Save(ctx context.Context, key string, snap *models.Snapshot) error
	// Load returns the snapshot for key, or an empty snapshot if the key is
	// missing or its value cannot be decoded.
	Load(ctx context.Context, key string) (*models.Snapshot, error)
	Close() error
}

type Driver string

const (
	DriverMemory Driver = "memory"
	DriverSQLite Driver = "sqlite"
	DriverRedis  Driver = "redis"
)

type Option func(*config)

type config struct {
	sqlitePath  string
	redisClient *redis.Client
	redisTTL    time.Duration
}

func WithSQLitePath(path string) Option {
	return func(c *config) { c.sqlitePath = path }
}

func WithRedisClient(client *redis.Client) Option {
	return func(c *config) { c.redisClient = client }
}

func WithRedisTTL(ttl time.Duration) Option {
	return func(c *config) { c.redisTTL = ttl }
}

// New constructs a store for the given driver.
func New(driver Driver, opts ...Option) (Store, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch driver {
	case DriverMemory:
		return newMemoryStore(), nil

	case DriverSQLite:
		if cfg.sqlitePath == "" {
			return nil, ErrInvalidConfig
		}
		return newSQLiteStore(cfg.sqlitePath)

	case DriverRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ttl := cfg.redisTTL
		if ttl <= 0 {
			ttl = 30 * 24 * time.Hour
		}
		return &redisStore{client: cfg.redisClient, ttl: ttl}, nil

	default:
		return nil, ErrInvalidDriver
	}
}

func emptySnapshot() *models.Snapshot {
	return &models.Snapshot{
		Messages:  []models.Message{},
		Durations: map[string]int64{},
	}
}
