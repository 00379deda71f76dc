package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/storage"
)

// Storage is a Redis-backed implementation of the persistence gateway
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Gateway = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context, namespace string) ([]byte, error) {
	data, err := s.client.Get(ctx, snapshotKey(s.cfg.KeyPrefix, namespace)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSnapshotNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) Save(ctx context.Context, namespace string, blob []byte) error {
	return s.client.Set(ctx, snapshotKey(s.cfg.KeyPrefix, namespace), blob, s.cfg.SnapshotTTL).Err()
}

func (s *Storage) Delete(ctx context.Context, namespace string) error {
	return s.client.Del(ctx, snapshotKey(s.cfg.KeyPrefix, namespace)).Err()
}
