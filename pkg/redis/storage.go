package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Storage is a small key-value wrapper around a Redis client with fail-fast
// parameter contracts: blank keys are rejected instead of silently ignored.
type Storage struct {
	db            redis.UniversalClient
	scanBatchSize int64
}

// NewStorage creates a Storage with the default scan batch size of 1000.
func NewStorage(redisClient redis.UniversalClient) *Storage {
	return &Storage{
		db:            redisClient,
		scanBatchSize: 1000,
	}
}

// NewStorageWithConfig creates a Storage with the batch size from cfg.
func NewStorageWithConfig(redisClient redis.UniversalClient, cfg Config) *Storage {
	return &Storage{
		db:            redisClient,
		scanBatchSize: int64(cfg.ScanBatchSize),
	}
}

// Get returns the value stored under key. Missing values yield (nil, nil);
// a blank key is a contract violation.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if _, err := guard.NotNilNotEmpty(&key, "key"); err != nil {
		return nil, err
	}
	val, err := s.db.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

// Set stores key-value with expiration. Zero duration means no expiration.
func (s *Storage) Set(ctx context.Context, key string, val []byte, exp time.Duration) error {
	if _, err := guard.NotNilNotEmpty(&key, "key"); err != nil {
		return err
	}
	if _, err := guard.NotNil(val, "val"); err != nil {
		return err
	}
	return s.db.Set(ctx, key, val, exp).Err()
}

// Delete removes a key. A blank key is a contract violation.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := guard.NotNilNotEmpty(&key, "key"); err != nil {
		return err
	}
	return s.db.Del(ctx, key).Err()
}

// Reset clears ALL keys using FLUSHDB. CAUTION: affects entire Redis database.
func (s *Storage) Reset(ctx context.Context) error {
	return s.db.FlushDB(ctx).Err()
}

// Close terminates the Redis connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Conn returns the underlying Redis client for advanced operations.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}

// Keys returns all database keys using SCAN to avoid blocking Redis.
func (s *Storage) Keys(ctx context.Context) ([][]byte, error) {
	keys := make([][]byte, 0, 1000)
	var cursor uint64
	var err error

	for {
		var batch []string

		if batch, cursor, err = s.db.Scan(ctx, cursor, "*", s.scanBatchSize).Result(); err != nil {
			return nil, err
		}

		for _, key := range batch {
			keys = append(keys, []byte(key))
		}

		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return nil, nil
	}

	return keys, nil
}
