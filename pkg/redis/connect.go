package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Connect establishes a connection to a Redis server using the provided
// configuration. It attempts to connect multiple times based on the
// RetryAttempts config value, with a delay between attempts specified by
// RetryInterval. The whole handshake is bounded by ConnectTimeout.
//
// Configuration contracts are checked before any network activity:
// ErrEmptyConnectionURL for a blank URL, ErrInvalidConfig for retry counts
// below one. ErrFailedToParseRedisConnString reports an invalid URL and
// ErrRedisNotReady means all connection attempts failed.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if _, err := guard.NotNilNotEmpty(&cfg.ConnectionURL, "cfg.ConnectionURL"); err != nil {
		return nil, errors.Join(ErrEmptyConnectionURL, err)
	}
	if _, err := guard.LowerBound(cfg.RetryAttempts, "cfg.RetryAttempts", 1); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	// Bound the whole retry loop, not individual attempts
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	redisConnOpt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range cfg.RetryAttempts {
		redisClient := redis.NewClient(redisConnOpt)

		// Verify the connection is established before handing the client out.
		if err := redisClient.Ping(ctx).Err(); err == nil {
			return redisClient, nil
		}

		_ = redisClient.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		default:
			time.Sleep(cfg.RetryInterval)
		}
	}

	return nil, ErrRedisNotReady
}
