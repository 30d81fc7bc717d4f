package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Healthcheck returns a closure that pings the Redis server, shaped for
// health check registries that expect func(context.Context) error.
// A nil client yields a closure that always reports the violated contract.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	if _, err := guard.NotNil(client, "client"); err != nil {
		return func(context.Context) error {
			return errors.Join(ErrHealthcheckFailed, err)
		}
	}
	return func(ctx context.Context) error {
		if _, err := client.Ping(ctx).Result(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
