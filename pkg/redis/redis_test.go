package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardkit/guardkit/pkg/guard"
	"github.com/guardkit/guardkit/pkg/redis"
)

func validConfig() redis.Config {
	return redis.Config{
		ConnectionURL:  "redis://localhost:6379/0",
		RetryAttempts:  3,
		RetryInterval:  time.Millisecond,
		ConnectTimeout: time.Second,
		ScanBatchSize:  1000,
	}
}

func TestConnect_ConfigContracts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects blank connection URL", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ConnectionURL = " "

		_, err := redis.Connect(ctx, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("rejects zero retry attempts", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.RetryAttempts = 0

		_, err := redis.Connect(ctx, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrInvalidConfig)
	})

	t.Run("rejects unparseable connection URL", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ConnectionURL = "not-a-redis-url"

		_, err := redis.Connect(ctx, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})
}

func TestHealthcheck_NilClient(t *testing.T) {
	t.Parallel()

	check := redis.Healthcheck(nil)
	require.NotNil(t, check)

	err := check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	assert.ErrorIs(t, err, guard.ErrMissingValue)
}

func TestStorage_KeyContracts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := redis.NewStorage(nil)

	t.Run("get rejects blank key", func(t *testing.T) {
		t.Parallel()
		_, err := store.Get(ctx, "  ")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("set rejects blank key", func(t *testing.T) {
		t.Parallel()
		err := store.Set(ctx, "", []byte("v"), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("set rejects nil value", func(t *testing.T) {
		t.Parallel()
		err := store.Set(ctx, "k", nil, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("delete rejects blank key", func(t *testing.T) {
		t.Parallel()
		err := store.Delete(ctx, " ")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("reports violated parameter name", func(t *testing.T) {
		t.Parallel()
		_, err := store.Get(ctx, "")
		var gerr *guard.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "key", gerr.Param)
	})
}
