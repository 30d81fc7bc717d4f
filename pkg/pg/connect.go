package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Connect establishes a PostgreSQL connection pool with retry logic so
// transient startup races do not take the service down. Configuration
// contracts are checked before the first dial attempt.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if _, err := guard.NotNilNotEmpty(&cfg.ConnectionString, "cfg.ConnectionString"); err != nil {
		return nil, errors.Join(ErrEmptyConnectionString, err)
	}
	if _, err := guard.LowerBound(cfg.RetryAttempts, "cfg.RetryAttempts", 1); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if _, err := guard.LowerBound(cfg.MaxOpenConns, "cfg.MaxOpenConns", 1); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns
	connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	connConfig.MaxConnLifetime = cfg.MaxConnLifetime

	// Linear backoff: attempt 1 waits RetryInterval, attempt 2 waits 2x, attempt 3 waits 3x.
	// This prevents thundering herd problems when multiple services restart simultaneously.
	for i := range cfg.RetryAttempts {
		conn, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		// Verify connection with actual database ping to catch authentication and permission issues.
		if err := conn.Ping(ctx); err != nil {
			conn.Close()
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return conn, nil
	}

	return nil, ErrFailedToOpenDBConnection
}
