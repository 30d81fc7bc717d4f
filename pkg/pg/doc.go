// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver. It offers a thin abstraction around connection pooling,
// migrations, health checks, and common error helpers so that applications can
// bootstrap a resilient database layer with only a few lines of code.
//
// The package purposefully keeps a very small API surface while relying on
// battle-tested upstream libraries (pgx/v5 for connectivity and goose/v3 for
// schema migrations) so that callers are never locked-in and can freely extend
// the behaviour where needed.
//
// # Architecture
//
// At its core the package exposes three cooperating building blocks:
//
//   - Config: a declarative struct whose fields are populated from environment
//     variables via the config package. It controls connection pool limits,
//     health-check cadence and migration paths.
//
//   - Connect: opens a *pgxpool.Pool based on Config, retrying with linear
//     backoff until the database becomes available. Connection string, retry
//     and pool-size contracts are guarded before the first dial, so a
//     misconfigured service fails fast with a parameter error instead of
//     spinning through useless retries.
//
//   - Migrate: runs goose database migrations against the same connection
//     pool, guaranteeing the schema is up-to-date before the service starts
//     serving traffic.
//
// # Usage
//
// Basic set-up using the default configuration:
//
//	package main
//
//	import (
//	    "context"
//	    "log/slog"
//
//	    "github.com/guardkit/guardkit/pkg/config"
//	    "github.com/guardkit/guardkit/pkg/pg"
//	)
//
//	func main() {
//	    var cfg pg.Config
//	    config.MustLoad(&cfg)
//
//	    ctx := context.Background()
//	    pool, err := pg.Connect(ctx, cfg)
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer pool.Close()
//
//	    if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	        panic(err)
//	    }
//
//	    // expose health endpoint
//	    health := pg.Healthcheck(pool)
//	    if err := health(ctx); err != nil {
//	        panic(err)
//	    }
//	}
//
// # Error Handling
//
// Contract violations unwrap to the guard package kinds, so callers can test
// for them with errors.Is. Convenience helpers such as [pg.IsDuplicateKeyError]
// or [pg.IsForeignKeyViolationError] unwrap errors returned by pgx/
// *pgconn.PgError and make error classification trivial inside business logic.
package pg
