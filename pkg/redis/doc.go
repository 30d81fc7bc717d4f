// Package redis provides convenient helpers for connecting to a Redis server
// with fail-fast configuration contracts.
//
// The package wraps the go-redis client and adds:
//
//   - Robust Connect which checks configuration contracts up front and then
//     retries the connection using the supplied configuration.
//   - A thin Storage key-value wrapper with guarded keys: blank keys are
//     rejected with a parameter error instead of being silently ignored.
//   - Health-check helpers to integrate Redis into HTTP or gRPC liveness /
//     readiness probes.
//
// Configuration is described by the Config struct whose fields can be
// populated from environment variables via the config package.
//
// # Usage
//
// Import the package:
//
//	import "github.com/guardkit/guardkit/pkg/redis"
//
// Create configuration (most projects rely on env parsing):
//
//	cfg := redis.Config{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  5 * time.Second,
//	    ConnectTimeout: 30 * time.Second,
//	}
//
// Connect with auto-retry:
//
//	ctx := context.Background()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
// Wrap the client with the Storage helper if you need a simple key/value store:
//
//	store := redis.NewStorage(client)
//	if err := store.Set(ctx, "foo", []byte("bar"), 0); err != nil {
//	    log.Fatal(err)
//	}
//
// Register a health-check in your observability stack:
//
//	checker := redis.Healthcheck(client)
//	if err := checker(ctx); err != nil {
//	    // redis is not healthy
//	}
//
// # Errors
//
// The package defines several sentinel errors (e.g. ErrRedisNotReady) that
// wrap the underlying go-redis errors using errors.Join. Contract violations
// unwrap to the guard package kinds, so errors.Is works for both.
package redis
