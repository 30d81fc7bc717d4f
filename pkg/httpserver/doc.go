// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health and readiness
// probes, and structured logging via slog.
//
// The core type is Server which embeds *http.Server behaviour and augments it
// with:
//
//   - Graceful Shutdown – Run blocks until the context is cancelled or an
//     interrupt/TERM signal is received and then shuts the server down using
//     http.Server.Shutdown with a configurable deadline.
//
//   - Functional Options – Construction is done through New or NewFromConfig
//     together with Option helpers such as WithAddr, WithReadTimeout and
//     WithLogger. This keeps the API stable while allowing incremental
//     features.
//
//   - Hooks – WithStartHook and WithStopHook let callers execute side-effects
//     around the server life-cycle.
//
//   - Probes – ProbeRouter builds a chi router exposing liveness and
//     readiness endpoints; HealthCheckHandler is the single-handler variant
//     for mounting on an existing router.
//
// # Architecture
//
// A Server holds an internal immutable *config generated from the supplied
// Option values. Once Run is called the underlying *http.Server instance is
// initialised (or the one provided by WithServer is reused) and started in its
// own goroutine. A signal listener waits for os.Interrupt or syscall.SIGTERM
// and invokes graceful shutdown. All public errors are wrapped with ErrStart
// and ErrShutdown sentinel errors so they can be inspected with errors.Is.
//
// ProbeRouter assembles a separate handler for observability traffic: the
// liveness route reports the process is serving, while the readiness route
// runs the checks registered via WithReadinessCheck concurrently and renders
// a JSON component status map. Registration contracts are enforced up front:
// check names cannot be blank and check functions cannot be nil.
//
// # Usage
//
//	import (
//		"context"
//		"log/slog"
//		"time"
//
//		"github.com/guardkit/guardkit/pkg/httpserver"
//		"github.com/guardkit/guardkit/pkg/pg"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		probes := httpserver.ProbeRouter(ctx, slog.Default(),
//			httpserver.WithReadinessCheck("postgres", pg.Healthcheck(pool)),
//		)
//
//		srv := httpserver.New(
//			httpserver.WithAddr(":8080"),
//			httpserver.WithShutdownTimeout(10*time.Second),
//		)
//
//		if err := srv.Run(ctx, probes); err != nil {
//			slog.Error("server stopped", "err", err)
//		}
//	}
//
// # Errors
//
// Run wraps all listen errors with ErrStart, while Shutdown wraps underlying
// shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
// Violated probe registration contracts panic with guard errors carrying
// guard.ErrMissingValue or guard.ErrInvalidArgument.
package httpserver
