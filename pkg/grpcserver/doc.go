// Package grpcserver provides a lightweight wrapper around google.golang.org/grpc
// that adds listener creation, the standard health service, graceful shutdown,
// and structured request logging via slog.
//
// The core type is Server which owns the grpc.Server life-cycle:
//
//   - Graceful Shutdown – Run blocks until the context is cancelled or an
//     interrupt/TERM signal is received, flips the health service to
//     NOT_SERVING, and drains in-flight RPCs within a configurable deadline
//     before forcing a stop.
//
//   - Functional Options – Construction is done through New or NewFromConfig
//     together with Option helpers such as WithAddr, WithReflection and
//     WithLogger.
//
//   - Health Service – the grpc_health_v1 service is registered on every
//     server and reports SERVING once the listener is bound, so Kubernetes
//     gRPC probes and load balancers work without extra wiring.
//
//   - Request Logging – RequestLoggerInterceptor resolves the x-request-id
//     metadata value (generating a UUID when absent), stores it along with a
//     request-scoped logger in the handler context, and logs each RPC outcome
//     at a level derived from the status code.
//
// # Usage
//
//	import (
//		"context"
//
//		"google.golang.org/grpc"
//
//		"github.com/guardkit/guardkit/pkg/grpcserver"
//	)
//
//	func main() {
//		srv := grpcserver.New(
//			grpcserver.WithAddr(":50051"),
//			grpcserver.WithReflection(),
//		)
//
//		err := srv.Run(context.Background(), func(r grpc.ServiceRegistrar) {
//			flagspb.RegisterFlagServiceServer(r, flagService)
//		})
//		if err != nil {
//			slog.Error("server stopped", "err", err)
//		}
//	}
//
// # Error Handling
//
// Run wraps start failures with ErrStart, including a nil register callback
// which surfaces the guard missing-value error. Shutdown returns ErrShutdown
// wrapped with the cause when the graceful window elapses and the server had
// to be stopped forcefully.
package grpcserver
