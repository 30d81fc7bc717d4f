package grpcserver

import (
	"log/slog"
	"time"

	"google.golang.org/grpc"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Option configures the gRPC server.
type Option func(*config)

// WithAddr sets the address the server listens on.
func WithAddr(addr string) Option {
	a := guard.MustNotNilNotEmpty(&addr, "addr")
	return func(c *config) { c.addr = a }
}

// WithShutdownTimeout sets the time allowed for in-flight RPCs to drain
// before the server is stopped forcefully.
func WithShutdownTimeout(d time.Duration) Option {
	guard.MustLowerBound(d, "d", time.Millisecond)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithReflection registers the server reflection service so tools like
// grpcurl can inspect the API without the proto files.
func WithReflection() Option {
	return func(c *config) { c.reflection = true }
}

// WithServerOption appends raw grpc.ServerOption values, such as transport
// credentials or message size limits.
func WithServerOption(opts ...grpc.ServerOption) Option {
	return func(c *config) { c.serverOpts = append(c.serverOpts, opts...) }
}

// WithStartHook registers a callback that runs when the server begins serving.
func WithStartHook(h func(*slog.Logger)) Option {
	guard.MustNotNil(h, "h")
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook registers a callback that runs after the server shuts down.
func WithStopHook(h func(*slog.Logger)) Option {
	guard.MustNotNil(h, "h")
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
