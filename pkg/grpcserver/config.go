package grpcserver

import "time"

type Config struct {
	Addr            string        `env:"GRPC_ADDR" envDefault:":50051"`          // Addr is the address the server listens on.
	ShutdownTimeout time.Duration `env:"GRPC_SHUTDOWN_TIMEOUT" envDefault:"10s"` // ShutdownTimeout is the time allowed for in-flight RPCs to drain.
	Reflection      bool          `env:"GRPC_REFLECTION" envDefault:"false"`     // Reflection enables the server reflection service.
}

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 3)

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	if cfg.Reflection {
		configOpts = append(configOpts, WithReflection())
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
