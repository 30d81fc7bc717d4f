package grpcserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/guardkit/guardkit/pkg/guard"
)

type config struct {
	addr            string
	shutdownTimeout time.Duration
	reflection      bool
	logger          *slog.Logger
	serverOpts      []grpc.ServerOption
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

func defaultConfig() *config {
	return &config{
		addr:            ":50051",
		shutdownTimeout: 10 * time.Second,
	}
}

// Server wraps grpc.Server with listener creation, the standard health
// service, graceful shutdown and logging.
type Server struct {
	cfg    *config
	srv    *grpc.Server
	health *health.Server
	once   sync.Once
	mu     sync.Mutex
	closed bool
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newNoopLogger()
	}
	return &Server{cfg: cfg}
}

// Run starts the gRPC server and blocks until shutdown. The register
// callback attaches the caller's service implementations before the listener
// starts accepting traffic; the grpc_health_v1 health service is registered
// unconditionally and flips to SERVING once the listener is bound.
// It returns ErrStart wrapped with the underlying error if the server fails to start.
func (s *Server) Run(ctx context.Context, register func(grpc.ServiceRegistrar)) error {
	if _, err := guard.NotNil(register, "register"); err != nil {
		return errors.Join(ErrStart, err)
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	cfg := s.cfg
	serverOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(RequestLoggerInterceptor(cfg.logger)),
	}, cfg.serverOpts...)
	srv := grpc.NewServer(serverOpts...)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)

	register(srv)

	if cfg.reflection {
		reflection.Register(srv)
	}

	s.srv = srv
	s.health = healthSrv
	s.mu.Unlock()

	lis, err := net.Listen("tcp", cfg.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	for _, h := range cfg.startHooks {
		h(cfg.logger)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(lis) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-ctx.Done():
		_ = s.Shutdown(context.Background())
		runErr = <-errCh
	case <-stop:
		_ = s.Shutdown(context.Background())
		runErr = <-errCh
	case runErr = <-errCh:
	}
	signal.Stop(stop)

	if runErr != nil && !errors.Is(runErr, grpc.ErrServerStopped) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully before Run returns. The health
// service flips to NOT_SERVING first so load balancers drain traffic, then
// in-flight RPCs get the shutdown timeout to finish before the server is
// stopped forcefully. It is safe for repeated calls. A forced stop is
// reported wrapped with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		if s.srv == nil {
			return
		}
		if s.health != nil {
			s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			s.srv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			s.srv.Stop()
			<-done
			err = errors.Join(ErrShutdown, ctx.Err())
		}

		for _, h := range s.cfg.stopHooks {
			h(s.cfg.logger)
		}
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	})
	return err
}
