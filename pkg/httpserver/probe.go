package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/guardkit/guardkit/pkg/guard"
	"github.com/guardkit/guardkit/pkg/logger"
	"github.com/guardkit/guardkit/pkg/requestid"
)

// ReadinessCheck reports whether a single dependency of the service is usable.
// A nil return marks the component up.
type ReadinessCheck func(context.Context) error

type namedCheck struct {
	name  string
	check ReadinessCheck
}

type probeConfig struct {
	livenessPath  string
	readinessPath string
	checkTimeout  time.Duration
	checks        []namedCheck
}

// ProbeOption adjusts how ProbeRouter assembles the probe endpoints.
type ProbeOption func(*probeConfig)

// WithLivenessPath overrides the default /healthz liveness route.
func WithLivenessPath(path string) ProbeOption {
	p := guard.MustNotNilNotEmpty(&path, "path")
	return func(c *probeConfig) { c.livenessPath = p }
}

// WithReadinessPath overrides the default /readyz readiness route.
func WithReadinessPath(path string) ProbeOption {
	p := guard.MustNotNilNotEmpty(&path, "path")
	return func(c *probeConfig) { c.readinessPath = p }
}

// WithCheckTimeout bounds a single readiness evaluation. All registered
// checks share the deadline.
func WithCheckTimeout(d time.Duration) ProbeOption {
	guard.MustLowerBound(d, "d", time.Millisecond)
	return func(c *probeConfig) { c.checkTimeout = d }
}

// WithReadinessCheck registers a named dependency check. The readiness
// endpoint runs every registered check on each request and reports the
// service unavailable if any of them fail.
func WithReadinessCheck(name string, check ReadinessCheck) ProbeOption {
	n := guard.MustNotNilNotEmpty(&name, "name")
	guard.MustNotNil(check, "check")
	return func(c *probeConfig) {
		c.checks = append(c.checks, namedCheck{name: n, check: check})
	}
}

// ProbeRouter builds an http.Handler serving Kubernetes-style probes:
// a liveness route answering ALIVE as long as the process accepts requests,
// and a readiness route that evaluates the registered checks concurrently
// and renders a JSON document with the overall status and the state of each
// component. Checks receive a child of ctx so in-flight probes stop once the
// application context is cancelled. A nil log falls back to a noop logger.
func ProbeRouter(ctx context.Context, log *slog.Logger, opts ...ProbeOption) http.Handler {
	cfg := &probeConfig{
		livenessPath:  "/healthz",
		readinessPath: "/readyz",
		checkTimeout:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if log == nil {
		log = newNoopLogger()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(requestid.Middleware)

	r.Get(cfg.livenessPath, func(w http.ResponseWriter, req *http.Request) {
		render.PlainText(w, req, "ALIVE")
	})
	r.Get(cfg.readinessPath, readinessHandler(ctx, log, cfg))

	return r
}

// probeStatus is the JSON document returned by the readiness route.
type probeStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

func readinessHandler(ctx context.Context, log *slog.Logger, cfg *probeConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		checkCtx, cancel := context.WithTimeout(ctx, cfg.checkTimeout)
		defer cancel()

		var (
			mu       sync.Mutex
			wg       sync.WaitGroup
			degraded bool
		)
		components := make(map[string]string, len(cfg.checks))

		for _, nc := range cfg.checks {
			wg.Add(1)
			go func(nc namedCheck) {
				defer wg.Done()
				err := nc.check(checkCtx)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.WarnContext(req.Context(), "Readiness check failed",
						logger.Component(nc.name), logger.Error(err))
					components[nc.name] = "down: " + err.Error()
					degraded = true
					return
				}
				components[nc.name] = "up"
			}(nc)
		}
		wg.Wait()

		status := "READY"
		if degraded {
			status = "NOT_READY"
			render.Status(req, http.StatusServiceUnavailable)
		}
		render.JSON(w, req, probeStatus{Status: status, Components: components})
	}
}
