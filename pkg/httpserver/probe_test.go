package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardkit/guardkit/pkg/guard"
	httpserver "github.com/guardkit/guardkit/pkg/httpserver"
)

type readinessBody struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func probeGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	h.ServeHTTP(rec, req)
	return rec
}

func decodeReadiness(t *testing.T, rec *httptest.ResponseRecorder) readinessBody {
	t.Helper()
	var body readinessBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestProbeRouterLiveness(t *testing.T) {
	t.Parallel()
	router := httpserver.ProbeRouter(context.Background(), nil)

	rec := probeGet(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), "request id not echoed")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-cache", "probe responses must not be cached")
}

func TestProbeRouterReadiness(t *testing.T) {
	t.Parallel()

	t.Run("ready with no checks registered", func(t *testing.T) {
		t.Parallel()
		router := httpserver.ProbeRouter(context.Background(), nil)

		rec := probeGet(t, router, "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeReadiness(t, rec)
		assert.Equal(t, "READY", body.Status)
		assert.Empty(t, body.Components)
	})

	t.Run("reports each component up when all checks pass", func(t *testing.T) {
		t.Parallel()
		ok := func(context.Context) error { return nil }
		router := httpserver.ProbeRouter(context.Background(), nil,
			httpserver.WithReadinessCheck("postgres", ok),
			httpserver.WithReadinessCheck("redis", ok),
		)

		rec := probeGet(t, router, "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		body := decodeReadiness(t, rec)
		assert.Equal(t, "READY", body.Status)
		assert.Equal(t, map[string]string{"postgres": "up", "redis": "up"}, body.Components)
	})

	t.Run("not ready when a check fails", func(t *testing.T) {
		t.Parallel()
		router := httpserver.ProbeRouter(context.Background(), nil,
			httpserver.WithReadinessCheck("postgres", func(context.Context) error { return nil }),
			httpserver.WithReadinessCheck("redis", func(context.Context) error {
				return errors.New("connection refused")
			}),
		)

		rec := probeGet(t, router, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeReadiness(t, rec)
		assert.Equal(t, "NOT_READY", body.Status)
		assert.Equal(t, "up", body.Components["postgres"])
		assert.Equal(t, "down: connection refused", body.Components["redis"])
	})

	t.Run("liveness stays up while readiness is degraded", func(t *testing.T) {
		t.Parallel()
		router := httpserver.ProbeRouter(context.Background(), nil,
			httpserver.WithReadinessCheck("postgres", func(context.Context) error {
				return errors.New("connection refused")
			}),
		)

		assert.Equal(t, http.StatusServiceUnavailable, probeGet(t, router, "/readyz").Code)
		assert.Equal(t, http.StatusOK, probeGet(t, router, "/healthz").Code)
	})
}

func TestProbeRouterRunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	// Each check blocks until the other has started. Sequential execution
	// would stall until the check timeout and report both components down.
	first := make(chan struct{})
	second := make(chan struct{})
	router := httpserver.ProbeRouter(context.Background(), nil,
		httpserver.WithCheckTimeout(2*time.Second),
		httpserver.WithReadinessCheck("first", func(ctx context.Context) error {
			close(first)
			select {
			case <-second:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
		httpserver.WithReadinessCheck("second", func(ctx context.Context) error {
			close(second)
			select {
			case <-first:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
	)

	rec := probeGet(t, router, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", decodeReadiness(t, rec).Status)
}

func TestProbeRouterCheckTimeout(t *testing.T) {
	t.Parallel()
	router := httpserver.ProbeRouter(context.Background(), nil,
		httpserver.WithCheckTimeout(50*time.Millisecond),
		httpserver.WithReadinessCheck("stuck", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
	)

	rec := probeGet(t, router, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeReadiness(t, rec)
	assert.Equal(t, "NOT_READY", body.Status)
	assert.Equal(t, "down: context deadline exceeded", body.Components["stuck"])
}

func TestProbeRouterNotReadyAfterContextCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	router := httpserver.ProbeRouter(ctx, nil,
		httpserver.WithReadinessCheck("postgres", func(ctx context.Context) error {
			return ctx.Err()
		}),
	)
	cancel()

	rec := probeGet(t, router, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", decodeReadiness(t, rec).Status)
}

func TestProbeRouterCustomPaths(t *testing.T) {
	t.Parallel()
	router := httpserver.ProbeRouter(context.Background(), nil,
		httpserver.WithLivenessPath("/livez"),
		httpserver.WithReadinessPath("/ready"),
	)

	assert.Equal(t, http.StatusOK, probeGet(t, router, "/livez").Code)
	assert.Equal(t, http.StatusOK, probeGet(t, router, "/ready").Code)
	assert.Equal(t, http.StatusNotFound, probeGet(t, router, "/healthz").Code)
	assert.Equal(t, http.StatusNotFound, probeGet(t, router, "/readyz").Code)
}

func TestProbeOptionPanics(t *testing.T) {
	t.Parallel()
	check := func(context.Context) error { return nil }
	tests := []struct {
		name string
		fn   func()
		kind error
	}{
		{"blank liveness path", func() { httpserver.WithLivenessPath(" ") }, guard.ErrInvalidArgument},
		{"blank readiness path", func() { httpserver.WithReadinessPath("") }, guard.ErrInvalidArgument},
		{"zero check timeout", func() { httpserver.WithCheckTimeout(0) }, guard.ErrInvalidArgument},
		{"blank check name", func() { httpserver.WithReadinessCheck("", check) }, guard.ErrInvalidArgument},
		{"nil check func", func() { httpserver.WithReadinessCheck("postgres", nil) }, guard.ErrMissingValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value is not an error")
				assert.ErrorIs(t, err, tt.kind)
			}()
			tt.fn()
		})
	}
}
