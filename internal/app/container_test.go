package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"service-admission/internal/admission"
	"service-admission/internal/config"
	"service-admission/internal/http/middleware/ratelimit"
	"service-admission/internal/logx"
)

func testConfig(limit int, ticks int64, enabled bool) *config.Config {
	return &config.Config{
		Port: 8080,
		RateLimit: config.RateLimit{
			Enabled: enabled,
			Limit:   limit,
			Ticks:   ticks,
		},
	}
}

func setupTestContainer(t *testing.T, cfg *config.Config) *dig.Container {
	t.Helper()

	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", func() logx.Logger { return logx.Nop() }},
		{"config", func() *config.Config { return cfg }},
	}
	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, registerAdmission(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func TestContainer_ProvidesServerAndMiddleware(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, testConfig(2, 1, false))

	err := c.Invoke(func(srv *http.Server, m *ratelimit.Middleware) {
		require.NotNil(t, srv)
		require.Equal(t, ":8080", srv.Addr)
		require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
		require.Greater(t, srv.ReadTimeout, time.Duration(0))
		require.Greater(t, srv.WriteTimeout, time.Duration(0))
		require.Greater(t, srv.IdleTimeout, time.Duration(0))
		require.NotNil(t, m)
	})
	require.NoError(t, err)
}

func TestContainer_DisabledRateLimit_UsesNopAdmitter(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, testConfig(0, 1, false))

	err := c.Invoke(func(a ratelimit.Admitter) {
		_, ok := a.(ratelimit.NopAdmitter)
		require.True(t, ok, "expected NopAdmitter when disabled, got %T", a)
	})
	require.NoError(t, err)
}

func TestContainer_EnabledRateLimit_WiredEndToEnd(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, testConfig(1, 60_000, true))

	err := c.Invoke(func(mux http.Handler) {
		do := func() int {
			r := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.RemoteAddr = "3.3.3.3:1000"
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)
			return w.Code
		}
		require.Equal(t, http.StatusOK, do())
		require.Equal(t, http.StatusTooManyRequests, do())
	})
	require.NoError(t, err)
}

func TestContainer_AdmitterUsesConfiguredLimiter(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, testConfig(3, 10, true))

	err := c.Invoke(func(a ratelimit.Admitter, l *admission.Limiter) {
		require.Same(t, l, a, "enabled config must hand the real limiter to the middleware")
	})
	require.NoError(t, err)
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_Error(t *testing.T) {
	t.Parallel()

	c := dig.New()

	// Not a function: dig must reject it.
	err := provideAll(c, 42)
	require.Error(t, err)
}
