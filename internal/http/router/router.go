package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-admission/internal/http/handlers"
	mw "service-admission/internal/http/middleware"
	"service-admission/internal/http/middleware/ratelimit"
	"service-admission/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// The admission middleware guards application routes; /metrics stays outside
// of it so scrapes are never rate limited.
func New(logger logx.Logger, h *handlers.Handlers, admit *ratelimit.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(mw.Observability(logger))

	r.Group(func(gr chi.Router) {
		gr.Use(admit.Handler())
		gr.Get("/ping", h.Ping)
		gr.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
