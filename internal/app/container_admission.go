package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-admission/internal/admission"
	"service-admission/internal/config"
	"service-admission/internal/http/middleware/ratelimit"
	"service-admission/internal/logx"
	"service-admission/internal/metrics"
)

func newAdmissionClock() admission.Clock {
	return admission.WallClock{}
}

func newLimiter(cfg *config.Config, clock admission.Clock) *admission.Limiter {
	return admission.New(clock, cfg.RateLimit.Limit, cfg.RateLimit.Ticks)
}

func newAdmitter(cfg *config.Config, limiter *admission.Limiter) ratelimit.Admitter {
	if !cfg.RateLimit.Enabled {
		return ratelimit.NopAdmitter{}
	}
	return limiter
}

type deniedCounterOut struct {
	dig.Out
	Counter prometheus.Counter `name:"admission_denied_total"`
}

func newDeniedCounter(cfg *config.Config, limiter *admission.Limiter) deniedCounterOut {
	counter := metrics.NewAdmissionDeniedTotal()
	if cfg.RateLimit.Enabled {
		// Already-registered errors only happen when tests build several
		// containers against the default registry.
		_ = prometheus.Register(counter)
		_ = prometheus.Register(metrics.NewTrackedKeys(func() float64 {
			return float64(limiter.Keys())
		}))
	}
	return deniedCounterOut{Counter: counter}
}

type admissionMiddlewareIn struct {
	dig.In
	Logger   logx.Logger
	Counter  prometheus.Counter `name:"admission_denied_total"`
	Admitter ratelimit.Admitter
}

func newAdmissionMiddleware(in admissionMiddlewareIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Admitter)
}

func registerAdmission(container *dig.Container) error {
	return provideAll(container,
		newAdmissionClock,
		newLimiter,
		newAdmitter,
		newDeniedCounter,
		newAdmissionMiddleware,
	)
}
