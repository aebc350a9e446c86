package ratelimit

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"service-admission/internal/admission"
	"service-admission/internal/logx"
)

// Middleware rejects requests the admission limiter denies.
type Middleware struct {
	logger   logx.Logger
	counter  prometheus.Counter
	admitter Admitter
}

// New creates the middleware. A nil admitter means no limiting.
func New(logger logx.Logger, counter prometheus.Counter, admitter Admitter) *Middleware {
	if admitter == nil {
		admitter = NopAdmitter{}
	}
	return &Middleware{
		logger:   logger,
		counter:  counter,
		admitter: admitter,
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			decision, err := m.admitter.TryAdd(ip)
			if err != nil {
				// Broken limiter state is a server fault, never a
				// rate-limit decision.
				m.logger.Error("admission check failed",
					logx.String("ip", ip),
					logx.Err(err),
				)
				writeBody(m.logger, w, http.StatusInternalServerError, `{"error":"internal error"}`)
				return
			}

			if decision != admission.Allow {
				if m.counter != nil {
					m.counter.Inc()
				}
				m.logger.Warn("rate limit exceeded",
					logx.String("ip", ip),
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", "1")
				writeBody(m.logger, w, http.StatusTooManyRequests, `{"error":"too many requests"}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeBody(logger logx.Logger, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		// The client may have dropped the connection.
		logger.Debug("admission response write failed", logx.Err(err))
	}
}

// clientIP extracts the admission key from the peer address. No
// normalization: the limiter compares keys by exact string equality.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
