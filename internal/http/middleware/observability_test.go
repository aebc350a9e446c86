package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	testlog "service-admission/internal/testutil"
)

func TestObservability_LogsRequestAndPassesThrough(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := Observability(rec.Logger())(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/ping", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusTeapot, w.Code)
	require.True(t, rec.Has("info", "http request"))

	entries := rec.Entries()
	require.Len(t, entries, 1)

	var status any
	for _, f := range entries[0].Fields {
		if f.Key == "status" {
			status = f.Value
		}
	}
	require.Equal(t, http.StatusTeapot, status)
}

func TestPathPattern_FallsBackToURLPath(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://example/raw/path", nil)
	require.Equal(t, "/raw/path", pathPattern(r))
}
