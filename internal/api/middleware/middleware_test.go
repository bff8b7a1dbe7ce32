package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/excuse-api/internal/api/middleware"
	"github.com/phrazzld/excuse-api/internal/api/shared"
	"github.com/phrazzld/excuse-api/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	var seen string
	handler := middleware.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	t.Run("generates_trace_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, shared.ValidTraceID(seen))
		assert.Equal(t, seen, w.Header().Get(shared.TraceIDHeader))
	})

	t.Run("reuses_valid_caller_id", func(t *testing.T) {
		id := shared.NewTraceID()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(shared.TraceIDHeader, id)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, id, seen)
		assert.Equal(t, id, w.Header().Get(shared.TraceIDHeader))
	})

	t.Run("replaces_invalid_caller_id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(shared.TraceIDHeader, "<script>")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.NotEqual(t, "<script>", seen)
		assert.True(t, shared.ValidTraceID(seen))
	})
}

func TestMetrics(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Post("/api/excuses", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/excuses", nil),
		httptest.NewRequest(http.MethodGet, "/health", nil),
		httptest.NewRequest(http.MethodGet, "/health", nil),
		httptest.NewRequest(http.MethodGet, "/nope/123", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/excuses", "400")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPInflightRequests))
}
