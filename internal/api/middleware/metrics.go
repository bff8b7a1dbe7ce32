package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/excuse-api/internal/platform/metrics"
)

// unmatchedRoute labels requests that no route pattern matched, which keeps
// raw paths out of the label set.
const unmatchedRoute = "UNMATCHED"

// Metrics records request counts, latency and in-flight requests. It must be
// mounted inside a chi router so the route pattern is known when the request
// finishes.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.HTTPInflightRequests.Inc()
			defer m.HTTPInflightRequests.Dec()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				route := unmatchedRoute
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					if p := rctx.RoutePattern(); p != "" {
						route = p
					}
				}
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
				m.HTTPRequestDurationSeconds.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
