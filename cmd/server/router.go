package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/excuse-api/internal/api"
	apiMiddleware "github.com/phrazzld/excuse-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	if app.metrics != nil {
		r.Use(apiMiddleware.Metrics(app.metrics))
	}

	excuseHandler := api.NewExcuseHandler(app.components.Invoker)

	r.Route("/api", func(r chi.Router) {
		r.Post("/excuses", excuseHandler.GenerateExcuse)
		r.Get("/excuses/vague", excuseHandler.GenerateVague)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	}

	return otelhttp.NewHandler(r, "http")
}
