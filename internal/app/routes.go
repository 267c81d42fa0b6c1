package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"busyness.nyctaxi.org/internal/middleware"
	"busyness.nyctaxi.org/internal/views"
)

// Routes builds the application's http.Handler.
//
// Registered routes:
//   - GET /                   landing page listing the loaded dates
//   - GET /api/busyness       busyness records for a date and period
//   - GET /api/dates          distinct dates as JSON
//   - GET /v1/healthcheck     health and readiness
//   - GET /metrics            cached Prometheus exposition
//   - GET /static/*filepath   embedded page assets
//
// Each application route is instrumented with request metrics. The router is
// wrapped, innermost first, with request ids, Sentry and security headers.
// ctx bounds the background refresh of the metrics cache.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	handle := func(path string, h http.HandlerFunc) {
		router.Handler(http.MethodGet, path, middleware.Instrument(path, h))
	}

	handle("/", app.indexHandler)
	handle("/api/busyness", app.busynessHandler)
	handle("/api/dates", app.datesHandler)
	handle("/v1/healthcheck", app.healthcheckHandler)

	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, 10*time.Second))
	router.ServeFiles("/static/*filepath", views.StaticFS())

	handler := middleware.RequestID(router)
	handler = middleware.SentryMiddleware(handler)
	return middleware.SecurityHeaders(handler)
}
