package app

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"tripcore.trainlog.org/internal/middleware"
)

// Routes registers every endpoint and wraps the router with the Sentry and
// security header middlewares. ctx bounds the lifetime of the cached
// metrics handler.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.errorResponse(w, http.StatusNotFound, "the requested resource could not be found")
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodPost, "/v1/search/rank", app.rankHandler)
	router.HandlerFunc(http.MethodPost, "/v1/search/match", app.matchHandler)
	router.HandlerFunc(http.MethodGet, "/v1/stations/search", app.stationSearchHandler)
	router.HandlerFunc(http.MethodPost, "/v1/sessions/:id/visits", app.recordVisitHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/sessions/:id", app.endSessionHandler)

	router.HandlerFunc(http.MethodPost, "/v1/path/summary", app.pathSummaryHandler)
	router.HandlerFunc(http.MethodGet, "/v1/duration", app.durationHandler)
	router.HandlerFunc(http.MethodPost, "/v1/gpx", app.gpxHandler)
	router.HandlerFunc(http.MethodPost, "/v1/carbon", app.carbonHandler)

	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, app.Config.MetricsTTL))

	return middleware.SecurityHeaders(middleware.SentryMiddleware(router))
}
