package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/mlb-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/mlb-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/mlb-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/mlb-stats-service/internal/metrics"
)

// NewRouter registers HTTP routes on a chi router. Every page route is one
// fresh upstream fan-out.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder, corsOrigins []string) nethttp.Handler {
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/home", handler.Home)
	r.Get("/teams/{teamID}", handler.Team)
	r.Get("/schedule", handler.Schedule)
	r.Get("/standings", handler.Standings)
	r.Get("/stats", handler.Stats)
	return r
}
