package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	handlers "github.com/jcooper22-22/extreme-day-trip-finder/internal/http"
	mid "github.com/jcooper22-22/extreme-day-trip-finder/internal/middleware"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/obs"
)

func GetRoutes(h *handlers.Handler, metrics *obs.Metrics, logger *slog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	// Useful built-in middlewares
	r.Use(middleware.RealIP)    // proper client IP extraction
	r.Use(middleware.RequestID) // sets request ID header
	r.Use(middleware.Recoverer) // built-in recoverer to avoid panics taking server down

	// our custom middlewares: logging, metrics & timeout. A search is many
	// sequential fare API calls, so the request budget is generous.
	r.Use(mid.MetricsMiddleware(metrics))
	r.Use(mid.LoggingMiddleware(logger))
	r.Use(mid.TimeoutMiddleware(2 * time.Minute))

	// endpoints
	r.Get("/search", h.Search)
	r.Get("/results", h.Results)
	r.Get("/airports", h.Airports)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         int((12 * time.Hour).Seconds()),
	})
	return c.Handler(r)
}
