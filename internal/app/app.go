package app

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/airports"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/config"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/daytrip"
	handlers "github.com/jcooper22-22/extreme-day-trip-finder/internal/http"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/obs"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/results"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/routes"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/ryanair"
)

type App struct {
	Router  http.Handler
	Finder  *daytrip.Finder
	Store   *results.Store
	Metrics *obs.Metrics
	Logger  *slog.Logger
}

func SetAppConfig(cfg *config.Config) *App {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	registry, err := airports.Load(cfg.AirportsCSV, cfg.RyanairAirportsCSV)
	if err != nil {
		// The search itself only needs IATA codes; without the CSVs the
		// picker is empty and origins must be given as codes.
		logger.Warn("airport registry unavailable, name lookup disabled", "error", err)
		registry = airports.Empty()
	}

	customRegistry := prometheus.NewRegistry()
	metrics := obs.NewMetrics(customRegistry)

	var clientOpts []ryanair.Option
	if cfg.FareAPIBaseURL != "" {
		clientOpts = append(clientOpts, ryanair.WithBaseURL(cfg.FareAPIBaseURL))
	}
	client := ryanair.NewClient(clientOpts...)

	finder := daytrip.NewFinder(client, logger, metrics, cfg.FetchWorkers, cfg.MatchWorkers)
	cache := daytrip.NewCache(cfg.CacheTTL, metrics)
	svc := daytrip.NewService(finder, cache, 90*time.Second)
	rl := daytrip.NewIPRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	store := results.NewStore(cfg.ResultTTL)

	h := handlers.NewHandler(svc, store, registry, rl, metrics)
	router := routes.GetRoutes(h, metrics, logger, cfg.AllowedOrigins)

	return &App{
		Router:  router,
		Finder:  finder,
		Store:   store,
		Metrics: metrics,
		Logger:  logger,
	}
}
