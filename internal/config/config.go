// Package config reads service configuration from the environment, with a
// .env file honored in development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	FareAPIBaseURL     string
	AirportsCSV        string
	RyanairAirportsCSV string

	ResultTTL time.Duration
	CacheTTL  time.Duration

	FetchWorkers int
	MatchWorkers int

	RateLimitPerMinute int

	AllowedOrigins []string
}

// Load reads the environment. Every value has a default; a missing .env
// file is fine in production where vars are set directly.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getenv("PORT", "8080"),
		FareAPIBaseURL:     getenv("FARE_API_BASE_URL", ""),
		AirportsCSV:        getenv("AIRPORTS_CSV", "airports.csv"),
		RyanairAirportsCSV: getenv("RYANAIR_AIRPORTS_CSV", "ryanair_airports.csv"),
		ResultTTL:          getduration("RESULT_TTL", 30*time.Minute),
		CacheTTL:           getduration("CACHE_TTL", 5*time.Minute),
		FetchWorkers:       getint("FETCH_WORKERS", 4),
		MatchWorkers:       getint("MATCH_WORKERS", 8),
		RateLimitPerMinute: getint("RATE_LIMIT_PER_MINUTE", 10),
		AllowedOrigins:     getlist("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getduration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getlist(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
