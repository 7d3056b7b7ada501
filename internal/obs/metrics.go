package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	SearchesTotal       prometheus.Counter
	CacheHitsTotal      prometheus.Counter
	RateLimitDropsTotal prometheus.Counter
	TripsFoundTotal     prometheus.Counter

	FareAPIErrors       *prometheus.CounterVec
	FareAPILatency      *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// Create Prometheus collectors and register them
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "daytrip_searches_total",
			Help: "Total number of incoming day-trip search requests",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "daytrip_cache_hits_total",
			Help: "Number of cache hits for search results",
		}),
		RateLimitDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "daytrip_ratelimit_drops_total",
			Help: "Requests dropped due to rate limiting",
		}),
		TripsFoundTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "daytrip_trips_found_total",
			Help: "Day-trip pairings accepted across all searches",
		}),
		FareAPIErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fare_api_errors_total",
			Help: "Errors returned by the fare API, per endpoint",
		}, []string{"endpoint"},
		),
		FareAPILatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fare_api_latency_seconds",
				Help:    "Latency of fare API round trips",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	// Register metrics with Prometheus
	p.MustRegister(
		m.SearchesTotal,
		m.CacheHitsTotal,
		m.RateLimitDropsTotal,
		m.TripsFoundTotal,
		m.FareAPIErrors,
		m.FareAPILatency,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

// All increment helpers are nil-safe so the domain packages can run without
// a registry in tests.

func (m *Metrics) IncSearches() {
	if m == nil {
		return
	}
	m.SearchesTotal.Inc()
}

func (m *Metrics) IncCacheHits() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

func (m *Metrics) IncRateLimitDrops() {
	if m == nil {
		return
	}
	m.RateLimitDropsTotal.Inc()
}

func (m *Metrics) AddTripsFound(n int) {
	if m == nil {
		return
	}
	m.TripsFoundTotal.Add(float64(n))
}

func (m *Metrics) IncFareAPIError(endpoint string) {
	if m == nil {
		return
	}
	m.FareAPIErrors.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) ObserveFareAPILatency(endpoint string, seconds float64) {
	if m == nil {
		return
	}
	m.FareAPILatency.WithLabelValues(endpoint).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
