package daytrip

import "time"

const (
	// MinLayover is the enforced floor between outbound arrival and return
	// departure. A pairing at exactly MinLayover is accepted.
	MinLayover = 4 * time.Hour

	// ReturnSearchFloor is the earliest-return bound the search nominally
	// targets (outbound arrival + 6h). The fare API is only queried by
	// calendar day, so this bound is never applied to its results;
	// MinLayover is what actually governs acceptance. Both are kept as
	// named constants so consumers can pick either threshold.
	ReturnSearchFloor = 6 * time.Hour

	// Outbound fares are quoted in GBP (the broad search pins the en-gb
	// market), return fares in EUR. Sums of the two are taken without
	// conversion; Trip.CurrencyMismatch flags it.
	returnFareCurrency = "EUR"

	fareTimeLayout = "2006-01-02T15:04:05"
	dayLayout      = "2006-01-02"
)

// Leg is one consumed fare. Raw ISO-8601 timestamps and their display
// renderings are separate fields; the raw values are never overwritten.
type Leg struct {
	FromIATA         string  `json:"from_iata"`
	FromName         string  `json:"from_name"`
	ToIATA           string  `json:"to_iata"`
	ToName           string  `json:"to_name"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	DepartureDisplay string  `json:"departure_display,omitempty"`
	ArrivalDisplay   string  `json:"arrival_display,omitempty"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
}

// Trip is an accepted same-day round trip. TotalPrice is the raw sum of
// both legs, rounded to two decimals; Currency reports the return leg's
// code, which may differ from the outbound's (CurrencyMismatch).
type Trip struct {
	Destination      string  `json:"destination"`
	DestinationIATA  string  `json:"destination_iata"`
	Outbound         Leg     `json:"outbound"`
	Return           Leg     `json:"return"`
	TotalPrice       float64 `json:"total_price"`
	Currency         string  `json:"currency"`
	CurrencyMismatch bool    `json:"currency_mismatch,omitempty"`
}

type Result struct {
	Stats struct {
		DaysQueried   int    `json:"days_queried"`
		DaysFailed    int    `json:"days_failed"`
		OutboundFares int    `json:"outbound_fares"`
		TripsFound    int    `json:"trips_found"`
		Cache         string `json:"cache"`
		DurationMs    int64  `json:"duration_ms"`
	} `json:"stats"`
	Trips []Trip `json:"trips"`
}

// RateLimiter gates searches per client IP.
type RateLimiter interface {
	Allow(ip string) bool
}
