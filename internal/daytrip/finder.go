// Package daytrip finds same-day round trips: every outbound fare from an
// origin airport over a date range, paired with a qualifying return flight
// on the same calendar day, filtered by layover and budget and sorted by
// total price.
package daytrip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/obs"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/ryanair"
)

// ErrInvalidBudget is the finder's one hard failure: a budget that does
// not coerce to a number.
var ErrInvalidBudget = errors.New("invalid budget")

// FareAPI is the slice of the Ryanair client the finder needs.
type FareAPI interface {
	CheapestFares(ctx context.Context, origin, day string) ([]ryanair.Fare, error)
	ReturnFares(ctx context.Context, origin, destination, day, currency string) ([]ryanair.Fare, error)
}

type Finder struct {
	api          FareAPI
	log          *slog.Logger
	metrics      *obs.Metrics
	fetchWorkers int
	matchWorkers int
}

func NewFinder(api FareAPI, logger *slog.Logger, m *obs.Metrics, fetchWorkers, matchWorkers int) *Finder {
	if fetchWorkers < 1 {
		fetchWorkers = 1
	}
	if matchWorkers < 1 {
		matchWorkers = 1
	}
	return &Finder{
		api:          api,
		log:          logger,
		metrics:      m,
		fetchWorkers: fetchWorkers,
		matchWorkers: matchWorkers,
	}
}

// Find runs the full day-trip search. Budget arrives as the caller supplied
// it; a non-numeric budget is the one hard error. Everything else is
// skip-and-continue: failed days are dropped, unmatched outbounds are
// dropped, over-budget pairs are dropped.
func (f *Finder) Find(ctx context.Context, origin, budget string, start, end time.Time) (Result, error) {
	maxPrice, err := strconv.ParseFloat(strings.TrimSpace(budget), 64)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidBudget, budget)
	}

	began := time.Now()
	fares, stats := f.fetchOutboundFares(ctx, origin, start, end)

	pairs := f.matchAll(ctx, fares)

	// Assemble sequentially, in outbound-fare order, so the keyed overwrite
	// and the stable sort behave identically no matter how matching
	// interleaved. Trips are keyed by destination *name*: a later fare to a
	// same-named airport overwrites the earlier one in place.
	var trips []Trip
	byName := map[string]int{}
	for _, p := range pairs {
		if p == nil {
			continue
		}

		trip := buildTrip(p)
		// Budget is checked against the raw sum; TotalPrice is rounded
		// for display only.
		if p.totalPrice > maxPrice {
			continue
		}

		if i, seen := byName[trip.Destination]; seen {
			trips[i] = trip
		} else {
			byName[trip.Destination] = len(trips)
			trips = append(trips, trip)
		}

		f.log.Info("day trip found",
			"origin", trip.Outbound.FromName,
			"destination", trip.Destination,
			"depart", trip.Outbound.DepartureDisplay,
			"return_depart", trip.Return.DepartureDisplay,
			"total", trip.TotalPrice,
			"currency", trip.Currency,
		)
	}

	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].TotalPrice < trips[j].TotalPrice
	})
	f.metrics.AddTripsFound(len(trips))

	var res Result
	res.Trips = trips
	res.Stats.DaysQueried = stats.daysQueried
	res.Stats.DaysFailed = stats.daysFailed
	res.Stats.OutboundFares = len(fares)
	res.Stats.TripsFound = len(trips)
	res.Stats.Cache = "miss"
	res.Stats.DurationMs = time.Since(began).Milliseconds()
	return res, nil
}

// matchAll pairs outbound fares with return candidates using a bounded
// worker pool. The result slice is indexed by fare position; unmatched
// fares are nil.
func (f *Finder) matchAll(ctx context.Context, fares []ryanair.Fare) []*pairing {
	pairs := make([]*pairing, len(fares))
	sem := make(chan struct{}, f.matchWorkers)
	var wg sync.WaitGroup
	for i, fare := range fares {
		wg.Add(1)
		go func(i int, fare ryanair.Fare) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			pairs[i] = f.pairFlights(ctx, fare)
		}(i, fare)
	}
	wg.Wait()
	return pairs
}

func buildTrip(p *pairing) Trip {
	return Trip{
		Destination:      p.outbound.ArrivalAirport.Name,
		DestinationIATA:  p.outbound.ArrivalAirport.IATACode,
		Outbound:         buildLeg(p.outbound),
		Return:           buildLeg(p.ret),
		TotalPrice:       math.Round(p.totalPrice*100) / 100,
		Currency:         p.ret.Price.CurrencyCode,
		CurrencyMismatch: p.currencyMismatch,
	}
}

func buildLeg(fare ryanair.Fare) Leg {
	leg := Leg{
		FromIATA:      fare.DepartureAirport.IATACode,
		FromName:      fare.DepartureAirport.Name,
		ToIATA:        fare.ArrivalAirport.IATACode,
		ToName:        fare.ArrivalAirport.Name,
		DepartureTime: fare.DepartureDate,
		ArrivalTime:   fare.ArrivalDate,
		Price:         fare.Price.Value,
		Currency:      fare.Price.CurrencyCode,
	}
	// Display strings are best-effort; a leg keeps an empty display field
	// when its raw timestamp does not parse.
	leg.DepartureDisplay, _ = FormatDisplay(fare.DepartureDate)
	leg.ArrivalDisplay, _ = FormatDisplay(fare.ArrivalDate)
	return leg
}
