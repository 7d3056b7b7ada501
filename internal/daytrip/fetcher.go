package daytrip

import (
	"context"
	"sync"
	"time"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/ryanair"
)

// fetchStats reports how the per-day fan-out went.
type fetchStats struct {
	daysQueried int
	daysFailed  int
}

// fetchOutboundFares queries the fare API once per calendar day in
// [start, end] inclusive and concatenates the results in calendar order.
// A reversed range yields zero iterations and an empty result. A failed day
// is logged and skipped; the scan never fails as a whole.
func (f *Finder) fetchOutboundFares(ctx context.Context, origin string, start, end time.Time) ([]ryanair.Fare, fetchStats) {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dayLayout))
	}

	stats := fetchStats{daysQueried: len(days)}
	if len(days) == 0 {
		return nil, stats
	}

	// Bounded fan-out across days. Results land in a slice indexed by day
	// so the concatenation order matches the sequential scan.
	perDay := make([][]ryanair.Fare, len(days))
	failed := make([]bool, len(days))
	sem := make(chan struct{}, f.fetchWorkers)
	var wg sync.WaitGroup
	for i, day := range days {
		wg.Add(1)
		go func(i int, day string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			started := time.Now()
			fares, err := f.api.CheapestFares(ctx, origin, day)
			f.metrics.ObserveFareAPILatency("cheapestFares", time.Since(started).Seconds())
			if err != nil {
				f.metrics.IncFareAPIError("cheapestFares")
				f.log.Warn("fetching fares failed, skipping day",
					"origin", origin, "day", day, "error", err)
				failed[i] = true
				return
			}
			perDay[i] = fares
		}(i, day)
	}
	wg.Wait()

	var all []ryanair.Fare
	for i := range days {
		if failed[i] {
			stats.daysFailed++
			continue
		}
		all = append(all, perDay[i]...)
	}
	return all, stats
}
