package daytrip

import (
	"context"
	"time"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/ryanair"
)

// pairing is an outbound fare matched with its same-day return.
type pairing struct {
	outbound         ryanair.Fare
	ret              ryanair.Fare
	totalPrice       float64
	currencyMismatch bool
}

// findReturnFare looks up a single return candidate for the outbound fare:
// the first fare flying the reverse route on the outbound's arrival day.
// Returns nil when the outbound is not a same-day flight (no API call is
// made), when the route has no fares, or when the lookup fails in any way.
func (f *Finder) findReturnFare(ctx context.Context, outbound ryanair.Fare) *ryanair.Fare {
	dep, err := time.Parse(fareTimeLayout, outbound.DepartureDate)
	if err != nil {
		return nil
	}
	arr, err := time.Parse(fareTimeLayout, outbound.ArrivalDate)
	if err != nil {
		return nil
	}

	// Same-day round trips are the whole premise. Overnight arrivals
	// cannot qualify, so skip the lookup entirely.
	day := arr.Format(dayLayout)
	if dep.Format(dayLayout) != day {
		return nil
	}

	started := time.Now()
	fares, err := f.api.ReturnFares(ctx,
		outbound.ArrivalAirport.IATACode,
		outbound.DepartureAirport.IATACode,
		day, returnFareCurrency)
	f.metrics.ObserveFareAPILatency("returnFares", time.Since(started).Seconds())
	if err != nil {
		f.metrics.IncFareAPIError("returnFares")
		f.log.Debug("return fare lookup failed",
			"from", outbound.ArrivalAirport.IATACode,
			"to", outbound.DepartureAirport.IATACode,
			"day", day, "error", err)
		return nil
	}
	if len(fares) == 0 {
		return nil
	}
	return &fares[0]
}

// pairFlights matches an outbound fare with a return and enforces the
// layover floor. The layover is full timestamp subtraction, not calendar
// truncation; exactly MinLayover passes. The total is a raw sum of the two
// price values, no conversion, with mismatched currencies flagged.
func (f *Finder) pairFlights(ctx context.Context, outbound ryanair.Fare) *pairing {
	ret := f.findReturnFare(ctx, outbound)
	if ret == nil {
		return nil
	}

	outArr, err := time.Parse(fareTimeLayout, outbound.ArrivalDate)
	if err != nil {
		return nil
	}
	retDep, err := time.Parse(fareTimeLayout, ret.DepartureDate)
	if err != nil {
		return nil
	}
	if retDep.Sub(outArr) < MinLayover {
		return nil
	}

	return &pairing{
		outbound:         outbound,
		ret:              *ret,
		totalPrice:       outbound.Price.Value + ret.Price.Value,
		currencyMismatch: outbound.Price.CurrencyCode != ret.Price.CurrencyCode,
	}
}
