package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/validator"
)

// SearchRequest carries one day-trip search. Origin is whatever the caller
// typed (airport name or IATA code); OriginIATA is filled in once resolved.
// Budget stays a string: the finder owns the numeric coercion and its
// failure mode.
type SearchRequest struct {
	Origin     string
	OriginIATA string
	Budget     string
	DateStart  time.Time
	DateEnd    time.Time

	dateStartRaw string
	dateEndRaw   string
}

func NewSearchRequest(origin, budget, dateStart, dateEnd string) (*SearchRequest, error) {
	if origin == "" || budget == "" || dateStart == "" || dateEnd == "" {
		return nil, fmt.Errorf("missing required params")
	}
	return &SearchRequest{
		Origin:       strings.TrimSpace(origin),
		Budget:       strings.TrimSpace(budget),
		dateStartRaw: dateStart,
		dateEndRaw:   dateEnd,
	}, nil
}

func (r *SearchRequest) Validate() error {
	var errs []string

	start, err := validator.ValidateDate(r.dateStartRaw)
	if err != nil {
		errs = append(errs, "invalid date_start")
	} else {
		r.DateStart = start
	}

	end, err := validator.ValidateDate(r.dateEndRaw)
	if err != nil {
		errs = append(errs, "invalid date_end")
	} else {
		r.DateEnd = end
	}

	// A reversed range is not an error: the scan just visits zero days.

	if iata, ok := validator.AsIATA(r.Origin); ok {
		r.OriginIATA = iata
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}
	return nil
}
