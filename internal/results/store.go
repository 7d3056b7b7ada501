// Package results hands out request-scoped tickets for finished searches.
// The front-end stores the ticket and dereferences it page by page; the
// server keeps no per-session state beyond this TTL'd store.
package results

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/daytrip"
)

const PerPage = 10

type Store struct {
	c *gocache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{c: gocache.New(ttl, 2*ttl)}
}

// Put stores a result and returns its ticket.
func (s *Store) Put(res daytrip.Result) string {
	ticket := uuid.New().String()
	s.c.Set(ticket, res, gocache.DefaultExpiration)
	return ticket
}

func (s *Store) Get(ticket string) (daytrip.Result, bool) {
	v, ok := s.c.Get(ticket)
	if !ok {
		return daytrip.Result{}, false
	}
	return v.(daytrip.Result), true
}

type Page struct {
	Ticket     string         `json:"ticket"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
	TotalTrips int            `json:"total_trips"`
	Trips      []daytrip.Trip `json:"trips"`
}

// PageOf slices one page out of a stored result. Pages are 1-based; a page
// past the end comes back empty but ok, matching a client that walked off
// the last page.
func (s *Store) PageOf(ticket string, page int) (Page, bool) {
	res, ok := s.Get(ticket)
	if !ok {
		return Page{}, false
	}
	if page < 1 {
		page = 1
	}

	total := len(res.Trips)
	totalPages := (total + PerPage - 1) / PerPage
	lo := (page - 1) * PerPage
	hi := lo + PerPage
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return Page{
		Ticket:     ticket,
		Page:       page,
		PerPage:    PerPage,
		TotalPages: totalPages,
		TotalTrips: total,
		Trips:      res.Trips[lo:hi],
	}, true
}
