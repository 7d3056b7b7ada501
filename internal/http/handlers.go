package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/airports"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/daytrip"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/models"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/obs"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/results"
)

type Handler struct {
	svc         daytrip.FinderService
	store       *results.Store
	registry    *airports.Registry
	ratelimiter daytrip.RateLimiter
	metrics     *obs.Metrics
}

func NewHandler(svc daytrip.FinderService, store *results.Store, reg *airports.Registry, rl daytrip.RateLimiter, m *obs.Metrics) *Handler {
	return &Handler{svc: svc, store: store, registry: reg, ratelimiter: rl, metrics: m}
}

func (h *Handler) ipFromRequest(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// Search runs a day-trip search and hands back a ticket plus the first
// page of trips. The front-end paginates through /results with the ticket.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.metrics.IncSearches()

	// chi's middleware.RequestID sets X-Request-Id header
	reqID := r.Header.Get("X-Request-Id")
	if reqID == "" {
		reqID = uuid.New().String()
	}
	meta := map[string]string{"request_id": reqID}

	q := r.URL.Query()
	req, err := models.NewSearchRequest(
		q.Get("origin"),
		q.Get("budget"),
		q.Get("date_start"),
		q.Get("date_end"),
	)
	if err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}

	if err := req.Validate(); err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}

	// Origin that isn't a bare IATA code is an airport name; resolve it
	// through the registry the picker was populated from.
	if req.OriginIATA == "" {
		code, ok := h.registry.IATAByName(req.Origin)
		if !ok {
			BadRequest(w, "unknown origin airport", meta)
			return
		}
		req.OriginIATA = code
	}

	ip := h.ipFromRequest(r)
	if !h.ratelimiter.Allow(ip) {
		h.metrics.IncRateLimitDrops()
		TooManyRequests(w, "rate limit exceeded", meta)
		return
	}

	res, err := h.svc.Search(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, daytrip.ErrInvalidBudget):
			BadRequest(w, err.Error(), meta)
		case errors.Is(err, context.DeadlineExceeded):
			GatewayTimeout(w, "search timed out", meta)
		default:
			InternalError(w, err.Error(), meta)
		}
		return
	}

	ticket := h.store.Put(res)
	page, _ := h.store.PageOf(ticket, 1)

	out := map[string]any{
		"search": map[string]any{
			"origin":     req.OriginIATA,
			"budget":     req.Budget,
			"date_start": req.DateStart.Format("2006-01-02"),
			"date_end":   req.DateEnd.Format("2006-01-02"),
		},
		"stats":       res.Stats,
		"ticket":      ticket,
		"page":        page.Page,
		"total_pages": page.TotalPages,
		"total_trips": page.TotalTrips,
		"trips":       page.Trips,
	}

	WriteJSON(w, http.StatusOK, out)
}

// Results serves one page of a stored search.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ticket := q.Get("ticket")
	if ticket == "" {
		BadRequest(w, "missing ticket", nil)
		return
	}

	page := 1
	if p := q.Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			BadRequest(w, "invalid page", nil)
			return
		}
		page = n
	}

	pg, ok := h.store.PageOf(ticket, page)
	if !ok {
		NotFound(w, "unknown or expired ticket", nil)
		return
	}
	WriteJSON(w, http.StatusOK, pg)
}

// Airports lists the origin airports the picker can offer.
func (h *Handler) Airports(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"count":    h.registry.Len(),
		"airports": h.registry.All(),
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
