// Package ryanair is a thin client for the public Ryanair farfnd fare API.
//
// Two endpoint variants are used: the v4 "cheapest fares" search by origin
// and date, and the older v3 search narrowed to an origin/destination pair.
// The API is unauthenticated but rejects requests without a browser-looking
// User-Agent.
package ryanair

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://www.ryanair.com/api/farfnd"

	cheapestFaresPath = "/v4/oneWayFares"
	returnFaresPath   = "/3/oneWayFares"

	// defaultMarket is sent on the broad search; the API prices fares for
	// the market's currency when no explicit currency is given.
	defaultMarket = "en-gb"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheapestFares returns the cheapest one-way fares departing origin on the
// given day (YYYY-MM-DD), across all destinations. Non-2xx responses are
// errors; the caller decides whether a failed day aborts anything.
func (c *Client) CheapestFares(ctx context.Context, origin, day string) ([]Fare, error) {
	q := url.Values{}
	q.Set("departureAirportIataCode", origin)
	q.Set("outboundDepartureDateFrom", day)
	q.Set("outboundDepartureDateTo", day)
	q.Set("market", defaultMarket)

	status, body, err := c.get(ctx, cheapestFaresPath, q)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("cheapest fares %s %s: status %d", origin, day, status)
	}
	return decodeFares(body)
}

// ReturnFares returns one-way fares from origin to destination on the given
// day, priced in currency. The API answers 400 for unserved routes or days
// with no schedule; that is reported as zero fares, not an error.
func (c *Client) ReturnFares(ctx context.Context, origin, destination, day, currency string) ([]Fare, error) {
	q := url.Values{}
	q.Set("departureAirportIataCode", origin)
	q.Set("arrivalAirportIataCode", destination)
	q.Set("outboundDepartureDateFrom", day)
	q.Set("outboundDepartureDateTo", day)
	q.Set("currency", currency)

	status, body, err := c.get(ctx, returnFaresPath, q)
	if err != nil {
		return nil, err
	}
	if status == http.StatusBadRequest {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("return fares %s-%s %s: status %d", origin, destination, day, status)
	}
	return decodeFares(body)
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func decodeFares(body []byte) ([]Fare, error) {
	var resp faresResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode fares: %w", err)
	}
	fares := make([]Fare, 0, len(resp.Fares))
	for _, env := range resp.Fares {
		fares = append(fares, env.Outbound)
	}
	return fares, nil
}
