package ryanair_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/ryanair"
)

const faresBody = `{
	"fares": [
		{
			"outbound": {
				"departureAirport": {"iataCode": "STN", "name": "London Stansted"},
				"arrivalAirport": {"iataCode": "DUB", "name": "Dublin"},
				"departureDate": "2025-08-20T06:30:00",
				"arrivalDate": "2025-08-20T07:45:00",
				"price": {"value": 19.99, "currencyCode": "GBP"}
			}
		},
		{
			"outbound": {
				"departureAirport": {"iataCode": "STN", "name": "London Stansted"},
				"arrivalAirport": {"iataCode": "BVA", "name": "Paris Beauvais"},
				"departureDate": "2025-08-20T08:05:00",
				"arrivalDate": "2025-08-20T10:20:00",
				"price": {"value": 24.5, "currencyCode": "GBP"}
			}
		}
	]
}`

func TestCheapestFares(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/oneWayFares", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"departureAirportIataCode":  q.Get("departureAirportIataCode"),
			"outboundDepartureDateFrom": q.Get("outboundDepartureDateFrom"),
			"outboundDepartureDateTo":   q.Get("outboundDepartureDateTo"),
			"market":                    q.Get("market"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(faresBody))
	}))
	defer srv.Close()

	c := ryanair.NewClient(ryanair.WithBaseURL(srv.URL))
	fares, err := c.CheapestFares(context.Background(), "STN", "2025-08-20")
	require.NoError(t, err)
	require.Len(t, fares, 2)

	assert.Equal(t, "STN", gotQuery["departureAirportIataCode"])
	assert.Equal(t, "2025-08-20", gotQuery["outboundDepartureDateFrom"])
	assert.Equal(t, "2025-08-20", gotQuery["outboundDepartureDateTo"])
	assert.Equal(t, "en-gb", gotQuery["market"])

	assert.Equal(t, "DUB", fares[0].ArrivalAirport.IATACode)
	assert.Equal(t, "Dublin", fares[0].ArrivalAirport.Name)
	assert.Equal(t, 19.99, fares[0].Price.Value)
	assert.Equal(t, "GBP", fares[0].Price.CurrencyCode)
	assert.Equal(t, "2025-08-20T06:30:00", fares[0].DepartureDate)
}

func TestCheapestFares_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := ryanair.NewClient(ryanair.WithBaseURL(srv.URL))
	_, err := c.CheapestFares(context.Background(), "STN", "2025-08-20")
	require.Error(t, err)
}

func TestReturnFares(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/oneWayFares", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "DUB", q.Get("departureAirportIataCode"))
		assert.Equal(t, "STN", q.Get("arrivalAirportIataCode"))
		assert.Equal(t, "EUR", q.Get("currency"))
		w.Write([]byte(faresBody))
	}))
	defer srv.Close()

	c := ryanair.NewClient(ryanair.WithBaseURL(srv.URL))
	fares, err := c.ReturnFares(context.Background(), "DUB", "STN", "2025-08-20", "EUR")
	require.NoError(t, err)
	require.Len(t, fares, 2)
}

func TestReturnFares_BadRequestMeansNoFares(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := ryanair.NewClient(ryanair.WithBaseURL(srv.URL))
	fares, err := c.ReturnFares(context.Background(), "DUB", "STN", "2025-08-20", "EUR")
	require.NoError(t, err)
	assert.Empty(t, fares)
}

func TestReturnFares_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := ryanair.NewClient(ryanair.WithBaseURL(srv.URL))
	_, err := c.ReturnFares(context.Background(), "DUB", "STN", "2025-08-20", "EUR")
	require.Error(t, err)
}
