package results_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/daytrip"
	"github.com/jcooper22-22/extreme-day-trip-finder/internal/results"
)

func resultWithTrips(n int) daytrip.Result {
	var res daytrip.Result
	for i := 0; i < n; i++ {
		res.Trips = append(res.Trips, daytrip.Trip{
			Destination: fmt.Sprintf("Dest %02d", i),
			TotalPrice:  float64(50 + i),
		})
	}
	res.Stats.TripsFound = n
	return res
}

func TestPutGet(t *testing.T) {
	store := results.NewStore(time.Minute)
	ticket := store.Put(resultWithTrips(3))
	require.NotEmpty(t, ticket)

	got, ok := store.Get(ticket)
	require.True(t, ok)
	assert.Len(t, got.Trips, 3)

	_, ok = store.Get("no-such-ticket")
	assert.False(t, ok)
}

func TestPageOf(t *testing.T) {
	store := results.NewStore(time.Minute)
	ticket := store.Put(resultWithTrips(23))

	page, ok := store.PageOf(ticket, 1)
	require.True(t, ok)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 23, page.TotalTrips)
	require.Len(t, page.Trips, 10)
	assert.Equal(t, "Dest 00", page.Trips[0].Destination)

	page, ok = store.PageOf(ticket, 3)
	require.True(t, ok)
	require.Len(t, page.Trips, 3)
	assert.Equal(t, "Dest 20", page.Trips[0].Destination)

	// walking past the last page is empty but not an error
	page, ok = store.PageOf(ticket, 9)
	require.True(t, ok)
	assert.Empty(t, page.Trips)

	// page zero clamps to the first page
	page, ok = store.PageOf(ticket, 0)
	require.True(t, ok)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Trips, 10)
}

func TestPageOf_UnknownTicket(t *testing.T) {
	store := results.NewStore(time.Minute)
	_, ok := store.PageOf("nope", 1)
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	store := results.NewStore(20 * time.Millisecond)
	ticket := store.Put(resultWithTrips(1))

	time.Sleep(40 * time.Millisecond)
	_, ok := store.Get(ticket)
	assert.False(t, ok, "ticket should expire with the TTL")
}

func TestTicketsAreUnique(t *testing.T) {
	store := results.NewStore(time.Minute)
	a := store.Put(resultWithTrips(1))
	b := store.Put(resultWithTrips(1))
	assert.NotEqual(t, a, b)
}
