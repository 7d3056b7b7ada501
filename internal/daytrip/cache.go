package daytrip

import (
	"context"
	"sync"
	"time"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/obs"
)

// CacheService collapses identical in-flight searches and keeps results
// for a TTL. A day-trip scan is dozens of fare API round trips, so two
// browsers asking for the same origin and range should share one scan.
type CacheService interface {
	GetOrCompute(ctx context.Context, key string, fn func(ctx context.Context) (Result, error)) (Result, error)
}

type cacheEntry struct {
	val     Result
	expiry  time.Time
	ready   bool
	waiters []chan resultOrErr
}

type resultOrErr struct {
	res Result
	err error
}

type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	items   map[string]*cacheEntry
	metrics *obs.Metrics
}

func NewCache(ttl time.Duration, m *obs.Metrics) *Cache {
	return &Cache{ttl: ttl, items: make(map[string]*cacheEntry), metrics: m}
}

func (c *Cache) GetOrCompute(ctx context.Context, key string, fn func(ctx context.Context) (Result, error)) (Result, error) {
	c.mu.Lock()
	entry, found := c.items[key]
	now := time.Now()

	// If cached and fresh, return it
	if found && entry.ready && now.Before(entry.expiry) {
		val := entry.val
		c.mu.Unlock()
		c.metrics.IncCacheHits()
		val.Stats.Cache = "hit"
		return val, nil
	}

	// Collapse: if a scan is in progress, join its waiters
	if found && !entry.ready {
		ch := make(chan resultOrErr, 1)
		entry.waiters = append(entry.waiters, ch)
		c.mu.Unlock()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case r := <-ch:
			return r.res, r.err
		}
	}

	// Start a new scan and mark it in-flight
	ch := make(chan resultOrErr, 1)
	entry = &cacheEntry{waiters: []chan resultOrErr{ch}}
	c.items[key] = entry
	c.mu.Unlock()

	res, err := fn(ctx)
	result := resultOrErr{res: res, err: err}

	c.mu.Lock()
	if err != nil {
		// Errors are never cached. Drop the entry so the next identical
		// request recomputes; joined waiters still get this error replayed.
		delete(c.items, key)
	} else {
		entry.val = res
		entry.expiry = now.Add(c.ttl)
		entry.ready = true
	}
	waiters := entry.waiters
	entry.waiters = nil
	c.mu.Unlock()

	for _, w := range waiters {
		w <- result
		close(w)
	}

	return res, err
}
