package store

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/avh/trend/shared"
	"github.com/rs/zerolog"
)

const (
	// DefaultCapacity is the default bounded capacity of the series cache.
	DefaultCapacity = 100
	// DefaultLookback is the default daily lookback fetched per symbol,
	// in days.
	DefaultLookback = 365 * 5
)

// CacheConfig represents the configuration for the series cache.
type CacheConfig struct {
	// Source is the upstream bar source.
	Source shared.BarSource
	// Capacity bounds the number of cached series.
	Capacity int
	// Lookback is the daily lookback fetched per symbol, in days.
	Lookback int
	// Logger represents the cache logger.
	Logger *zerolog.Logger
}

// entry is a single cached, possibly in-flight, series slot. The ready
// channel is closed once the fetch-and-publish step completes; readers of a
// published entry never block and never see partial data.
type entry struct {
	symbol  string
	ready   chan struct{}
	series  *shared.Series
	err     error
	element *list.Element
}

// Cache is a bounded, least-recently-used series cache with at-most-one
// in-flight upstream fetch per symbol. There is no explicit invalidation;
// staleness is tolerated and refreshed only by re-fetch on cache miss.
type Cache struct {
	cfg     *CacheConfig
	mtx     sync.Mutex
	entries map[string]*entry
	order   *list.List
}

// NewCache initializes a new series cache.
func NewCache(cfg *CacheConfig) (*Cache, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("cache source cannot be nil")
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Lookback <= 0 {
		cfg.Lookback = DefaultLookback
	}

	return &Cache{
		cfg:     cfg,
		entries: make(map[string]*entry),
		order:   list.New(),
	}, nil
}

// GetOrFetch returns the daily series for the provided symbol, fetching it
// upstream at most once per miss. Concurrent requests for the same symbol
// share a single in-flight fetch. An empty upstream result resolves to
// ErrNoMarketData and is not cached.
func (c *Cache) GetOrFetch(ctx context.Context, symbol string) (*shared.Series, error) {
	c.mtx.Lock()
	if slot, ok := c.entries[symbol]; ok {
		c.order.MoveToFront(slot.element)
		c.mtx.Unlock()

		select {
		case <-slot.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		return slot.series, slot.err
	}

	slot := &entry{
		symbol: symbol,
		ready:  make(chan struct{}),
	}
	slot.element = c.order.PushFront(slot)
	c.entries[symbol] = slot
	c.evict()
	c.mtx.Unlock()

	bars, err := c.cfg.Source.FetchDailyHistorical(ctx, symbol, c.cfg.Lookback)
	switch {
	case err != nil:
		slot.err = fmt.Errorf("fetching %s: %w", symbol, err)
	case len(bars) == 0:
		slot.err = fmt.Errorf("%w: %s", shared.ErrNoMarketData, symbol)
	default:
		slot.series = shared.NewSeries(symbol, shared.Daily, bars)
		if slot.series.Len() == 0 {
			slot.series = nil
			slot.err = fmt.Errorf("%w: %s", shared.ErrNoMarketData, symbol)
		}
	}
	close(slot.ready)

	if slot.err != nil {
		// Failed fetches are not cached, the next request re-fetches.
		c.mtx.Lock()
		if current, ok := c.entries[symbol]; ok && current == slot {
			c.order.Remove(slot.element)
			delete(c.entries, symbol)
		}
		c.mtx.Unlock()

		if c.cfg.Logger != nil {
			c.cfg.Logger.Error().Msgf("fetching series: %v", slot.err)
		}
	}

	return slot.series, slot.err
}

// View returns the requested periodicity view of the provided symbol's
// series, derived lazily from the cached daily series.
func (c *Cache) View(ctx context.Context, symbol string, timeframe shared.Timeframe) (*shared.Series, error) {
	daily, err := c.GetOrFetch(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return daily.Resample(timeframe), nil
}

// evict trims least-recently-used published entries beyond capacity.
// In-flight slots are never trimmed, so a pending fetch stays joinable until
// it publishes; trimming resumes on the next insert. The caller must hold
// the cache lock.
func (c *Cache) evict() {
	over := c.order.Len() - c.cfg.Capacity
	for element := c.order.Back(); element != nil && over > 0; {
		prev := element.Prev()
		slot := element.Value.(*entry)

		select {
		case <-slot.ready:
			c.order.Remove(element)
			delete(c.entries, slot.symbol)
			over--
		default:
			// Still in flight.
		}

		element = prev
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.entries)
}
