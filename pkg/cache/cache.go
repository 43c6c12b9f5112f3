package cache

import (
	"github.com/pkg/errors"
)

// Cache memoizes computed series values keyed by their position.
// A position with no computable value is never stored, so a miss can mean
// either "evicted" or "never computed" -- callers can not tell, and do not
// need to.
type Cache interface {
	IsCached(pos int) bool

	// GetValue returns the cached value at pos. ok is false on a miss.
	GetValue(pos int) (value float64, ok bool)

	// PutValue inserts or overwrites the value at pos.
	PutValue(pos int, value float64)
}

// FIFOCache is a bounded cache that evicts the least recently inserted
// position once its capacity is exceeded. Overwriting an existing position
// appends another entry to the insertion log instead of refreshing the old
// one, so an overwritten position is still evicted by its oldest log entry.
// This is not an LRU: lookups never affect the eviction order.
type FIFOCache struct {
	capacity int
	values   map[int]float64
	inserted []int
}

func NewFIFOCache(capacity int) (*FIFOCache, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("cache: fifo capacity must be positive, got %d", capacity)
	}

	return &FIFOCache{
		capacity: capacity,
		values:   make(map[int]float64, capacity),
	}, nil
}

func (c *FIFOCache) IsCached(pos int) bool {
	_, ok := c.values[pos]
	return ok
}

func (c *FIFOCache) GetValue(pos int) (float64, bool) {
	v, ok := c.values[pos]
	return v, ok
}

func (c *FIFOCache) PutValue(pos int, value float64) {
	c.values[pos] = value
	c.inserted = append(c.inserted, pos)

	// the log can be longer than the map when a position is overwritten, the
	// map size is what the capacity bounds. A popped log entry can be stale
	// (its position already deleted through an older duplicate), deleting it
	// again is a no-op and the loop moves on to the next entry.
	for len(c.values) > c.capacity {
		oldest := c.inserted[0]
		c.inserted = c.inserted[1:]
		delete(c.values, oldest)
	}
}

// NoCache stores nothing, every lookup is a miss. Selected when caching is
// disabled with a cache size of zero.
type NoCache struct{}

func NewNoCache() *NoCache {
	return &NoCache{}
}

func (c *NoCache) IsCached(pos int) bool {
	return false
}

func (c *NoCache) GetValue(pos int) (float64, bool) {
	return 0, false
}

func (c *NoCache) PutValue(pos int, value float64) {}
