package indicator

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/techseries/pkg/cache"
)

// DefaultCacheSize is the FIFO cache capacity used when a constructor is not
// given an explicit cache size.
const DefaultCacheSize = 512

// ComputeFunc computes the derived value from the source positions
// [firstPos, lastPos], both inclusive. ok is false when the range is not
// computable yet, for example when it covers an absent source sample.
//
// The result must be a pure function of the source values in the range:
// recomputing yields the same value every time. That stability is what makes
// caching the result sound.
type ComputeFunc func(firstPos, lastPos int) (v float64, ok bool)

// Bounds provides the valid position range of a derived series.
type Bounds interface {
	FirstValidPos() int
	Length() int
}

// LazySeries is the pull-model evaluation base: position-indexed access that
// computes each value at most once while it stays cached. Out-of-bounds
// positions are absent without computing, absent results are never cached so
// a position that becomes computable later is computed fresh.
type LazySeries struct {
	windowSize int
	cache      cache.Cache
	compute    ComputeFunc
	bounds     Bounds
}

// NewLazySeries builds the lazy base over the given compute hook and bounds.
// cacheSize is optional: default 512, zero disables caching, negative is a
// construction error.
func NewLazySeries(windowSize int, compute ComputeFunc, bounds Bounds, cacheSize ...int) (*LazySeries, error) {
	if windowSize <= 0 {
		return nil, errors.Errorf("indicator: window size must be positive, got %d", windowSize)
	}

	if compute == nil {
		return nil, errors.New("indicator: compute function is required")
	}

	if bounds == nil {
		return nil, errors.New("indicator: bounds provider is required")
	}

	c, err := newResultCache(cacheSize...)
	if err != nil {
		return nil, err
	}

	return &LazySeries{
		windowSize: windowSize,
		cache:      c,
		compute:    compute,
		bounds:     bounds,
	}, nil
}

func newResultCache(cacheSize ...int) (cache.Cache, error) {
	size := DefaultCacheSize
	if len(cacheSize) > 0 {
		size = cacheSize[0]
	}

	switch {
	case size < 0:
		return nil, errors.Errorf("indicator: cache size must not be negative, got %d", size)
	case size == 0:
		return cache.NewNoCache(), nil
	default:
		return cache.NewFIFOCache(size)
	}
}

func (s *LazySeries) WindowSize() int {
	return s.windowSize
}

// ValueAt returns the derived value at pos, computing and caching it on a
// miss. ok is false for positions outside [FirstValidPos, Length) and for
// ranges that are not computable yet.
func (s *LazySeries) ValueAt(pos int) (float64, bool) {
	if pos < s.bounds.FirstValidPos() || pos >= s.bounds.Length() {
		return 0, false
	}

	if v, ok := s.cache.GetValue(pos); ok {
		return v, true
	}

	firstPos := pos - s.windowSize + 1
	if firstPos < 0 {
		// the bounds check above must keep the window inside the series,
		// getting here is a bounds-calculation bug
		panic(fmt.Sprintf("indicator: window start %d is negative at position %d, window size %d", firstPos, pos, s.windowSize))
	}

	v, ok := s.compute(firstPos, pos)
	if ok {
		s.cache.PutValue(pos, v)
	}

	return v, ok
}
