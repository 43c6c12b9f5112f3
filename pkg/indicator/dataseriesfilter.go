package indicator

import (
	"time"

	"github.com/c9s/techseries/pkg/series"
)

// DataSeriesFilter decorates a source series with a windowed computation,
// evaluated lazily per position through a LazySeries. The derived value at
// position p is computed from source positions [p-N+1, p] and stays aligned
// to the source timestamp at p. Length follows the source as it grows.
type DataSeriesFilter struct {
	source        series.Series
	lazy          *LazySeries
	firstValidPos int
}

// NewDataSeriesFilter wires a compute hook over the source. The first valid
// position is windowSize-1 past the source's own first valid position.
func NewDataSeriesFilter(source series.Series, windowSize int, compute ComputeFunc, cacheSize ...int) (*DataSeriesFilter, error) {
	f := &DataSeriesFilter{
		source:        source,
		firstValidPos: windowSize - 1 + source.FirstValidPos(),
	}

	lazy, err := NewLazySeries(windowSize, compute, f, cacheSize...)
	if err != nil {
		return nil, err
	}

	f.lazy = lazy
	return f, nil
}

func (f *DataSeriesFilter) FirstValidPos() int {
	return f.firstValidPos
}

func (f *DataSeriesFilter) Length() int {
	return f.source.Length()
}

func (f *DataSeriesFilter) ValueAt(pos int) (float64, bool) {
	return f.lazy.ValueAt(pos)
}

// TimestampAt delegates to the source: the filter never redefines temporal
// alignment.
func (f *DataSeriesFilter) TimestampAt(pos int) (time.Time, bool) {
	return f.source.TimestampAt(pos)
}

func (f *DataSeriesFilter) WindowSize() int {
	return f.lazy.WindowSize()
}

// Source returns the series being filtered.
func (f *DataSeriesFilter) Source() series.Series {
	return f.source
}

var _ series.Series = (*DataSeriesFilter)(nil)
