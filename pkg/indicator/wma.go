package indicator

import (
	"github.com/pkg/errors"
	gfloats "gonum.org/v1/gonum/floats"

	"github.com/c9s/techseries/pkg/datatype/floats"
	"github.com/c9s/techseries/pkg/series"
)

// WMAWindow computes a weighted moving average, recomputed in full on every
// read: dot(buffer, weights) / sum(weights), with the buffer in chronological
// order matched against the weights in the same order. The window size is the
// weight count. There is no incremental shortcut for arbitrary weights.
type WMAWindow struct {
	EventWindow

	weights floats.Slice
}

func NewWMAWindow(weights []float64) (*WMAWindow, error) {
	if len(weights) == 0 {
		return nil, errors.New("indicator: wma weights must not be empty")
	}

	w, err := NewEventWindow(len(weights))
	if err != nil {
		return nil, err
	}

	ws := make(floats.Slice, len(weights))
	copy(ws, weights)

	return &WMAWindow{EventWindow: w, weights: ws}, nil
}

func (inc *WMAWindow) Value() (float64, bool) {
	if !inc.Full() {
		return 0, false
	}

	return gfloats.Dot(inc.Values(), inc.weights) / gfloats.Sum(inc.weights), true
}

var _ WindowIndicator = (*WMAWindow)(nil)

// WMA builds a push-model weighted moving average over the source.
func WMA(source SeriesSubscription, weights []float64) (*Filter, error) {
	w, err := NewWMAWindow(weights)
	if err != nil {
		return nil, err
	}

	return NewFilter("wma", source, w), nil
}

// WMASeries builds a pull-model weighted moving average over the source. A
// range covering an absent source sample is absent.
func WMASeries(source series.Series, weights []float64, cacheSize ...int) (*DataSeriesFilter, error) {
	if len(weights) == 0 {
		return nil, errors.New("indicator: wma weights must not be empty")
	}

	ws := make([]float64, len(weights))
	copy(ws, weights)
	weightSum := gfloats.Sum(ws)

	compute := func(firstPos, lastPos int) (float64, bool) {
		accum := 0.0
		for i := firstPos; i <= lastPos; i++ {
			v, ok := source.ValueAt(i)
			if !ok {
				return 0, false
			}
			accum += v * ws[i-firstPos]
		}

		return accum / weightSum, true
	}

	return NewDataSeriesFilter(source, len(ws), compute, cacheSize...)
}
