package indicator

import (
	"time"

	"github.com/pkg/errors"
)

// EMAWindow maintains an exponential moving average: seeded with the simple
// mean of the first full window, then
//
//	value = (sample - value) * multiplier + value
//
// with multiplier 2/(N+1).
//
// See https://stockcharts.com/school/doku.php?id=chart_school:technical_indicators:moving_averages
type EMAWindow struct {
	EventWindow

	multiplier float64
	value      float64
	seeded     bool
}

func NewEMAWindow(windowSize int) (*EMAWindow, error) {
	if windowSize <= 1 {
		return nil, errors.Errorf("indicator: ema window size must be greater than 1, got %d", windowSize)
	}

	w, err := NewEventWindow(windowSize)
	if err != nil {
		return nil, err
	}

	return &EMAWindow{
		EventWindow: w,
		multiplier:  2.0 / float64(windowSize+1),
	}, nil
}

func (inc *EMAWindow) PushSample(t time.Time, v float64, ok bool) {
	if !ok {
		return
	}

	inc.EventWindow.PushSample(t, v, ok)

	if !inc.Full() {
		return
	}

	if !inc.seeded {
		inc.value = inc.Values().Mean()
		inc.seeded = true
		return
	}

	inc.value = (v-inc.value)*inc.multiplier + inc.value
}

func (inc *EMAWindow) Value() (float64, bool) {
	if !inc.seeded {
		return 0, false
	}

	return inc.value, true
}

var _ WindowIndicator = (*EMAWindow)(nil)

// EMA builds a push-model exponential moving average over the source. There
// is no pull-model EMA: the value depends on the full sample history, not
// just the trailing window, so lazy per-position evaluation does not apply.
func EMA(source SeriesSubscription, windowSize int) (*Filter, error) {
	w, err := NewEMAWindow(windowSize)
	if err != nil {
		return nil, err
	}

	return NewFilter("ema", source, w), nil
}
