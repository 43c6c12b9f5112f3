package indicator

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/c9s/techseries/pkg/series"
)

const smaDivergenceTolerance = 1e-9

// SMAWindow maintains a simple moving average incrementally: the first full
// window seeds the value by summation, after that each push applies
//
//	value = value + newest/N - oldest/N
//
// with oldest read before the push. The divide-then-add order matches the
// direct mean within floating point tolerance, which the pull model relies
// on.
type SMAWindow struct {
	EventWindow

	value  float64
	seeded bool
}

func NewSMAWindow(windowSize int) (*SMAWindow, error) {
	w, err := NewEventWindow(windowSize)
	if err != nil {
		return nil, err
	}

	return &SMAWindow{EventWindow: w}, nil
}

func (inc *SMAWindow) PushSample(t time.Time, v float64, ok bool) {
	if !ok {
		return
	}

	var oldest float64
	if len(inc.Values()) > 0 {
		oldest = inc.Values()[0]
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

	n := float64(inc.WindowSize())
	inc.value = inc.value + v/n - oldest/n

	if log.IsLevelEnabled(log.DebugLevel) {
		direct := inc.Values().Mean()
		if math.Abs(inc.value-direct) > smaDivergenceTolerance*math.Max(1.0, math.Abs(direct)) {
			log.Warnf("incremental SMA(%d) %f drifted from direct mean %f", inc.WindowSize(), inc.value, direct)
		}
	}
}

func (inc *SMAWindow) Value() (float64, bool) {
	if !inc.seeded {
		return 0, false
	}

	return inc.value, true
}

var _ WindowIndicator = (*SMAWindow)(nil)

// SMA builds a push-model simple moving average over the source.
func SMA(source SeriesSubscription, windowSize int) (*Filter, error) {
	w, err := NewSMAWindow(windowSize)
	if err != nil {
		return nil, err
	}

	return NewFilter("sma", source, w), nil
}

// SMASeries builds a pull-model simple moving average over the source,
// evaluated lazily per position. A range covering an absent source sample is
// absent.
func SMASeries(source series.Series, windowSize int, cacheSize ...int) (*DataSeriesFilter, error) {
	compute := func(firstPos, lastPos int) (float64, bool) {
		sum := 0.0
		for i := firstPos; i <= lastPos; i++ {
			v, ok := source.ValueAt(i)
			if !ok {
				return 0, false
			}
			sum += v
		}

		return sum / float64(lastPos-firstPos+1), true
	}

	return NewDataSeriesFilter(source, windowSize, compute, cacheSize...)
}
