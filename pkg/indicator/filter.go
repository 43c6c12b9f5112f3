package indicator

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"github.com/c9s/techseries/pkg/series"
)

var metricsFilterValue = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "techseries_filter_value",
		Help: "latest derived value of the filter",
	}, []string{"name", "window"},
)

func init() {
	prometheus.MustRegister(metricsFilterValue)
}

// SeriesSubscription is what the push-model glue needs from its source: the
// read interface plus a subscription that replays history before going live.
type SeriesSubscription interface {
	series.Series

	AddSubscriber(cb series.UpdateCallback)
}

// Filter is the push-model adapter: each sample appended to the source is fed
// into the window indicator and the indicator's current value is appended to
// the owned output series at the same timestamp. The output length always
// matches the number of source samples seen, with absent entries while the
// window is still filling.
type Filter struct {
	name   string
	window WindowIndicator
	output *series.SequenceSeries
}

// NewFilter subscribes to the source at construction time. With history
// already in the source, the subscription replays it first, so the output
// starts position-aligned.
func NewFilter(name string, source SeriesSubscription, window WindowIndicator) *Filter {
	f := &Filter{
		name:   name,
		window: window,
		output: series.NewSequenceSeries(),
	}

	source.AddSubscriber(func(t time.Time, v float64, ok bool) {
		f.window.PushSample(t, v, ok)

		value, ready := f.window.Value()
		if ready {
			f.output.Append(t, value)
		} else {
			f.output.AppendAbsent(t)
		}

		if viper.GetBool("metrics") && ready {
			metricsFilterValue.With(prometheus.Labels{
				"name":   f.name,
				"window": strconv.Itoa(f.window.WindowSize()),
			}).Set(value)
		}
	})

	return f
}

func (f *Filter) Name() string {
	return f.name
}

func (f *Filter) WindowSize() int {
	return f.window.WindowSize()
}

func (f *Filter) FirstValidPos() int {
	return f.output.FirstValidPos()
}

func (f *Filter) Length() int {
	return f.output.Length()
}

func (f *Filter) ValueAt(pos int) (float64, bool) {
	return f.output.ValueAt(pos)
}

func (f *Filter) TimestampAt(pos int) (time.Time, bool) {
	return f.output.TimestampAt(pos)
}

// Output exposes the owned output series.
func (f *Filter) Output() *series.SequenceSeries {
	return f.output
}

var _ series.Series = (*Filter)(nil)
