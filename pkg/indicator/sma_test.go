package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/techseries/pkg/series"
)

/*
python:

import pandas as pd
data = pd.Series([1, 2, 3, 4, 5])
print(data.rolling(3).mean())
*/
func TestSMA_PushModel(t *testing.T) {
	const Delta = 1e-9

	source := series.NewSequenceSeries()
	sma, err := SMA(source, 3)
	assert.NoError(t, err)

	for i, v := range []float64{1, 2, 3, 4, 5} {
		source.Append(ts(i), v)
	}

	assert.Equal(t, 5, sma.Length())
	assert.Equal(t, 3, sma.WindowSize())

	// positions before the window fills are absent
	for pos := 0; pos < 2; pos++ {
		_, ok := sma.ValueAt(pos)
		assert.False(t, ok, "position %d should be absent", pos)
	}

	for pos, want := range map[int]float64{2: 2.0, 3: 3.0, 4: 4.0} {
		v, ok := sma.ValueAt(pos)
		assert.True(t, ok)
		assert.InDelta(t, want, v, Delta)
	}

	// output timestamps align with the source
	tt, ok := sma.TimestampAt(3)
	assert.True(t, ok)
	assert.Equal(t, ts(3), tt)
}

func TestSMA_IncrementalMatchesDirect(t *testing.T) {
	const Delta = 1e-9

	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	for _, window := range []int{1, 2, 5, 9} {
		inc, err := NewSMAWindow(window)
		assert.NoError(t, err)

		for i, v := range data {
			inc.PushSample(ts(i), v, true)

			if i < window-1 {
				_, ok := inc.Value()
				assert.False(t, ok)
				continue
			}

			direct := 0.0
			for _, x := range data[i-window+1 : i+1] {
				direct += x
			}
			direct /= float64(window)

			got, ok := inc.Value()
			assert.True(t, ok)
			assert.InDelta(t, direct, got, Delta, "window %d position %d", window, i)
		}
	}
}

func TestSMA_MissingSamples(t *testing.T) {
	inc, err := NewSMAWindow(2)
	assert.NoError(t, err)

	inc.PushSample(ts(0), 1.0, true)
	inc.PushSample(ts(1), 2.0, true)

	before, ok := inc.Value()
	assert.True(t, ok)

	// an absent sample changes neither the buffer nor the held value
	inc.PushSample(ts(2), 0, false)

	after, ok := inc.Value()
	assert.True(t, ok)
	assert.Equal(t, before, after)
}

func TestSMASeries_PullModel(t *testing.T) {
	const Delta = 1e-9

	source := series.NewSequenceSeries()
	for i, v := range []float64{1, 2, 3, 4, 5} {
		source.Append(ts(i), v)
	}

	sma, err := SMASeries(source, 3)
	assert.NoError(t, err)

	assert.Equal(t, 2, sma.FirstValidPos())
	assert.Equal(t, 5, sma.Length())

	_, ok := sma.ValueAt(1)
	assert.False(t, ok)
	_, ok = sma.ValueAt(5)
	assert.False(t, ok)

	for pos, want := range map[int]float64{2: 2.0, 3: 3.0, 4: 4.0} {
		v, ok := sma.ValueAt(pos)
		assert.True(t, ok)
		assert.InDelta(t, want, v, Delta)
	}

	// the pull model sees appends immediately, no resubscription needed
	source.Append(ts(5), 6.0)
	v, ok := sma.ValueAt(5)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, v, Delta)
}

func TestSMASeries_AbsentSourceSample(t *testing.T) {
	source := series.NewSequenceSeries()
	source.Append(ts(0), 1.0)
	source.AppendAbsent(ts(1))
	source.Append(ts(2), 3.0)

	sma, err := SMASeries(source, 2)
	assert.NoError(t, err)

	// any range covering the absent sample is absent
	_, ok := sma.ValueAt(1)
	assert.False(t, ok)
	_, ok = sma.ValueAt(2)
	assert.False(t, ok)
}

func TestSMA_PushPullAgreement(t *testing.T) {
	const Delta = 1e-9

	data := []float64{1.5, 2.25, 3.0, 2.5, 4.75, 5.0, 4.0, 3.25, 6.5, 7.0}

	source := series.NewSequenceSeries()
	push, err := SMA(source, 4)
	assert.NoError(t, err)

	for i, v := range data {
		source.Append(ts(i), v)
	}

	pull, err := SMASeries(source, 4)
	assert.NoError(t, err)

	assert.Equal(t, pull.Length(), push.Length())
	for pos := 0; pos < pull.Length(); pos++ {
		pv, pok := pull.ValueAt(pos)
		ev, eok := push.ValueAt(pos)
		assert.Equal(t, pok, eok, "readiness must agree at position %d", pos)
		if pok {
			assert.InDelta(t, pv, ev, Delta, "position %d", pos)
		}
	}
}

func TestSMA_ConstructionErrors(t *testing.T) {
	source := series.NewSequenceSeries()

	_, err := SMA(source, 0)
	assert.Error(t, err)

	_, err = SMASeries(source, -1)
	assert.Error(t, err)
}
