package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(i int) time.Time {
	return time.Date(2022, time.January, 1, 0, i, 0, 0, time.UTC)
}

func TestSequenceSeries_Append(t *testing.T) {
	s := NewSequenceSeries()
	assert.Equal(t, 0, s.Length())
	assert.Equal(t, 0, s.FirstValidPos())

	s.Append(ts(0), 10.0)
	s.AppendAbsent(ts(1))
	s.Append(ts(2), 30.0)

	assert.Equal(t, 3, s.Length())

	v, ok := s.ValueAt(0)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	// absent sample occupies the position but has no value
	_, ok = s.ValueAt(1)
	assert.False(t, ok)

	tt, ok := s.TimestampAt(1)
	assert.True(t, ok)
	assert.Equal(t, ts(1), tt)

	// out of range
	_, ok = s.ValueAt(-1)
	assert.False(t, ok)
	_, ok = s.ValueAt(3)
	assert.False(t, ok)
	_, ok = s.TimestampAt(3)
	assert.False(t, ok)
}

func TestSequenceSeries_OnUpdate(t *testing.T) {
	s := NewSequenceSeries()

	var got []float64
	var absents int
	s.OnUpdate(func(_ time.Time, v float64, ok bool) {
		if !ok {
			absents++
			return
		}
		got = append(got, v)
	})

	s.Append(ts(0), 1.0)
	s.AppendAbsent(ts(1))
	s.Append(ts(2), 2.0)

	assert.Equal(t, []float64{1, 2}, got)
	assert.Equal(t, 1, absents)
}

func TestSequenceSeries_AddSubscriberReplaysHistory(t *testing.T) {
	s := NewSequenceSeries()
	s.Append(ts(0), 1.0)
	s.AppendAbsent(ts(1))
	s.Append(ts(2), 3.0)

	var seen int
	s.AddSubscriber(func(_ time.Time, _ float64, _ bool) {
		seen++
	})

	// history replayed at subscription time
	assert.Equal(t, 3, seen)

	s.Append(ts(3), 4.0)
	assert.Equal(t, 4, seen)
}

func TestSequenceSeries_Truncate(t *testing.T) {
	s := NewSequenceSeries()
	for i := 0; i < 5; i++ {
		s.Append(ts(i), float64(i))
	}

	s.Truncate(2)
	assert.Equal(t, 2, s.Length())

	v, ok := s.ValueAt(0)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	// truncating to a larger size is a no-op
	s.Truncate(10)
	assert.Equal(t, 2, s.Length())
}
