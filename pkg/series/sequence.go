package series

import "time"

type entry struct {
	t     time.Time
	value float64
	valid bool
}

// SequenceSeries is the in-memory append-only sequence backing both raw
// sample sources and the push-model indicator outputs. Appends synchronously
// notify the registered callbacks before returning. Not safe for concurrent
// use, an instance belongs to one logical thread of control.
type SequenceSeries struct {
	entries []entry

	updateCallbacks []UpdateCallback
}

func NewSequenceSeries() *SequenceSeries {
	return &SequenceSeries{}
}

// Append appends a present sample and emits it to the subscribers.
func (s *SequenceSeries) Append(t time.Time, v float64) {
	s.entries = append(s.entries, entry{t: t, value: v, valid: true})
	s.EmitUpdate(t, v, true)
}

// AppendAbsent appends an absent sample. It occupies a position and carries a
// timestamp but no value.
func (s *SequenceSeries) AppendAbsent(t time.Time) {
	s.entries = append(s.entries, entry{t: t})
	s.EmitUpdate(t, 0, false)
}

func (s *SequenceSeries) OnUpdate(cb UpdateCallback) {
	s.updateCallbacks = append(s.updateCallbacks, cb)
}

func (s *SequenceSeries) EmitUpdate(t time.Time, v float64, ok bool) {
	for _, cb := range s.updateCallbacks {
		cb(t, v, ok)
	}
}

// AddSubscriber registers the callback and pushes the already appended
// history to it first, so a late subscriber stays position-aligned with the
// series.
func (s *SequenceSeries) AddSubscriber(cb UpdateCallback) {
	s.OnUpdate(cb)

	for _, e := range s.entries {
		cb(e.t, e.value, e.valid)
	}
}

func (s *SequenceSeries) FirstValidPos() int {
	return 0
}

func (s *SequenceSeries) Length() int {
	return len(s.entries)
}

func (s *SequenceSeries) ValueAt(pos int) (float64, bool) {
	if pos < 0 || pos >= len(s.entries) {
		return 0, false
	}

	e := s.entries[pos]
	if !e.valid {
		return 0, false
	}

	return e.value, true
}

func (s *SequenceSeries) TimestampAt(pos int) (time.Time, bool) {
	if pos < 0 || pos >= len(s.entries) {
		return time.Time{}, false
	}

	return s.entries[pos].t, true
}

// Truncate drops the oldest entries and keeps at most size. Positions shift
// by the dropped count, so any position-aligned consumer must be rebuilt
// afterwards. Meant for long-running push-model pipelines that only care
// about the recent tail.
func (s *SequenceSeries) Truncate(size int) {
	if size < 0 || len(s.entries) <= size {
		return
	}

	s.entries = s.entries[len(s.entries)-size:]
}

var _ Series = (*SequenceSeries)(nil)
var _ UpdateEmitter = (*SequenceSeries)(nil)
