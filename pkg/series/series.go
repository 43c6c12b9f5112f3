package series

import "time"

// Series is a read-only view over an append-only, position-indexed sequence
// of timestamped float64 samples. Positions are zero based and stable once
// assigned.
type Series interface {
	// FirstValidPos returns the smallest position that can ever hold a value.
	FirstValidPos() int

	// Length returns the count of appended positions, present or absent.
	Length() int

	// ValueAt returns the sample value at pos. ok is false when pos is out of
	// range or the sample at pos is absent.
	ValueAt(pos int) (value float64, ok bool)

	// TimestampAt returns the timestamp the sample at pos was appended with.
	// ok is false when pos is out of range.
	TimestampAt(pos int) (t time.Time, ok bool)
}

// UpdateCallback receives one appended sample. ok is false for an absent
// sample, which occupies a position but carries no value.
type UpdateCallback func(t time.Time, v float64, ok bool)

// UpdateEmitter is the subscription point of a growing series. Callbacks fire
// synchronously, once per appended sample, in append order.
type UpdateEmitter interface {
	OnUpdate(cb UpdateCallback)
}
