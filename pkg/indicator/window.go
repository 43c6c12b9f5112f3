package indicator

import (
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/techseries/pkg/datatype/floats"
)

// WindowIndicator is the contract the push-model glue consumes: feed samples
// in, read the current derived value out.
type WindowIndicator interface {
	// PushSample feeds one sample. ok is false for an absent sample, which is
	// dropped without touching the window.
	PushSample(t time.Time, v float64, ok bool)

	// Value returns the current derived value. ok is false until the window
	// has been full at least once.
	Value() (v float64, ok bool)

	WindowSize() int
}

// EventWindow keeps the trailing windowSize most recent present samples.
// Absent samples never enter the buffer, so filling the window can take more
// pushes than windowSize. Concrete formulas embed it and shadow Value.
type EventWindow struct {
	windowSize int
	values     floats.Slice
}

func NewEventWindow(windowSize int) (EventWindow, error) {
	if windowSize <= 0 {
		return EventWindow{}, errors.Errorf("indicator: window size must be positive, got %d", windowSize)
	}

	return EventWindow{windowSize: windowSize}, nil
}

func (w *EventWindow) PushSample(_ time.Time, v float64, ok bool) {
	if !ok {
		return
	}

	w.values.Push(v)
	if len(w.values) > w.windowSize {
		w.values = w.values.Tail(w.windowSize)
	}
}

// Values returns the buffered samples in chronological order. The returned
// slice is the internal buffer, callers must not mutate it.
func (w *EventWindow) Values() floats.Slice {
	return w.values
}

func (w *EventWindow) WindowSize() int {
	return w.windowSize
}

func (w *EventWindow) Full() bool {
	return len(w.values) == w.windowSize
}

// Value panics: a bare EventWindow has no formula. Every concrete indicator
// shadows this with its own implementation, reaching this one means a formula
// type forgot to.
func (w *EventWindow) Value() (float64, bool) {
	panic("indicator: EventWindow.Value called without a concrete formula implementation")
}
