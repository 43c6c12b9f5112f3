package floats

import "math"

type Slice []float64

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	return s.Sum() / float64(len(s))
}

// Tail returns a copy of the last size elements.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

func (s Slice) Last() float64 {
	length := len(s)
	if length > 0 {
		return s[length-1]
	}
	return 0.0
}

// Index returns the element counted from the end, Index(0) is the last one.
func (s Slice) Index(i int) float64 {
	length := len(s)
	if length-i-1 < 0 || i < 0 {
		return 0.0
	}
	return s[length-i-1]
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}

	return s[len(s)-size:]
}
