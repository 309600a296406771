package tui

import "strings"

// sparklineChars are the eight block heights, lowest first.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Series keeps the most recent samples of one timing column.
type Series struct {
	values []float64
	limit  int
}

// NewSeries creates a series holding at most limit samples.
func NewSeries(limit int) *Series {
	return &Series{limit: max(limit, 1)}
}

// Push appends v, dropping the oldest sample when full.
func (s *Series) Push(v float64) {
	s.values = append(s.values, v)
	s.trim()
}

// SetLimit changes the capacity, keeping the newest samples that fit.
func (s *Series) SetLimit(limit int) {
	s.limit = max(limit, 1)
	s.trim()
}

func (s *Series) trim() {
	if over := len(s.values) - s.limit; over > 0 {
		s.values = append(s.values[:0], s.values[over:]...)
	}
}

// Values returns the samples, oldest first. The slice must not be modified.
func (s *Series) Values() []float64 { return s.values }

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Last returns the newest sample, or 0 when empty.
func (s *Series) Last() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Max returns the largest sample, or 0 when empty.
func (s *Series) Max() float64 {
	var m float64
	for _, v := range s.values {
		m = max(m, v)
	}
	return m
}

// Reset drops every sample.
func (s *Series) Reset() { s.values = s.values[:0] }

// RenderSparkline draws values as block characters scaled against ceiling,
// so several series sharing a ceiling can be compared by eye. Values are
// clamped to [0, ceiling]; a non-positive ceiling draws the lowest block.
func RenderSparkline(values []float64, ceiling float64) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(values) * 3)
	top := len(sparklineChars) - 1
	for _, v := range values {
		idx := 0
		if ceiling > 0 {
			idx = int(min(max(v, 0), ceiling) / ceiling * float64(top))
		}
		b.WriteRune(sparklineChars[idx])
	}
	return b.String()
}
