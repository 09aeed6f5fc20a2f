package logstore

import (
	"strings"

	"lodestone/internal/app/gamelog"
)

// Store holds the accumulated parsed lines of one viewing session in a
// bounded ring buffer. When the buffer is full the oldest lines are evicted,
// so the store always keeps the most recent capacity lines in id order.
// A session owns its store exclusively; no locking is needed.
type Store struct {
	lines []gamelog.Line
	head  int
	count int
	max   int
}

// NewStore creates a store retaining at most capacity lines
func NewStore(capacity int) *Store {
	return &Store{
		lines: make([]gamelog.Line, capacity),
		max:   capacity,
	}
}

// Append adds parsed lines in order, evicting from the head once full
func (s *Store) Append(lines ...gamelog.Line) {
	for _, line := range lines {
		tail := (s.head + s.count) % s.max
		s.lines[tail] = line

		if s.count < s.max {
			s.count++
		} else {
			s.head = (s.head + 1) % s.max
		}
	}
}

// Len returns the number of retained lines
func (s *Store) Len() int {
	return s.count
}

// Lines returns the retained lines in accumulation order
func (s *Store) Lines() []gamelog.Line {
	out := make([]gamelog.Line, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.lines[(s.head+i)%s.max]
	}

	return out
}

// Visible re-derives the currently visible subset by applying the filter to
// every retained line. Ordering is preserved; the underlying lines are never
// mutated.
func (s *Store) Visible(f *Filter) []gamelog.Line {
	out := make([]gamelog.Line, 0, s.count)

	for i := 0; i < s.count; i++ {
		line := s.lines[(s.head+i)%s.max]
		if f.Matches(line) {
			out = append(out, line)
		}
	}

	return out
}

// Clear drops all retained lines without reallocating the buffer
func (s *Store) Clear() {
	for i := 0; i < s.count; i++ {
		s.lines[(s.head+i)%s.max] = gamelog.Line{}
	}

	s.head = 0
	s.count = 0
}

// JoinRaw concatenates the raw text of the given lines with newline
// separators, the shape expected by the export and upload collaborators.
// The store performs no I/O itself.
func JoinRaw(lines []gamelog.Line) string {
	raws := make([]string, len(lines))
	for i, line := range lines {
		raws[i] = line.Raw
	}

	return strings.Join(raws, "\n")
}
