package clock

import (
	"errors"
	"time"
)

// Source yields strictly increasing whole-second timestamps from a wall clock.
// The last-yielded guard is owned by the Source, so independent sources never
// interfere and a fresh Source starts over.
type Source struct {
	now  func() time.Time
	last Timestamp
	seen bool
}

// NewSource creates a Source reading now; nil selects time.Now
func NewSource(now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{now: now}
}

// Poll reads the clock once.
// ok is true only when the reading is later than the previously yielded value.
// A clock set before the epoch returns ErrClockSkew and leaves the guard untouched.
// A reading beyond the 32-bit range panics: it is an assumption violation, not a
// transient condition.
func (s *Source) Poll() (ts Timestamp, ok bool, err error) {
	ts, err = FromTime(s.now())
	if err != nil {
		if errors.Is(err, ErrTimestampOverflow) {
			panic(err)
		}
		return 0, false, err
	}

	if s.seen && ts <= s.last {
		return ts, false, nil
	}

	s.last = ts
	s.seen = true
	return ts, true, nil
}

// Last returns the most recently yielded timestamp
func (s *Source) Last() (Timestamp, bool) {
	return s.last, s.seen
}
