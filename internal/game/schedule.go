package game

import (
	"sort"
	"time"

	"whispergrove/internal/sink"
)

type scheduled struct {
	at      time.Time
	message string
}

// Schedule queues cosmetic messages until their time comes. Ticks drain
// it, so a queued message never reaches the level.
type Schedule struct {
	now     func() time.Time
	pending []scheduled
}

// NewSchedule creates an empty schedule reading the clock from now.
func NewSchedule(now func() time.Time) *Schedule {
	return &Schedule{now: now}
}

// After queues message to become due d from now.
func (s *Schedule) After(d time.Duration, message string) {
	s.pending = append(s.pending, scheduled{at: s.now().Add(d), message: message})
	sort.SliceStable(s.pending, func(i, j int) bool { return s.pending[i].at.Before(s.pending[j].at) })
}

// Due removes and returns the messages due at now, earliest first.
func (s *Schedule) Due(now time.Time) []string {
	n := 0
	for n < len(s.pending) && !s.pending[n].at.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	for i, p := range s.pending[:n] {
		out[i] = p.message
	}
	s.pending = append(s.pending[:0], s.pending[n:]...)
	return out
}

// Len returns the number of queued messages.
func (s *Schedule) Len() int { return len(s.pending) }

var _ sink.Scheduler = (*Schedule)(nil)
