package reminder

import (
	"sync"
	"time"
)

// State is the process-wide reminder state. It is shared by pointer between
// the scheduler and the command services. The two fields are guarded by
// independent locks; no operation needs both at once.
type State struct {
	intervalLock sync.RWMutex
	interval     Interval

	lastShownLock sync.RWMutex
	lastShown     time.Time
}

func NewState(interval Interval, startedAt time.Time) *State {
	if err := interval.Validate(); err != nil {
		interval = DefaultInterval
	}
	return &State{interval: interval, lastShown: startedAt}
}

func (s *State) Interval() Interval {
	s.intervalLock.RLock()
	defer s.intervalLock.RUnlock()
	return s.interval
}

// SetInterval replaces the interval. lastShown is left as is, so a shorter
// interval may make the reminder due right away.
func (s *State) SetInterval(interval Interval) error {
	if err := interval.Validate(); err != nil {
		return err
	}
	s.intervalLock.Lock()
	defer s.intervalLock.Unlock()
	s.interval = interval
	return nil
}

func (s *State) LastShown() time.Time {
	s.lastShownLock.RLock()
	defer s.lastShownLock.RUnlock()
	return s.lastShown
}

// MarkShown moves lastShown to at. Times before the current value are ignored.
func (s *State) MarkShown(at time.Time) {
	s.lastShownLock.Lock()
	defer s.lastShownLock.Unlock()
	if at.Before(s.lastShown) {
		return
	}
	s.lastShown = at
}

func (s *State) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.LastShown())
}

func (s *State) IsDue(now time.Time) bool {
	return s.Elapsed(now) >= s.Interval().Duration()
}

func (s *State) NextAt() time.Time {
	return s.LastShown().Add(s.Interval().Duration())
}
