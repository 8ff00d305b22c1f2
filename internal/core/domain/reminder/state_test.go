package reminder

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var (
	Start = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
)

func at(seconds int) time.Time {
	return Start.Add(time.Duration(seconds) * time.Second)
}

type stateSuite struct {
	suite.Suite
	state *State
}

func (s *stateSuite) SetupTest() {
	s.state = NewState(DefaultInterval, Start)
}

func TestState(t *testing.T) {
	suite.Run(t, new(stateSuite))
}

func (s *stateSuite) TestInitialValues() {
	s.Equal(DefaultInterval, s.state.Interval())
	s.Equal(Start, s.state.LastShown())
	s.Equal(at(3600), s.state.NextAt())
}

func (s *stateSuite) TestInvalidInitialIntervalFallsBackToDefault() {
	state := NewState(Interval(0), Start)
	s.Equal(DefaultInterval, state.Interval())
}

func (s *stateSuite) TestSetIntervalRoundTrip() {
	for _, interval := range []Interval{MinInterval, 60, 900, 3600, 7200, MaxInterval} {
		s.Require().NoError(s.state.SetInterval(interval))
		s.Equal(interval, s.state.Interval())
	}
}

func (s *stateSuite) TestSetIntervalRejectsOutOfBounds() {
	s.ErrorIs(s.state.SetInterval(Interval(0)), ErrIntervalTooShort)
	s.ErrorIs(s.state.SetInterval(MaxInterval+1), ErrIntervalTooLong)
	s.Equal(DefaultInterval, s.state.Interval())
}

func (s *stateSuite) TestSetIntervalKeepsLastShown() {
	s.state.MarkShown(at(100))

	s.Require().NoError(s.state.SetInterval(Interval(30)))

	s.Equal(at(100), s.state.LastShown())
}

func (s *stateSuite) TestIsDue() {
	cases := []struct {
		id  string
		now time.Time
		due bool
	}{
		{id: "at start", now: at(0), due: false},
		{id: "one second before", now: at(3599), due: false},
		{id: "just before", now: at(3599).Add(999 * time.Millisecond), due: false},
		{id: "exactly", now: at(3600), due: true},
		{id: "after", now: at(4000), due: true},
		{id: "clock moved back", now: at(-10), due: false},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			s.Equal(testcase.due, s.state.IsDue(testcase.now))
		})
	}
}

func (s *stateSuite) TestShorterIntervalMakesReminderDue() {
	now := at(120)
	s.False(s.state.IsDue(now))

	s.Require().NoError(s.state.SetInterval(Interval(60)))

	s.True(s.state.IsDue(now))
}

func (s *stateSuite) TestMarkShownIsMonotonic() {
	s.state.MarkShown(at(50))
	s.state.MarkShown(at(10))

	s.Equal(at(50), s.state.LastShown())
	s.Equal(10*time.Second, s.state.Elapsed(at(60)))
}

func (s *stateSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		i := i
		go func() {
			defer wg.Done()
			_ = s.state.SetInterval(Interval(60 + i))
			_ = s.state.Interval()
		}()
		go func() {
			defer wg.Done()
			s.state.MarkShown(at(i))
			_ = s.state.IsDue(at(i))
		}()
	}
	wg.Wait()

	s.True(s.state.Interval() >= 60)
	s.Equal(at(49), s.state.LastShown())
}
