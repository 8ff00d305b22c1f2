package reminder

import (
	"fmt"
	"time"
)

// Interval is the number of seconds between two reminders.
type Interval uint32

const (
	DefaultInterval Interval = 3600
	MinInterval     Interval = 10
	MaxInterval     Interval = 24*3600 + 59*60 + 59
)

// NewInterval builds an Interval from a raw number of seconds.
func NewInterval(seconds int64) (Interval, error) {
	if seconds < int64(MinInterval) {
		return 0, fmt.Errorf("%w: %d < %d", ErrIntervalTooShort, seconds, MinInterval)
	}
	if seconds > int64(MaxInterval) {
		return 0, fmt.Errorf("%w: %d > %d", ErrIntervalTooLong, seconds, MaxInterval)
	}
	return Interval(seconds), nil
}

// IntervalFromDuration truncates d to whole seconds.
func IntervalFromDuration(d time.Duration) (Interval, error) {
	return NewInterval(int64(d / time.Second))
}

func (i Interval) Validate() error {
	_, err := NewInterval(int64(i))
	return err
}

func (i Interval) Seconds() int64 {
	return int64(i)
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i) * time.Second
}

func (i Interval) String() string {
	return i.Duration().String()
}

type Preset struct {
	Label    string
	Interval Interval
}

var Presets = []Preset{
	{Label: "15m", Interval: 15 * 60},
	{Label: "30m", Interval: 30 * 60},
	{Label: "45m", Interval: 45 * 60},
	{Label: "1h", Interval: 60 * 60},
	{Label: "2h", Interval: 2 * 60 * 60},
}
