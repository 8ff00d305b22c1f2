package reminder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIntervalIsValid(t *testing.T) {
	require.NoError(t, DefaultInterval.Validate())
	require.Equal(t, time.Hour, DefaultInterval.Duration())
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range Presets {
		t.Run(p.Label, func(t *testing.T) {
			assert.NoError(t, p.Interval.Validate())
		})
	}
}

func TestNewIntervalValid(t *testing.T) {
	cases := []struct {
		seconds int64
	}{
		{seconds: 10},
		{seconds: 11},
		{seconds: 60},
		{seconds: 3600},
		{seconds: 86400},
		{seconds: 89999},
	}

	for _, testcase := range cases {
		t.Run(time.Duration(testcase.seconds*int64(time.Second)).String(), func(t *testing.T) {
			interval, err := NewInterval(testcase.seconds)

			assert := require.New(t)
			assert.NoError(err)
			assert.Equal(testcase.seconds, interval.Seconds())
		})
	}
}

func TestNewIntervalError(t *testing.T) {
	cases := []struct {
		id      string
		seconds int64
		err     error
	}{
		{id: "negative", seconds: -60, err: ErrIntervalTooShort},
		{id: "zero", seconds: 0, err: ErrIntervalTooShort},
		{id: "below minimum", seconds: 9, err: ErrIntervalTooShort},
		{id: "above maximum", seconds: 90000, err: ErrIntervalTooLong},
		{id: "huge", seconds: 1 << 40, err: ErrIntervalTooLong},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			_, err := NewInterval(testcase.seconds)
			if !errors.Is(err, testcase.err) {
				t.Fatal(testcase.seconds, err)
			}
		})
	}
}

func TestIntervalFromDuration(t *testing.T) {
	assert := require.New(t)

	interval, err := IntervalFromDuration(90*time.Minute + 500*time.Millisecond)
	assert.NoError(err)
	assert.Equal(Interval(5400), interval)

	_, err = IntervalFromDuration(9999 * time.Millisecond)
	assert.ErrorIs(err, ErrIntervalTooShort)
}

func TestIntervalString(t *testing.T) {
	assert.Equal(t, "1h0m0s", DefaultInterval.String())
	assert.Equal(t, "15m0s", Interval(900).String())
}
