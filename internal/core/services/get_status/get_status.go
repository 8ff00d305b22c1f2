package getstatus

import (
	"context"
	"time"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"

	"github.com/golang-module/carbon/v2"
)

type Input struct{}

type Result struct {
	Interval  reminder.Interval
	LastShown time.Time
	NextAt    time.Time
	// NextIn is a human readable distance to NextAt, e.g. "45 minutes".
	NextIn  string
	Overdue bool
	Presets []reminder.Preset
}

type service struct {
	state *reminder.State
	now   func() time.Time
}

func New(state *reminder.State, now func() time.Time) services.Service[Input, Result] {
	if state == nil {
		panic(e.NewNilArgumentError("state"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{state: state, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	result.Interval = s.state.Interval()
	result.LastShown = s.state.LastShown()
	result.NextAt = result.LastShown.Add(result.Interval.Duration())
	result.Overdue = !now.Before(result.NextAt)
	result.NextIn = carbon.Time2Carbon(now).DiffAbsInString(carbon.Time2Carbon(result.NextAt))
	result.Presets = reminder.Presets
	return result, nil
}
