package triggerreminder

import (
	"context"
	"time"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
	showreminder "waterreminder/internal/core/services/show_reminder"
)

type Input struct{}

type Result struct {
	Triggered bool
	At        time.Time
}

type service struct {
	log          logging.Logger
	state        *reminder.State
	showReminder services.Service[showreminder.Input, showreminder.Result]
	now          func() time.Time
}

// New returns the scheduler tick: when the interval has elapsed since the
// reminder was last shown, the reminder is shown and the baseline is reset.
func New(
	log logging.Logger,
	state *reminder.State,
	showReminder services.Service[showreminder.Input, showreminder.Result],
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if state == nil {
		panic(e.NewNilArgumentError("state"))
	}
	if showReminder == nil {
		panic(e.NewNilArgumentError("showReminder"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, state: state, showReminder: showReminder, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	if !s.state.IsDue(now) {
		return result, nil
	}

	shown, err := s.showReminder.Run(ctx, showreminder.Input{})
	if err != nil {
		logging.Error(ctx, s.log, err)
	}

	// The baseline moves even if nothing reached the screen: one trigger per
	// interval, no retries.
	s.state.MarkShown(now)

	s.log.Info(
		ctx,
		"Reminder triggered.",
		logging.Entry("interval", s.state.Interval()),
		logging.Entry("delivered", shown.Delivered),
	)
	result.Triggered = true
	result.At = now
	return result, nil
}
