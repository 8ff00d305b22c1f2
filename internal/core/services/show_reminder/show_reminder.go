package showreminder

import (
	"context"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
)

type Input struct{}

type Result struct {
	// Delivered is false when the show-reminder signal could not be emitted.
	Delivered bool
}

type service struct {
	log       logging.Logger
	presenter reminder.Presenter
	notifier  reminder.Notifier
}

// New returns the service bringing the reminder on screen: the show-reminder
// signal is emitted and the window is shown on top. It does not touch the
// reminder state, so opening the reminder by hand does not shift the schedule.
func New(
	log logging.Logger,
	presenter reminder.Presenter,
	notifier reminder.Notifier,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if presenter == nil {
		panic(e.NewNilArgumentError("presenter"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{log: log, presenter: presenter, notifier: notifier}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.notifier.NotifyShowReminder(ctx); err != nil {
		s.log.Warning(ctx, "Could not emit show-reminder signal.", logging.Entry("err", err))
	} else {
		result.Delivered = true
	}
	if err := s.presenter.Show(ctx); err != nil {
		s.log.Warning(ctx, "Could not show window.", logging.Entry("err", err))
	}
	return result, nil
}
