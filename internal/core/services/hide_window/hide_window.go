package hidewindow

import (
	"context"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
)

type Input struct{}

type Result struct{}

type service struct {
	log       logging.Logger
	presenter reminder.Presenter
}

func New(log logging.Logger, presenter reminder.Presenter) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if presenter == nil {
		panic(e.NewNilArgumentError("presenter"))
	}
	return &service{log: log, presenter: presenter}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.presenter.Hide(ctx); err != nil {
		s.log.Warning(ctx, "Could not hide window.", logging.Entry("err", err))
	}
	return result, nil
}
