package getinterval

import (
	"context"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
)

type Input struct{}

type Result struct {
	Interval reminder.Interval
}

type service struct {
	state *reminder.State
}

func New(state *reminder.State) services.Service[Input, Result] {
	if state == nil {
		panic(e.NewNilArgumentError("state"))
	}
	return &service{state: state}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result.Interval = s.state.Interval()
	return result, nil
}
