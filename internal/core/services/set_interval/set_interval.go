package setinterval

import (
	"context"
	"errors"
	"fmt"
	"sync"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
)

// ErrSettingsNotPersisted is returned when the new interval is in effect but
// could not be written to the settings storage.
var ErrSettingsNotPersisted = errors.New("settings not persisted")

type Input struct {
	Interval reminder.Interval
}

type Result struct {
	Interval reminder.Interval
}

type service struct {
	// lock keeps the in-memory and the persisted interval in step when
	// updates race.
	lock     sync.Mutex
	log      logging.Logger
	state    *reminder.State
	settings reminder.SettingsRepository
}

func New(
	log logging.Logger,
	state *reminder.State,
	settings reminder.SettingsRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if state == nil {
		panic(e.NewNilArgumentError("state"))
	}
	if settings == nil {
		panic(e.NewNilArgumentError("settings"))
	}
	return &service{log: log, state: state, settings: settings}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.state.SetInterval(input.Interval); err != nil {
		s.log.Info(ctx, "Interval rejected.", logging.Entry("interval", input.Interval), logging.Entry("err", err))
		return result, err
	}
	result.Interval = input.Interval

	if err := s.settings.Save(ctx, input.Interval); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("interval", input.Interval))
		return result, fmt.Errorf("%w: %w", ErrSettingsNotPersisted, err)
	}

	s.log.Info(ctx, "Interval updated.", logging.Entry("interval", input.Interval))
	return result, nil
}
