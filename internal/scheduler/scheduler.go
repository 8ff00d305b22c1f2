package scheduler

import (
	"context"
	"sync"
	"time"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/services"
	triggerreminder "waterreminder/internal/core/services/trigger_reminder"
)

const DefaultTickPeriod = time.Second

var ErrAlreadyRunning = e.NewInvalidStateError("scheduler is already running")

// Scheduler runs the trigger reminder service on a fixed cadence until it is
// stopped or its context is cancelled.
type Scheduler struct {
	log     logging.Logger
	trigger services.Service[triggerreminder.Input, triggerreminder.Result]
	period  time.Duration

	lock   sync.Mutex
	stopCh chan struct{}
	doneCh chan struct{}
}

func New(
	log logging.Logger,
	trigger services.Service[triggerreminder.Input, triggerreminder.Result],
	period time.Duration,
) *Scheduler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if trigger == nil {
		panic(e.NewNilArgumentError("trigger"))
	}
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Scheduler{log: log, trigger: trigger, period: period}
}

// Run blocks until ctx is done or Stop is called. It returns nil on both.
func (s *Scheduler) Run(ctx context.Context) error {
	s.lock.Lock()
	if s.doneCh != nil {
		s.lock.Unlock()
		return ErrAlreadyRunning
	}
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	s.stopCh = stopCh
	s.doneCh = doneCh
	s.lock.Unlock()

	defer func() {
		s.lock.Lock()
		s.stopCh = nil
		s.doneCh = nil
		s.lock.Unlock()
		close(doneCh)
	}()

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	s.log.Info(ctx, "Starting reminder scheduler.", logging.Entry("period", s.period.String()))

	for {
		select {
		case <-ctx.Done():
			s.log.Info(context.Background(), "Stopping reminder scheduler.", logging.Entry("reason", ctx.Err()))
			return nil
		case <-stopCh:
			s.log.Info(ctx, "Stopping reminder scheduler.", logging.Entry("reason", "stop"))
			return nil
		case <-ticker.C:
			if _, err := s.trigger.Run(ctx, triggerreminder.Input{}); err != nil {
				s.log.Error(ctx, "Trigger service returned an error.", logging.Entry("err", err))
			}
		}
	}
}

func (s *Scheduler) IsRunning() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.doneCh != nil
}

// Stop halts a running loop and waits until it has exited. It is a no-op when
// the scheduler is not running.
func (s *Scheduler) Stop() {
	s.lock.Lock()
	stopCh, doneCh := s.stopCh, s.doneCh
	s.stopCh = nil
	s.lock.Unlock()

	if stopCh == nil {
		if doneCh != nil {
			<-doneCh
		}
		return
	}
	close(stopCh)
	<-doneCh
}
