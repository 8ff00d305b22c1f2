package logging

import (
	"context"
	"fmt"
	"waterreminder/internal/core/domain/logging"

	"github.com/getsentry/sentry-go"
)

// SentryLogger forwards error records to Sentry and delegates everything to
// the wrapped logger.
type SentryLogger struct {
	logging.Logger
	hub *sentry.Hub
}

func NewSentryLogger(logger logging.Logger, hub *sentry.Hub) *SentryLogger {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &SentryLogger{Logger: logger, hub: hub}
}

func (l *SentryLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.Logger.Error(ctx, msg, entries...)

	l.hub.WithScope(func(scope *sentry.Scope) {
		var err error
		for _, e := range entries {
			if asErr, ok := e.Value.(error); ok && err == nil {
				err = asErr
				continue
			}
			scope.SetExtra(e.Key, fmt.Sprintf("%v", e.Value))
		}
		if err != nil {
			scope.SetExtra("message", msg)
			l.hub.CaptureException(err)
			return
		}
		l.hub.CaptureMessage(msg)
	})
}
