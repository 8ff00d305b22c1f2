package remindernotifier

import (
	"context"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
)

type namedNotifier struct {
	name     string
	notifier reminder.Notifier
}

// Notifier fans the show-reminder signal out to several notifiers. The
// primary notifier decides the outcome; the others are best effort.
type Notifier struct {
	log       logging.Logger
	primary   namedNotifier
	secondary []namedNotifier
}

func New(log logging.Logger, name string, primary reminder.Notifier) *Notifier {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if primary == nil {
		panic(e.NewNilArgumentError("primary"))
	}
	return &Notifier{log: log, primary: namedNotifier{name: name, notifier: primary}}
}

// With adds a best effort notifier.
func (n *Notifier) With(name string, notifier reminder.Notifier) *Notifier {
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	n.secondary = append(n.secondary, namedNotifier{name: name, notifier: notifier})
	return n
}

func (n *Notifier) NotifyShowReminder(ctx context.Context) error {
	failures := 0
	for _, s := range n.secondary {
		if err := s.notifier.NotifyShowReminder(ctx); err != nil {
			n.log.Warning(
				ctx,
				"Could not deliver show-reminder signal.",
				logging.Entry("notifier", s.name),
				logging.Entry("err", err),
			)
			failures++
		}
	}

	if err := n.primary.notifier.NotifyShowReminder(ctx); err != nil {
		return err
	}
	n.log.Info(
		ctx,
		"Show-reminder signal has been sent.",
		logging.Entry("notifier", n.primary.name),
		logging.Entry("secondaryFailures", failures),
	)
	return nil
}
