package reminder

import "context"

// Presenter drives the window of the presentation layer.
type Presenter interface {
	// Show shows the window, focuses it and keeps it on top.
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
}

// Notifier emits the "show reminder" signal.
type Notifier interface {
	NotifyShowReminder(ctx context.Context) error
}
