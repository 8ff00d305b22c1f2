package services

import "context"

// Service is a single command of the reminder. Every command is run through
// the same contract so handlers and the scheduler can wrap them uniformly.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
