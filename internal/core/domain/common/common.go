package common

import (
	"fmt"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

func Some[T any](value T) Optional[T] {
	return NewOptional(value, true)
}

func None[T any]() Optional[T] {
	var zero T
	return NewOptional(zero, false)
}

// ValueOr returns the wrapped value or def when it is absent.
func (p Optional[T]) ValueOr(def T) T {
	if !p.IsPresent {
		return def
	}
	return p.Value
}
