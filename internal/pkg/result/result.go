// Package result provides the success/failure envelope returned by command handlers.
package result

import (
	"appointment-system/internal/pkg/errs"
)

// ErrInvalidState marks misuse of a Result, such as reading the value of a Failure.
var ErrInvalidState = errs.New("invalid result state")

// Result holds either a value or the error that prevented producing it.
// The zero value is not a valid Result; use Success or Failure.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure panics on a nil error: a Failure without a cause cannot be mapped to a response.
func Failure[T any](err error) Result[T] {
	if err == nil {
		panic(errs.Mark(errs.New("result.Failure called with nil error"), ErrInvalidState))
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value and panics on a Failure.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(errs.Mark(errs.Wrap(r.err, "value accessed on failed result"), ErrInvalidState))
	}
	return r.value
}

// Err returns the failure cause, or nil on Success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrInvalidState
	}
	return r.err
}

func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// Map transforms the value of a Success and passes a Failure through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{err: r.Err()}
	}
	return Success(fn(r.value))
}
