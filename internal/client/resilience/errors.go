package resilience

import (
	"errors"
	"fmt"
)

var (
	// ErrTransient is returned once every retry of a transient failure is spent.
	ErrTransient = errors.New("transient service failure")
	// ErrCircuitOpen is returned without any network traffic while the breaker rejects calls.
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// TransientError carries the outcome of the last attempt.
// StatusCode is zero when the last attempt failed at the connection level.
type TransientError struct {
	StatusCode int
	Attempts   int
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d after %d attempts", ErrTransient, e.StatusCode, e.Attempts)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v after %d attempts", ErrTransient, e.Err, e.Attempts)
	}
	return fmt.Sprintf("%s after %d attempts", ErrTransient, e.Attempts)
}

func (e *TransientError) Is(target error) bool {
	return target == ErrTransient
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("transient status %d", e.code)
}
