package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"appointment-system/internal/client/resilience"
)

type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindNotFound    Kind = "NOT_FOUND"
	KindTransient   Kind = "TRANSIENT"
	KindCircuitOpen Kind = "CIRCUIT_OPEN"
	KindCancelled   Kind = "CANCELLED"
	KindTransport   Kind = "TRANSPORT"
	KindUnexpected  Kind = "UNEXPECTED"
)

const msgInvalidResponse = "invalid response from server"

// Error is the only error type the Client returns.
type Error struct {
	Kind             Kind
	Message          string
	StatusCode       int
	ValidationErrors map[string][]string
	Err              error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Kind == KindValidation && len(e.ValidationErrors) > 0 {
		fields := make([]string, 0, len(e.ValidationErrors))
		for f := range e.ValidationErrors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(&b, "; %s: %s", f, strings.Join(e.ValidationErrors[f], ", "))
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func fromTransportError(err error) *Error {
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		return &Error{Kind: KindCircuitOpen, Message: "service temporarily unavailable, try again later", Err: err}
	case errors.Is(err, resilience.ErrTransient):
		e := &Error{Kind: KindTransient, Message: "service unavailable after retries", Err: err}
		var te *resilience.TransientError
		if errors.As(err, &te) {
			e.StatusCode = te.StatusCode
		}
		return e
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindCancelled, Message: "request cancelled", Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTransient, Message: "request timed out", Err: err}
	default:
		return &Error{Kind: KindTransport, Message: "could not reach server", Err: err}
	}
}

func fromProblem(status int, body []byte) *Error {
	var p problem
	if len(body) == 0 || json.Unmarshal(body, &p) != nil {
		return &Error{Kind: KindUnexpected, StatusCode: status, Message: fmt.Sprintf("server error: %d", status)}
	}

	if len(p.Errors) > 0 {
		msg := p.Title
		if msg == "" {
			msg = "validation failed"
		}
		return &Error{Kind: KindValidation, StatusCode: status, Message: msg, ValidationErrors: p.Errors}
	}

	msg := p.Detail
	if msg == "" {
		msg = p.Title
	}
	if msg == "" {
		msg = "an error occurred"
	}
	return &Error{Kind: KindUnexpected, StatusCode: status, Message: msg}
}
