package resilience

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

// Transport wraps a base RoundTripper with retry (inner) and a circuit
// breaker (outer). Breaker state is owned by the Transport, so every client
// sharing it shares one circuit.
type Transport struct {
	base    http.RoundTripper
	cfg     Config
	breaker *gobreaker.TwoStepCircuitBreaker
	logger  *slog.Logger
	timer   backoff.Timer
}

type Option func(*Transport)

func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// WithTimer replaces the retry wait timer. Intended for tests; a shared timer
// is not safe for concurrent requests.
func WithTimer(timer backoff.Timer) Option {
	return func(t *Transport) {
		t.timer = timer
	}
}

func NewTransport(base http.RoundTripper, cfg Config, opts ...Option) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	t := &Transport{
		base:   base,
		cfg:    cfg.withDefaults(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.breaker = gobreaker.NewTwoStepCircuitBreaker(gobreaker.Settings{
		Name:        t.cfg.Name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     t.cfg.BreakDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= t.cfg.FailureThreshold
		},
		OnStateChange: t.onStateChange,
	})
	return t
}

func (t *Transport) State() gobreaker.State {
	return t.breaker.State()
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	done, err := t.breaker.Allow()
	if err != nil {
		t.logger.Warn("request rejected by circuit breaker",
			"method", req.Method, "url", req.URL.Redacted(), "state", t.breaker.State().String())
		return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, t.breaker.State())
	}
	// Only the single admitted trial call can observe half-open here.
	trial := t.breaker.State() == gobreaker.StateHalfOpen

	resp, err := t.roundTripWithRetry(req)
	switch {
	case err == nil:
		done(true)
	case isCallerCancellation(req, err):
		// Neutral while closed. A trial call must still report, otherwise the
		// half-open slot is never released. An abandoned trial proves nothing.
		if trial {
			done(false)
		}
	default:
		done(!errors.Is(err, ErrTransient))
	}
	return resp, err
}

func isCallerCancellation(req *http.Request, err error) bool {
	return req.Context().Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (t *Transport) roundTripWithRetry(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	attempts := 0
	lastStatus := 0
	var lastErr, permanentErr error

	op := func() (*http.Response, error) {
		attempts++
		attemptReq, err := rewind(req, attempts)
		if err != nil {
			permanentErr = err
			return nil, backoff.Permanent(err)
		}

		resp, err := t.base.RoundTrip(attemptReq)
		if err != nil {
			if !IsTransientError(ctx, err) {
				permanentErr = err
				return nil, backoff.Permanent(err)
			}
			lastStatus, lastErr = 0, err
			return nil, err
		}
		if IsTransientStatus(resp.StatusCode) {
			lastStatus, lastErr = resp.StatusCode, nil
			drain(resp)
			return nil, &statusError{code: resp.StatusCode}
		}
		return resp, nil
	}

	notify := func(err error, delay time.Duration) {
		t.logger.Warn("retrying request",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"attempt", attempts,
			"delay", delay,
			"status", lastStatus,
			"error", err,
		)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&exponentialBackOff{base: t.cfg.BaseDelay}, uint64(t.cfg.MaxRetries)),
		ctx,
	)

	resp, err := backoff.RetryNotifyWithTimerAndData(op, policy, notify, t.timer)
	if err == nil {
		return resp, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if permanentErr != nil {
		return nil, permanentErr
	}

	t.logger.Error("retries exhausted",
		"method", req.Method, "url", req.URL.Redacted(), "attempts", attempts, "status", lastStatus)
	return nil, &TransientError{StatusCode: lastStatus, Attempts: attempts, Err: lastErr}
}

func (t *Transport) onStateChange(name string, from, to gobreaker.State) {
	switch to {
	case gobreaker.StateOpen:
		t.logger.Error("circuit breaker opened", "breaker", name, "from", from.String(), "break_duration", t.cfg.BreakDuration)
	case gobreaker.StateHalfOpen:
		t.logger.Info("circuit breaker half-open", "breaker", name)
	case gobreaker.StateClosed:
		t.logger.Info("circuit breaker reset", "breaker", name, "from", from.String())
	}
}

// rewind returns the request to send on the given attempt. Later attempts need
// a replayable body.
func rewind(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 1 || req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("request body cannot be replayed for retry")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("replay request body: %w", err)
	}
	clone := req.Clone(req.Context())
	clone.Body = body
	return clone, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
