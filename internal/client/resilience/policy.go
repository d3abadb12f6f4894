package resilience

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// IsTransientStatus reports whether a response status is worth retrying.
func IsTransientStatus(code int) bool {
	return code >= http.StatusInternalServerError ||
		code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests
}

// IsTransientError reports whether a transport error is worth retrying.
// Errors caused by the caller's own context are never transient.
func IsTransientError(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Connection-level failures (refused, reset, EOF, dial timeouts) qualify.
	return true
}

// exponentialBackOff waits 2^n * base before retry n (n starting at 1).
type exponentialBackOff struct {
	base    time.Duration
	attempt int
}

var _ backoff.BackOff = (*exponentialBackOff)(nil)

func (b *exponentialBackOff) NextBackOff() time.Duration {
	b.attempt++
	return b.base * time.Duration(1<<b.attempt)
}

func (b *exponentialBackOff) Reset() {
	b.attempt = 0
}

// Delays lists the waits a full retry sequence would use.
func (c Config) Delays() []time.Duration {
	c = c.withDefaults()
	b := &exponentialBackOff{base: c.BaseDelay}
	out := make([]time.Duration, c.MaxRetries)
	for i := range out {
		out[i] = b.NextBackOff()
	}
	return out
}
