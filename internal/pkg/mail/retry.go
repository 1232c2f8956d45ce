package mail

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Retry decorates a Mail implementation with bounded fibonacci backoff.
//
// SMTP submission fails transiently often enough (connection resets, greylisting)
// that a couple of retries rescue most sends without holding the caller long.
type Retry struct {
	next     Mail
	attempts uint64
}

// NewRetry wraps next so each Send is attempted up to attempts times.
func NewRetry(next Mail, attempts uint64) *Retry {
	if attempts < 1 {
		attempts = 3
	}

	return &Retry{next: next, attempts: attempts}
}

// Send dispatches the message, retrying transient failures.
func (r *Retry) Send(ctx context.Context, msg Message) error {
	b := retry.NewFibonacci(200 * time.Millisecond)
	b = retry.WithCappedDuration(5*time.Second, b)
	b = retry.WithMaxRetries(r.attempts-1, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := r.next.Send(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}

		return nil
	})
}

// Close closes the wrapped sender.
func (r *Retry) Close() error {
	return r.next.Close()
}
