// Package resilience retries operations that fail transiently, such as
// removing a file that another process has not released yet.
package resilience

import (
	"context"
	"time"
)

// Default delays applied when a Policy leaves them unset.
const (
	DefaultBaseDelay = 100 * time.Millisecond
	DefaultMaxDelay  = 2 * time.Second
)

// Policy defines the retry behavior for an operation.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// BaseDelay is the wait before the first retry. It doubles per retry.
	BaseDelay time.Duration
	// MaxDelay caps a single wait.
	MaxDelay time.Duration
	// Retryable reports whether err is worth another attempt. Nil retries
	// every error.
	Retryable func(err error) bool
}

// Retry calls fn until it succeeds, the policy is exhausted, fn returns a
// non-retryable error, or ctx is done. It returns the last error of fn, or
// the context error if ctx ended the wait.
func Retry(ctx context.Context, policy Policy, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if err != nil {
				return err
			}
			return ctxErr
		}

		err = fn()
		if err == nil {
			return nil
		}
		if attempt >= policy.MaxRetries || (policy.Retryable != nil && !policy.Retryable(err)) {
			return err
		}

		timer := time.NewTimer(Backoff(attempt, policy.BaseDelay, policy.MaxDelay))
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}

// Backoff returns the wait before retry number attempt (zero based):
// base * 2^attempt, capped at maxDelay.
func Backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	if base <= 0 {
		base = DefaultBaseDelay
	}
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}

	delay := base
	for range attempt {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	return min(delay, maxDelay)
}
