// Package resilience retries operations that fail with transient errors,
// such as a storage write losing a lock or transaction race.
package resilience

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryPolicy defines the retry behavior for operations.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retry attempts (not including initial call).
	MaxRetries int

	// BaseDelay is the initial delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration

	// UseJitter scales each delay by a random factor between 0.5 and 1.5.
	UseJitter bool

	// Retryable reports whether err is worth another attempt.
	// A nil Retryable retries every error except context errors.
	Retryable func(err error) bool
}

// StoragePolicy is the policy used for local storage writes: a handful of
// quick attempts, since contention comes from another adtax process.
func StoragePolicy(retryable func(error) bool) RetryPolicy {
	return RetryPolicy{
		MaxRetries: 4,
		BaseDelay:  20 * time.Millisecond,
		MaxDelay:   250 * time.Millisecond,
		UseJitter:  true,
		Retryable:  retryable,
	}
}

// Retry executes fn with the specified retry policy.
// It returns the error from the last attempt if all retries are exhausted.
func Retry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	var lastErr error
	maxAttempts := max(policy.MaxRetries, 0) + 1

	for attempt := range maxAttempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err, policy.Retryable) {
			return err
		}

		if attempt < maxAttempts-1 {
			delay := CalculateBackoff(attempt, policy.BaseDelay, policy.MaxDelay, policy.UseJitter)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return lastErr
}

// CalculateBackoff calculates the backoff delay for a given attempt.
// The delay grows exponentially: baseDelay * 2^attempt, capped at maxDelay.
func CalculateBackoff(attempt int, baseDelay, maxDelay time.Duration, useJitter bool) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 10 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	if useJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}

	return min(delay, maxDelay)
}

func isRetryable(err error, retryable func(error) bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if retryable == nil {
		return true
	}
	return retryable(err)
}
