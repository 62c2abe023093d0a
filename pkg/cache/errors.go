package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks failures reaching a remote backend.
var ErrNetwork = errors.New("network error")

// Backoff schedule for [RetryWithBackoff]: retryAttempts calls in total,
// sleeping retryDelay, then 2×, 4×, ... between them.
var (
	retryAttempts = 3
	retryDelay    = 100 * time.Millisecond
)

// RetryableError marks a transient failure worth retrying.
type RetryableError struct{ Err error }

// Retryable wraps err so that [RetryWithBackoff] retries it. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a [RetryableError].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff calls fn until it succeeds, returns an error that is not
// retryable, runs out of attempts or ctx is done. It returns the last error.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryDelay
	err := fn()
	for attempt := 1; attempt < retryAttempts && IsRetryable(err); attempt++ {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
		err = fn()
	}
	return err
}
