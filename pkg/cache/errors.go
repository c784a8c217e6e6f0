package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks failures to reach a remote backend (Redis, MongoDB).
var ErrNetwork = errors.New("network error")

// RetryableError marks a transient failure that RetryWithBackoff may retry.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether any error in err's chain is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

const retryAttempts = 3

// retryDelay is the wait before the second attempt; it doubles after
// each failure. Tests shorten it.
var retryDelay = time.Second

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// Retryable, or has failed retryAttempts times. It gives up early with
// ctx.Err() when ctx is cancelled between attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	var err error
	for attempt, delay := 1, retryDelay; ; attempt, delay = attempt+1, delay*2 {
		if err = fn(); err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
