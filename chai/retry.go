package chai

import (
	"context"
	"errors"
	"time"
)

// RetryPolicy retries an operation with exponential backoff, bounded by both
// an attempt ceiling and a wall-clock ceiling. The zero value is not usable;
// construct with DefaultRetryPolicy or fill every field.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the delay before the second attempt; it doubles per retry.
	BaseDelay time.Duration
	// MaxElapsed caps the total wall-clock time spent across attempts.
	MaxElapsed time.Duration
	// Retryable reports whether an error is worth another attempt.
	Retryable func(error) bool
}

// DefaultRetryPolicy mirrors the endpoint contract: 3 attempts, exponential
// backoff from 500ms, 60s ceiling.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxElapsed:  60 * time.Second,
		Retryable:   DefaultRetryable,
	}
}

// DefaultRetryable retries transport failures, timeouts and rate limits.
// Authentication failures and other classified API errors are permanent.
func DefaultRetryable(err error) bool {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}
	return true
}

// Do runs op until it succeeds, a ceiling is hit, or the error is not
// retryable. The last error is returned.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	start := time.Now()

	var err error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := p.BaseDelay * time.Duration(1<<(attempt-1)) // exponential backoff
			if elapsed := time.Since(start); elapsed+delay > p.MaxElapsed {
				return err
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = op()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
	}
	return err
}
