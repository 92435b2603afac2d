package chai

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryPolicySucceedsAfterFailures(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxElapsed:  time.Second,
		Retryable:   func(error) bool { return true },
	}

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetryPolicyStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("permanent")
	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxElapsed:  time.Second,
		Retryable:   func(err error) bool { return !errors.Is(err, permanent) },
	}

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestRetryPolicyExhaustsAttempts(t *testing.T) {
	transient := errors.New("transient")
	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxElapsed:  time.Second,
		Retryable:   func(error) bool { return true },
	}

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		return transient
	})
	if !errors.Is(err, transient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetryPolicyHonorsElapsedCeiling(t *testing.T) {
	transient := errors.New("transient")
	policy := RetryPolicy{
		MaxAttempts: 10,
		BaseDelay:   50 * time.Millisecond,
		MaxElapsed:  20 * time.Millisecond,
		Retryable:   func(error) bool { return true },
	}

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		return transient
	})
	if !errors.Is(err, transient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	// The first backoff delay would already exceed the wall-clock ceiling.
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestRetryPolicyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Minute,
		MaxElapsed:  time.Hour,
		Retryable:   func(error) bool { return true },
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := policy.Do(ctx, func() error {
		return errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDefaultRetryable(t *testing.T) {
	if DefaultRetryable(&AuthenticationError{Message: "nope"}) {
		t.Fatalf("authentication errors must not be retried")
	}
	if DefaultRetryable(&APIError{Status: 500, Message: "boom"}) {
		t.Fatalf("classified API errors must not be retried")
	}
	if !DefaultRetryable(&RateLimitError{Message: "slow down"}) {
		t.Fatalf("rate limits should be retried")
	}
	if !DefaultRetryable(errors.New("connection reset")) {
		t.Fatalf("transport errors should be retried")
	}
}
