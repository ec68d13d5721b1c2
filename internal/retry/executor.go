package retry

import (
	"context"
	"time"
)

// Executor retries an operation while its error is classified as transient.
// Safe for concurrent use; WithOnRetry returns a copy.
type Executor struct {
	policy      Policy
	isTransient func(error) bool
	onRetry     func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor.
// Panics if isTransient is nil.
func NewExecutor(policy Policy, isTransient func(error) bool) *Executor {
	if isTransient == nil {
		panic("isTransient cannot be nil")
	}
	return &Executor{
		policy:      policy,
		isTransient: isTransient,
	}
}

// WithOnRetry returns a new Executor that calls callback before each wait.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation until it succeeds, fails fatally, the policy is
// exhausted, or ctx is done. It returns the last operation error, or the
// context error when cancelled while waiting.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	lastErr := operation(ctx)

	for attempt := 0; lastErr != nil && attempt < e.policy.MaxAttempts; attempt++ {
		if !e.isTransient(lastErr) {
			return lastErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.policy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
	}

	return lastErr
}
