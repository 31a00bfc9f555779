// Package retry holds the backoff policy shared by the connectivity
// monitor, the request queue and the sync ledger, so the delay math lives
// in one place.
package retry

import (
	"context"
	"time"
)

// Strategy selects how the delay grows between attempts
type Strategy string

const (
	// StrategyExponential doubles the delay on every attempt:
	// initial * 2^(attempt-1)
	StrategyExponential Strategy = "exponential"

	// StrategyLinear grows the delay linearly: initial * attempt
	StrategyLinear Strategy = "linear"

	// StrategyImmediate retries without delay
	StrategyImmediate Strategy = "immediate"
)

// Policy describes a retry schedule
type Policy struct {
	Strategy     Strategy
	InitialDelay time.Duration
	MaxAttempts  int
}

// DefaultPolicy matches the defaults the queue ships with
func DefaultPolicy() Policy {
	return Policy{
		Strategy:     StrategyExponential,
		InitialDelay: time.Second,
		MaxAttempts:  3,
	}
}

// Delay returns the pause before re-running attempt number `attempt`.
// Attempts are 1-based: Delay(1) is the pause after the first failure.
// Unknown strategies fall back to the initial delay.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	switch p.Strategy {
	case StrategyExponential:
		return p.InitialDelay << (attempt - 1)
	case StrategyLinear:
		return p.InitialDelay * time.Duration(attempt)
	case StrategyImmediate:
		return 0
	default:
		return p.InitialDelay
	}
}

// Sleep blocks for the backoff delay of the given attempt, returning early
// with the context error if the context is cancelled first.
func (p Policy) Sleep(ctx context.Context, attempt int) error {
	d := p.Delay(attempt)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn up to MaxAttempts times, sleeping per the policy between
// attempts. The last error is returned once attempts are exhausted.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < p.MaxAttempts {
			if err := p.Sleep(ctx, attempt); err != nil {
				return err
			}
		}
	}

	return lastErr
}
