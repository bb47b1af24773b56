// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is
// canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return WaitInterrupted(ctx, d, nil)
}

// WaitInterrupted waits for the duration, returning early with a nil error
// when the interrupt channel fires, or with the context error when the
// context is canceled. A nil interrupt channel never fires.
func WaitInterrupted(ctx context.Context, d time.Duration, interrupt <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-interrupt:
		return nil
	case <-timer.C:
		return nil
	}
}
