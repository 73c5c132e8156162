package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Throttle inserts a fixed pause between dispatches
type Throttle struct {
	interval time.Duration
}

// NewThrottle creates a Throttle. A non-positive interval disables the pause.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Interval returns the configured pause
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Wait blocks for the interval or until ctx is done
func (t *Throttle) Wait(ctx context.Context) error {
	if t.interval <= 0 {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "throttle wait canceled")
		}
		return nil
	}

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "throttle wait canceled")
	case <-timer.C:
		return nil
	}
}
