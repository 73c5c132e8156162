package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/demote/pkg/usecase"
)

func TestThrottle(t *testing.T) {
	t.Run("waits for the interval", func(t *testing.T) {
		throttle := usecase.NewThrottle(30 * time.Millisecond)
		gt.V(t, throttle.Interval()).Equal(30 * time.Millisecond)

		start := time.Now()
		gt.NoError(t, throttle.Wait(context.Background()))
		gt.True(t, time.Since(start) >= 30*time.Millisecond)
	})

	t.Run("returns early on cancellation", func(t *testing.T) {
		throttle := usecase.NewThrottle(time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(10*time.Millisecond, cancel)

		start := time.Now()
		err := throttle.Wait(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
		gt.True(t, time.Since(start) < time.Second)
	})

	t.Run("zero interval does not pause", func(t *testing.T) {
		throttle := usecase.NewThrottle(0)
		gt.NoError(t, throttle.Wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		gt.Error(t, throttle.Wait(ctx))
	})
}
