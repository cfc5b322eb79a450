package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/pkg/shutdown"
)

func TestWait(t *testing.T) {
	t.Run("runs every hook after the signal", func(t *testing.T) {
		var calls atomic.Int32
		done := make(chan struct{})

		go func() {
			shutdown.Wait(context.Background(), time.Second,
				func(context.Context) error {
					calls.Add(1)
					return nil
				},
				func(context.Context) error {
					calls.Add(1)
					return errors.New("hook failure is logged, not fatal")
				},
			)
			close(done)
		}()

		// Give Wait a moment to install its signal handler.
		time.Sleep(50 * time.Millisecond)
		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

		select {
		case <-done:
		case <-time.After(3 * time.Second):
			t.Fatal("Wait did not return after the signal")
		}
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("returns once the timeout elapses", func(t *testing.T) {
		done := make(chan struct{})

		go func() {
			shutdown.Wait(context.Background(), 100*time.Millisecond,
				func(ctx context.Context) error {
					<-ctx.Done()
					time.Sleep(10 * time.Second)
					return nil
				},
			)
			close(done)
		}()

		time.Sleep(50 * time.Millisecond)
		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

		select {
		case <-done:
		case <-time.After(3 * time.Second):
			t.Fatal("Wait did not honor the timeout")
		}
	})
}
