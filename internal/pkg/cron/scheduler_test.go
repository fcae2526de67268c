package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	var first, second atomic.Int32
	s := NewScheduler()
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load(), "a failing job must still have been invoked")

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), first.Load())
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	t.Parallel()

	ran := make(chan struct{}, 1)
	s := NewScheduler()
	s.AddJob("accrual", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not fire on start")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestScheduler_StopWaitsForInFlightRun(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	var finished atomic.Bool
	s := NewScheduler()
	s.AddJob("slow", time.Hour, func(ctx context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	})

	s.Start()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not start")
	}

	s.Stop()
	require.True(t, finished.Load(), "Stop must wait for the running job")
}
