package resolver

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingTarget struct {
	calls atomic.Int32
}

func (c *countingTarget) Refresh(context.Context) Outcome {
	c.calls.Add(1)
	return Resolved(testVersion)
}

func TestRefresherTicksUntilStopped(t *testing.T) {
	target := &countingTarget{}
	r := newRefresher(zap.NewNop(), target, 5*time.Millisecond)

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Start(context.Background())
	}()

	require.Eventually(t, func() bool {
		return target.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
	require.NoError(t, <-errCh)

	stopped := target.calls.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, stopped, target.calls.Load())
}

func TestRefresherStopsWithContext(t *testing.T) {
	target := &countingTarget{}
	r := newRefresher(zap.NewNop(), target, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Start(ctx)
	}()

	// the first refresh happens right away
	require.Eventually(t, func() bool {
		return target.calls.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after context cancellation")
	}
}

func TestRefresherStopBeforeStart(t *testing.T) {
	r := newRefresher(zap.NewNop(), &countingTarget{}, time.Second)
	require.NoError(t, r.Stop(context.Background()))
}
