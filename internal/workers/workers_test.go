// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ── Ticker ───────────────────────────────────────────────────────────────────

func TestTicker_FiresRepeatedly(t *testing.T) {
	var calls atomic.Int64
	ticker := &Ticker{
		Interval: 10 * time.Millisecond,
		Fn:       func(context.Context) { calls.Add(1) },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	time.Sleep(55 * time.Millisecond)
	cancel()
	<-done

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticks, got %d", got)
}

func TestTicker_StopsOnCancel(t *testing.T) {
	var calls atomic.Int64
	ticker := &Ticker{
		Interval: 10 * time.Millisecond,
		Fn:       func(context.Context) { calls.Add(1) },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, calls.Load(), "no ticks after cancel")
}

// ── Workers aggregate ────────────────────────────────────────────────────────

func TestWorkers_RunAndWait(t *testing.T) {
	var ran atomic.Int64
	blocker := workerFunc(func(ctx context.Context) {
		ran.Add(1)
		<-ctx.Done()
	})

	ws := New(blocker, blocker, blocker)
	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)

	// all three must be running before cancel
	assert.Eventually(t, func() bool { return ran.Load() == 3 }, time.Second, 5*time.Millisecond)

	cancel()

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait hung after context cancel")
	}
}

func TestWorkers_EmptyGroup(t *testing.T) {
	ws := New()
	ws.Run(context.Background())
	assert.NotPanics(t, ws.Wait)
}

type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) { f(ctx) }
