package workers

import (
	"context"
	"sync"
	"time"
)

// Workers runs a group of workers on one shared lifecycle.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// New builds a Workers aggregate over the given workers.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run launches every worker in its own goroutine and returns immediately.
// The workers stop when ctx is cancelled; Wait blocks until all have exited.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until all workers launched by Run have returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Ticker is a Worker that invokes Fn every Interval until the context is
// cancelled. The first invocation happens after one full interval. A tick
// whose Fn is still running delays nothing for other workers; within one
// Ticker invocations never overlap.
type Ticker struct {
	Interval time.Duration
	Fn       func(ctx context.Context)
}

// Run implements [Worker].
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Fn(ctx)
		}
	}
}
