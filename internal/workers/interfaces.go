// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers on shared lifecycle, plus a reusable fixed-period
// Ticker worker.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks for the duration of the work and must return promptly when ctx
// is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
