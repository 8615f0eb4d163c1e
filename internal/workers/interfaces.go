// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without waiting for it; the worker
// keeps going until ctx is cancelled or Stop is called. Stop blocks until
// the worker has exited and is a no-op for a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ done chan struct{} }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go process(ctx, w.done)
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
