// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers of the starter.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and must not block; implementations spawn their own
// goroutines. Stop halts the worker and waits for an in-flight job to finish.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { /* schedule background processing */ }
//	func (w *MyWorker) Stop() { /* wait for it to drain */ }
type Worker interface {
	Run()
	Stop()
}
