// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the listeners managed by this
// package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer() error

	// Run serves until ctx is done or a listener fails, then shuts down
	// gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every listener.
	Shutdown(ctx context.Context) error
}
