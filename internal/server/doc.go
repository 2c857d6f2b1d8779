// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP listeners of a service built on the starter.
//
// It provides orchestration for the application listener and the optional
// prometheus listener, including startup, signal handling and graceful
// shutdown of both.
package server
