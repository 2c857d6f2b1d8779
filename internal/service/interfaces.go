// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the starter's business logic: turning a bearer token
// into a [models.User] and keeping the service registered with the discovery
// registry.
package service

import (
	"context"

	"github.com/MKhiriev/alto-starter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies bearer tokens issued by the identity provider.
type AuthService interface {
	// Authenticate verifies token and converts its claims into the user of
	// the request. Errors wrap one of [ErrMissingOrMalformedCredentials],
	// [ErrTokenVerificationFailed] or [ErrClaimsShapeMismatch], or are the
	// context's error when ctx is already done.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// RegistryService manages the registration of this instance.
type RegistryService interface {
	// Register announces the instance to the registry.
	Register(ctx context.Context) error

	// Heartbeat renews the lease, registering again when the registry has
	// forgotten the instance.
	Heartbeat(ctx context.Context) error

	// Deregister removes the instance. It is a no-op when the instance was
	// never registered.
	Deregister(ctx context.Context) error

	// Instance returns the registration record.
	Instance() models.Instance
}
