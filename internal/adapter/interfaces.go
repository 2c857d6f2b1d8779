// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP adapters of the starter: the
// identity provider (Keycloak) realm endpoint and the discovery registry
// (Eureka) REST API.
//
// Both adapters are built on the shared resty client wrapper from
// internal/utils. Non-2xx responses are translated by mapHTTPError into the
// sentinel errors of errors.go so callers can branch with [errors.Is] (for
// example [ErrNotFound] on a heartbeat for an unknown instance).
package adapter

import (
	"context"

	"github.com/MKhiriev/alto-starter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProviderAdapter reads realm metadata from the identity provider.
type IdentityProviderAdapter interface {
	// PublicKey returns the base64 body of the realm's RSA public key, as
	// published in the "public_key" field of the realm endpoint.
	PublicKey(ctx context.Context) (string, error)
}

// RegistryAdapter talks to the service discovery registry.
type RegistryAdapter interface {
	// Register announces instance to the registry.
	Register(ctx context.Context, instance models.Instance) error

	// Heartbeat renews the lease of a registered instance. It returns
	// [ErrNotFound] (wrapped) when the registry no longer knows the instance.
	Heartbeat(ctx context.Context, app, instanceID string) error

	// Deregister removes the instance from the registry.
	Deregister(ctx context.Context, app, instanceID string) error
}
