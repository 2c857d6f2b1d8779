// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServiceConfigs indicates a missing service, environment or
	// deployment id.
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidIdentityProviderConfigs indicates that sys.identityProvider
	// lacks the URL or client secret.
	ErrInvalidIdentityProviderConfigs = errors.New("invalid identity provider configuration")
	// ErrInvalidRegistryConfigs indicates unusable sys.registry settings
	// (for example, a port outside 1-65535).
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")
)
