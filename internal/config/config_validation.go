// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Service == "" || cfg.Environment == "" || cfg.Deployment == "" {
		return ErrInvalidServiceConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (idp *IdentityProvider) validate() error {
	if idp.URL == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidIdentityProviderConfigs)
	}

	if idp.ClientSecret == "" {
		return fmt.Errorf("%w: empty client secret", ErrInvalidIdentityProviderConfigs)
	}

	return nil
}

func (r *Registry) validate() error {
	if !r.Enabled {
		return nil
	}

	if r.URL == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidRegistryConfigs)
	}

	if r.Port < 1 || r.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidRegistryConfigs, r.Port)
	}

	if r.HeartbeatInterval <= 0 {
		return fmt.Errorf("%w: non-positive heartbeat interval", ErrInvalidRegistryConfigs)
	}

	return nil
}
