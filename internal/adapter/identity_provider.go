// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/alto-starter/internal/config"
	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/utils"
)

type realmResponse struct {
	Realm     string `json:"realm"`
	PublicKey string `json:"public_key"`
}

type identityProviderAdapter struct {
	client *utils.HTTPClient
	realm  string

	logger *logger.Logger
}

// NewIdentityProviderAdapter returns an [IdentityProviderAdapter] for the
// realm described by cfg. Returns an error if cfg.URL is not a valid URL.
func NewIdentityProviderAdapter(cfg config.IdentityProvider, logger *logger.Logger) (IdentityProviderAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &identityProviderAdapter{client: client, realm: cfg.Realm, logger: logger}, nil
}

// PublicKey implements [IdentityProviderAdapter] with GET /realms/{realm}.
func (a *identityProviderAdapter) PublicKey(ctx context.Context) (string, error) {
	var realm realmResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("realm", a.realm).
		SetResult(&realm).
		Get("/realms/{realm}")
	if err != nil {
		return "", fmt.Errorf("realm request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("realm %s: %w", a.realm, err)
	}

	key := strings.TrimSpace(realm.PublicKey)
	if key == "" {
		return "", fmt.Errorf("realm %s: %w", a.realm, ErrEmptyPublicKey)
	}

	a.logger.Debug().Str("realm", a.realm).Msg("fetched realm public key")
	return key, nil
}
