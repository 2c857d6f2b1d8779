// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rsa"
	"fmt"
	"strings"

	"github.com/MKhiriev/alto-starter/internal/adapter"
	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/utils"
	"github.com/MKhiriev/alto-starter/models"
)

// authService is the concrete implementation of AuthService.
// All of its state is read-only after construction, so one instance serves
// every request concurrently.
type authService struct {
	// serviceID selects the resource_access entry the roles are read from.
	serviceID string

	// publicKey is the realm key fetched once at startup. It is never
	// refreshed; a key rotation needs a restart.
	publicKey *rsa.PublicKey

	logger *logger.Logger
}

// NewAuthService fetches the realm public key through idp and returns an
// AuthService for serviceID.
//
// Returns ErrPublicKeyUnavailable (wrapped) when the key cannot be fetched
// or parsed.
func NewAuthService(ctx context.Context, idp adapter.IdentityProviderAdapter, serviceID string, logger *logger.Logger) (AuthService, error) {
	rawKey, err := idp.PublicKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPublicKeyUnavailable, err)
	}

	publicKey, err := utils.ParseRSAPublicKey(rawKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPublicKeyUnavailable, err)
	}

	logger.Info().Str("service_id", serviceID).Msg("identity provider public key loaded")

	return NewAuthServiceWithKey(publicKey, serviceID, logger), nil
}

// NewAuthServiceWithKey returns an AuthService verifying tokens with an
// already known key.
func NewAuthServiceWithKey(publicKey *rsa.PublicKey, serviceID string, logger *logger.Logger) AuthService {
	return &authService{
		serviceID: serviceID,
		publicKey: publicKey,
		logger:    logger,
	}
}

// Authenticate verifies the signature (RS256/RS384/RS512) and expiry of
// token, then maps the claims:
//   - resource_access[serviceID].roles → Roles;
//   - scope split on spaces → Scope;
//   - clientId, clientHost, organization and project as they are.
//
// A token without a resource_access entry for the service is rejected with
// ErrClaimsShapeMismatch. The audience is not checked.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return models.User{}, ErrMissingOrMalformedCredentials
	}

	claims, err := utils.ValidateAndParseJWTToken(token, a.publicKey)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenVerificationFailed, err)
	}

	user, ok := claims.ToUser(a.serviceID)
	if !ok {
		return models.User{}, fmt.Errorf("%w: no resource_access entry for %q", ErrClaimsShapeMismatch, a.serviceID)
	}

	return user, nil
}
