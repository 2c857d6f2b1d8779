// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// ResourceAccess holds the client roles granted to a token for one resource
// (service).
type ResourceAccess struct {
	Roles []string `json:"roles"`
}

// TokenClaims is the claim set of an access token issued by the identity
// provider.
//
// It embeds [jwt.RegisteredClaims] so that the parser validates the standard
// time-based claims (exp, nbf, iat). Audience is present but intentionally not
// validated by the auth service.
type TokenClaims struct {
	jwt.RegisteredClaims

	// ResourceAccess maps a client (service) id to the roles granted for it.
	ResourceAccess map[string]ResourceAccess `json:"resource_access,omitempty"`

	// Scope is the space-separated list of granted scopes.
	Scope string `json:"scope,omitempty"`

	// ClientID and ClientHost are set by the identity provider for tokens
	// obtained with the client-credentials grant.
	ClientID   string `json:"clientId,omitempty"`
	ClientHost string `json:"clientHost,omitempty"`

	// Organization and Project are optional platform-specific claims.
	Organization *string `json:"organization,omitempty"`
	Project      *string `json:"project,omitempty"`
}

// RolesFor returns the roles granted for the given service and whether the
// token carries an entry for it at all.
func (c *TokenClaims) RolesFor(serviceID string) ([]string, bool) {
	access, ok := c.ResourceAccess[serviceID]
	if !ok {
		return nil, false
	}
	return access.Roles, true
}

// ToUser converts the claims into the request-scoped [User] for serviceID.
// The second return value is false when the token has no resource_access
// entry for serviceID.
func (c *TokenClaims) ToUser(serviceID string) (User, bool) {
	roles, ok := c.RolesFor(serviceID)
	if !ok {
		return User{}, false
	}

	return User{
		Roles:        NewStringSet(roles...),
		Scope:        SplitStringSet(c.Scope),
		ClientID:     c.ClientID,
		ClientHost:   c.ClientHost,
		Organization: c.Organization,
		Project:      c.Project,
	}, true
}
