// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the authenticated caller of a request, built from the claims of a
// verified bearer token. It lives in the request context and is discarded
// together with the request.
type User struct {
	// Roles are the client roles granted for this service, taken from
	// resource_access[<service>].roles.
	Roles StringSet `json:"roles"`

	// Scope is the space-separated "scope" claim split into a set.
	Scope StringSet `json:"scope"`

	// ClientID is the "clientId" claim. Empty when the token does not carry it.
	ClientID string `json:"client_id"`

	// ClientHost is the "clientHost" claim. Empty when the token does not
	// carry it.
	ClientHost string `json:"client_host"`

	// Organization is the optional "organization" claim.
	Organization *string `json:"organization"`

	// Project is the optional "project" claim.
	Project *string `json:"project"`
}

// HasRole reports whether the user was granted role for the service.
func (u User) HasRole(role string) bool {
	return u.Roles.Has(role)
}

// HasScope reports whether scope is part of the token scope.
func (u User) HasScope(scope string) bool {
	return u.Scope.Has(scope)
}
