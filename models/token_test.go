// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenClaims_ToUser(t *testing.T) {
	org := "first_company"
	claims := &TokenClaims{
		ResourceAccess: map[string]ResourceAccess{
			"intelligent-search": {Roles: []string{"admin", "viewer"}},
			"other":              {Roles: []string{"ignored"}},
		},
		Scope:        "read write",
		ClientID:     "search-client",
		ClientHost:   "10.0.0.1",
		Organization: &org,
	}

	user, ok := claims.ToUser("intelligent-search")
	require.True(t, ok)

	assert.Equal(t, NewStringSet("admin", "viewer"), user.Roles)
	assert.Equal(t, NewStringSet("read", "write"), user.Scope)
	assert.Equal(t, "search-client", user.ClientID)
	assert.Equal(t, "10.0.0.1", user.ClientHost)
	require.NotNil(t, user.Organization)
	assert.Equal(t, "first_company", *user.Organization)
	assert.Nil(t, user.Project)
	assert.True(t, user.HasRole("admin"))
	assert.False(t, user.HasRole("ignored"))
	assert.True(t, user.HasScope("write"))
}

func TestTokenClaims_ToUser_MissingResourceAccess(t *testing.T) {
	claims := &TokenClaims{
		ResourceAccess: map[string]ResourceAccess{"other": {Roles: []string{"x"}}},
	}

	_, ok := claims.ToUser("intelligent-search")
	assert.False(t, ok)

	_, ok = (&TokenClaims{}).ToUser("intelligent-search")
	assert.False(t, ok)
}

func TestTokenClaims_ToUser_EmptyRolesStillValid(t *testing.T) {
	claims := &TokenClaims{
		ResourceAccess: map[string]ResourceAccess{"svc": {}},
	}

	user, ok := claims.ToUser("svc")
	require.True(t, ok)
	assert.Empty(t, user.Roles)
	assert.Empty(t, user.Scope)
}
