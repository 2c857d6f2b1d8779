// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the starter packages: typed
// context keys, JSON response writing, the resty-based HTTP client and JWT
// key/claims handling.
package utils

import (
	"context"

	"github.com/MKhiriev/alto-starter/models"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the context key under which the auth middleware stores the
// authenticated [models.User].
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user. The value is visible only to
// the request owning ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext returns the authenticated user stored in ctx.
//
// ok is false when the request was not authenticated (e.g. the health check)
// or the value has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
