// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. They all end in a 401 response.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUnsupportedAuthorizationScheme is returned when the scheme is
	// anything but "Bearer" (compared case-insensitively).
	ErrUnsupportedAuthorizationScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the scheme is present but the
	// credentials are missing or blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
