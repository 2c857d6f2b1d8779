// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrMissingOrMalformedCredentials = errors.New("missing or malformed credentials")
	ErrTokenVerificationFailed       = errors.New("token verification failed")
	ErrClaimsShapeMismatch           = errors.New("token claims do not match the expected shape")

	ErrPublicKeyUnavailable = errors.New("identity provider public key unavailable")
	ErrRegistryUnavailable  = errors.New("service registry unavailable")
)
