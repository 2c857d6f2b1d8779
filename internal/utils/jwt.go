// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/alto-starter/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	pemHeader = "-----BEGIN PUBLIC KEY-----"
	pemFooter = "-----END PUBLIC KEY-----"
)

// validMethods are the signing algorithms accepted for access tokens.
var validMethods = []string{
	jwt.SigningMethodRS256.Alg(),
	jwt.SigningMethodRS384.Alg(),
	jwt.SigningMethodRS512.Alg(),
}

// ParseRSAPublicKey parses the realm public key published by the identity
// provider. Both a full PEM document and the bare base64 DER body (the form
// returned by the realm endpoint) are accepted.
func ParseRSAPublicKey(key string) (*rsa.PublicKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("empty public key")
	}

	if !strings.HasPrefix(key, "-----BEGIN") {
		key = pemHeader + "\n" + key + "\n" + pemFooter
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("error parsing RSA public key: %w", err)
	}

	return publicKey, nil
}

// ValidateAndParseJWTToken verifies tokenString against publicKey and returns
// its claims.
//
// Validation includes:
//   - signature (RS256, RS384 or RS512 only);
//   - expiration: the exp claim must be present and in the future;
//   - nbf/iat when present.
//
// The audience claim is not validated.
func ValidateAndParseJWTToken(tokenString string, publicKey *rsa.PublicKey) (*models.TokenClaims, error) {
	if publicKey == nil {
		return nil, errors.New("no public key configured")
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return publicKey, nil
	},
		jwt.WithValidMethods(validMethods),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}
