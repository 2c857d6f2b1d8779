// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/MKhiriev/alto-starter/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func publicKeyBody(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(der)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() *models.TokenClaims {
	return &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Audience:  jwt.ClaimStrings{"someone-else"},
		},
		ResourceAccess: map[string]models.ResourceAccess{"svc": {Roles: []string{"admin"}}},
		Scope:          "read write",
	}
}

// ── ParseRSAPublicKey ─────────────────────────────────────────────────────────

func TestParseRSAPublicKey_BareBody(t *testing.T) {
	key := generateKey(t)

	got, err := ParseRSAPublicKey(publicKeyBody(t, key))

	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(got))
}

func TestParseRSAPublicKey_FullPEM(t *testing.T) {
	key := generateKey(t)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	doc := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	got, err := ParseRSAPublicKey(string(doc))

	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(got))
}

func TestParseRSAPublicKey_Invalid(t *testing.T) {
	_, err := ParseRSAPublicKey("")
	assert.Error(t, err)

	_, err = ParseRSAPublicKey("not-a-key")
	assert.Error(t, err)
}

// ── ValidateAndParseJWTToken ──────────────────────────────────────────────────

func TestValidateAndParseJWTToken_Valid(t *testing.T) {
	key := generateKey(t)
	token := sign(t, jwt.SigningMethodRS256, key, validClaims())

	claims, err := ValidateAndParseJWTToken(token, &key.PublicKey)

	require.NoError(t, err)
	assert.Equal(t, "read write", claims.Scope)
	assert.Equal(t, []string{"admin"}, claims.ResourceAccess["svc"].Roles)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	key := generateKey(t)
	otherKey := generateKey(t)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExp := validClaims()
	noExp.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"signed with another key", sign(t, jwt.SigningMethodRS256, otherKey, validClaims())},
		{"expired", sign(t, jwt.SigningMethodRS256, key, expired)},
		{"missing exp", sign(t, jwt.SigningMethodRS256, key, noExp)},
		{"hmac algorithm", sign(t, jwt.SigningMethodHS256, []byte("secret"), validClaims())},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateAndParseJWTToken(tt.token, &key.PublicKey)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateAndParseJWTToken_NilKey(t *testing.T) {
	_, err := ValidateAndParseJWTToken("a.b.c", nil)
	assert.Error(t, err)
}
