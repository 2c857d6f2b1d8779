// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/metrics"
	"github.com/MKhiriev/alto-starter/internal/service"
	"github.com/MKhiriev/alto-starter/internal/utils"
)

const bearerScheme = "bearer"

// auth is an HTTP middleware that enforces bearer token authentication.
//
// Requests to [HealthPath] pass through untouched. Every other request must
// carry "Authorization: Bearer <token>"; the token is handed to
// [service.AuthService.Authenticate] and the resulting user is stored in the
// request context with [utils.WithUser] before delegating to the next handler.
//
// Any failure (absent header, another scheme, empty token, bad signature,
// expired token, no roles entry for the service) is answered with a 401 and
// an empty body. When the request context is already cancelled the
// middleware returns without writing anything.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == HealthPath {
			h.metrics.ObserveAuth(metrics.AuthResultSkipped)
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request without usable credentials")
			h.metrics.ObserveAuth(metrics.AuthResultMissing)
			unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.authService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				log.Debug().Err(err).Msg("request cancelled before authentication")
				return
			case errors.Is(err, service.ErrClaimsShapeMismatch):
				log.Warn().Err(err).Msg("token has no roles for this service")
				h.metrics.ObserveAuth(metrics.AuthResultClaims)
			case errors.Is(err, service.ErrMissingOrMalformedCredentials):
				log.Debug().Err(err).Msg("request without usable credentials")
				h.metrics.ObserveAuth(metrics.AuthResultMissing)
			default:
				log.Info().Err(err).Msg("token rejected")
				h.metrics.ObserveAuth(metrics.AuthResultInvalid)
			}
			unauthorized(w)
			return
		}

		h.metrics.ObserveAuth(metrics.AuthResultAuthenticated)
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the credentials from a raw
// "Authorization" header value of the form:
//
//	Authorization: <scheme> <credentials>
//
// The header is split on the first space. The scheme must be "Bearer" in any
// letter case.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, credentials, _ := strings.Cut(authHeader, " ")
	if !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrUnsupportedAuthorizationScheme
	}

	credentials = strings.TrimSpace(credentials)
	if credentials == "" {
		return "", ErrEmptyToken
	}

	return credentials, nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
}
