// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/metrics"
	"github.com/MKhiriev/alto-starter/internal/mock"
	"github.com/MKhiriev/alto-starter/internal/service"
)

// newTestHandler создаёт Handler с nop-логгером и отдельным реестром метрик.
func newTestHandler(authService service.AuthService) *Handler {
	return NewHandler(authService, metrics.New(prometheus.NewRegistry()), logger.Nop())
}

// newHandlerWithAuthMock builds a Handler backed by a gomock AuthService.
func newHandlerWithAuthMock(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)
	return newTestHandler(authService), authService
}
