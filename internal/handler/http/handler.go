// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/metrics"
	"github.com/MKhiriev/alto-starter/internal/service"
)

type Handler struct {
	authService service.AuthService
	metrics     *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(authService service.AuthService, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		authService: authService,
		metrics:     metrics,
		logger:      logger,
	}
}
