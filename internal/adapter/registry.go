// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/alto-starter/internal/config"
	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/utils"
	"github.com/MKhiriev/alto-starter/models"
)

type registryAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewRegistryAdapter returns a [RegistryAdapter] speaking the Eureka REST
// API at cfg.URL + cfg.Context. Returns an error if cfg.URL is not a valid
// URL.
func NewRegistryAdapter(cfg config.Registry, logger *logger.Logger) (RegistryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(joinPath(baseURL, cfg.Context))

	return &registryAdapter{client: client, logger: logger}, nil
}

// Register implements [RegistryAdapter] with POST /apps/{app}.
func (a *registryAdapter) Register(ctx context.Context, instance models.Instance) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("app", instance.App).
		SetBody(models.InstanceRegistration{Instance: instance}).
		Post("/apps/{app}")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Heartbeat implements [RegistryAdapter] with PUT /apps/{app}/{instanceID}.
func (a *registryAdapter) Heartbeat(ctx context.Context, app, instanceID string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"app": app, "id": instanceID}).
		SetQueryParam("status", models.InstanceStatusUp).
		Put("/apps/{app}/{id}")
	if err != nil {
		return fmt.Errorf("heartbeat request: %w", err)
	}

	return mapHTTPError(resp)
}

// Deregister implements [RegistryAdapter] with DELETE /apps/{app}/{instanceID}.
func (a *registryAdapter) Deregister(ctx context.Context, app, instanceID string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"app": app, "id": instanceID}).
		Delete("/apps/{app}/{id}")
	if err != nil {
		return fmt.Errorf("deregister request: %w", err)
	}

	return mapHTTPError(resp)
}
