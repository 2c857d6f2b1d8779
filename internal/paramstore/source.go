// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"context"

	"github.com/MKhiriev/alto-starter/internal/config"
	"github.com/MKhiriev/alto-starter/internal/logger"
)

// NewSource picks the configuration source for cfg: the local file when the
// environment is "local", the SSM parameter store otherwise.
func NewSource(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (Source, error) {
	if cfg.IsLocal() {
		return NewFileSource(cfg.LocalConfigPath, logger), nil
	}

	client, err := NewSSMClient(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}

	return NewSSMSource(client, cfg.Service, cfg.Deployment, logger), nil
}
