// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/alto-starter/internal/adapter"
	"github.com/MKhiriev/alto-starter/internal/config"
	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/metrics"
	"github.com/MKhiriev/alto-starter/internal/utils"
	"github.com/MKhiriev/alto-starter/models"
)

type registryService struct {
	adapter  adapter.RegistryAdapter
	instance models.Instance

	mu         sync.Mutex
	registered bool

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewRegistryService builds the registration record from cfg and returns a
// RegistryService. When cfg.ServerIP is empty the host address is resolved.
func NewRegistryService(registryAdapter adapter.RegistryAdapter, cfg config.Registry, m *metrics.Metrics, logger *logger.Logger) (RegistryService, error) {
	ip := cfg.ServerIP
	if ip == "" {
		resolved, err := utils.ResolveHostIP()
		if err != nil {
			return nil, fmt.Errorf("resolve instance address: %w", err)
		}
		ip = resolved
	}

	instance := models.NewInstance(
		cfg.AppName,
		ip,
		cfg.Port,
		int(cfg.HeartbeatInterval.Seconds()),
		int(cfg.LeaseDuration.Seconds()),
	)

	return &registryService{
		adapter:  registryAdapter,
		instance: instance,
		metrics:  m,
		logger:   logger,
	}, nil
}

func (s *registryService) Instance() models.Instance {
	return s.instance
}

func (s *registryService) Register(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.register(ctx)
}

func (s *registryService) register(ctx context.Context) error {
	if err := s.adapter.Register(ctx, s.instance); err != nil {
		s.logger.Err(err).Str("instance_id", s.instance.ID).Msg("registration failed")
		return fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}

	s.registered = true
	s.metrics.SetRegistered(true)
	s.logger.Info().
		Str("app", s.instance.App).
		Str("instance_id", s.instance.ID).
		Msg("registered with service registry")

	return nil
}

func (s *registryService) Heartbeat(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.adapter.Heartbeat(ctx, s.instance.App, s.instance.ID)
	switch {
	case err == nil:
		s.metrics.ObserveHeartbeat(metrics.ResultSuccess)
		return nil
	case errors.Is(err, adapter.ErrNotFound):
		s.logger.Warn().Str("instance_id", s.instance.ID).Msg("registry lost the instance, registering again")
		if regErr := s.register(ctx); regErr != nil {
			s.metrics.ObserveHeartbeat(metrics.ResultFailure)
			return regErr
		}
		s.metrics.ObserveHeartbeat(metrics.ResultRenewed)
		return nil
	default:
		s.metrics.ObserveHeartbeat(metrics.ResultFailure)
		return fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
}

func (s *registryService) Deregister(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.registered {
		return nil
	}

	if err := s.adapter.Deregister(ctx, s.instance.App, s.instance.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}

	s.registered = false
	s.metrics.SetRegistered(false)
	s.logger.Info().Str("instance_id", s.instance.ID).Msg("deregistered from service registry")

	return nil
}
