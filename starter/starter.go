// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package starter plugs a chi-based web service into the Alto platform.
//
// Initialize loads the service configuration (AWS SSM outside the "local"
// environment, ./local.config inside it), registers the instance with the
// discovery registry, installs bearer token authentication on the router and
// mounts GET /actuator/health:
//
//	router := chi.NewRouter()
//	st, err := starter.Initialize(ctx, router, "intelligent-search", "dev", "eu1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer st.Close(context.Background())
//
//	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
//		user, _ := starter.CurrentUser(r)
//		...
//	})
//
// Initialize must run before the host registers its own routes.
package starter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/alto-starter/internal/adapter"
	"github.com/MKhiriev/alto-starter/internal/config"
	handler "github.com/MKhiriev/alto-starter/internal/handler/http"
	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/metrics"
	"github.com/MKhiriev/alto-starter/internal/paramstore"
	"github.com/MKhiriev/alto-starter/internal/service"
	"github.com/MKhiriev/alto-starter/internal/utils"
	"github.com/MKhiriev/alto-starter/internal/workers"
	"github.com/MKhiriev/alto-starter/models"
	"github.com/MKhiriev/alto-starter/props"
)

// HealthPath is the unauthenticated health-check route.
const HealthPath = handler.HealthPath

// Starter is the result of a successful Initialize.
type Starter struct {
	props   *props.Tree
	metrics *metrics.Metrics

	registry service.RegistryService
	workers  *workers.Workers

	closeOnce sync.Once
	closeErr  error

	logger *logger.Logger
}

// Initialize bootstraps the service identified by serviceID.
//
// Any failure (configuration source, identity provider, registry) is
// returned and leaves nothing running; the host is expected to abort.
func Initialize(ctx context.Context, router chi.Router, serviceID, environment, deploymentID string, opts ...Option) (*Starter, error) {
	if router == nil {
		return nil, ErrNilRouter
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewLogger(serviceID)
	}
	log := o.logger

	cfg, err := processConfig(serviceID, environment, deploymentID, o)
	if err != nil {
		return nil, err
	}

	source, err := newSource(ctx, cfg, o)
	if err != nil {
		return nil, err
	}

	values, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	tree := props.New().Merge(props.FromFlatMap(values))
	sys, err := config.NewSys(tree.Pop("sys", map[string]any{}), serviceID, deploymentID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", environment).
		Str("deployment", deploymentID).
		Strs("keys", tree.Keys()).
		Msg("configuration loaded")

	s := &Starter{
		props:   tree,
		metrics: metrics.New(o.metricsRegistry),
		logger:  log,
	}

	authService, err := newAuthService(ctx, sys.IdentityProvider, serviceID, o)
	if err != nil {
		return nil, err
	}

	if sys.Registry.Enabled {
		if err = s.startRegistry(ctx, sys.Registry, o); err != nil {
			return nil, err
		}
	} else {
		log.Info().Msg("service registry disabled")
	}

	handler.NewHandler(authService, s.metrics, log).Install(router)

	return s, nil
}

func processConfig(serviceID, environment, deploymentID string, o *options) (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	cfg.Service = serviceID
	cfg.Environment = environment
	cfg.Deployment = deploymentID
	if o.region != "" {
		cfg.AWSRegion = o.region
	}
	if o.localConfigPath != "" {
		cfg.LocalConfigPath = o.localConfigPath
	}

	return cfg, nil
}

func newSource(ctx context.Context, cfg *config.StructuredConfig, o *options) (paramstore.Source, error) {
	if o.source != nil {
		return o.source, nil
	}
	return paramstore.NewSource(ctx, cfg, o.logger)
}

func newAuthService(ctx context.Context, cfg config.IdentityProvider, serviceID string, o *options) (service.AuthService, error) {
	var idp adapter.IdentityProviderAdapter = o.identityProvider
	if idp == nil {
		var err error
		if idp, err = adapter.NewIdentityProviderAdapter(cfg, o.logger); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPublicKeyUnavailable, err)
		}
	}
	return service.NewAuthService(ctx, idp, serviceID, o.logger)
}

func (s *Starter) startRegistry(ctx context.Context, cfg config.Registry, o *options) error {
	var registryAdapter adapter.RegistryAdapter = o.registry
	if registryAdapter == nil {
		var err error
		if registryAdapter, err = adapter.NewRegistryAdapter(cfg, s.logger); err != nil {
			return fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
		}
	}

	registry, err := service.NewRegistryService(registryAdapter, cfg, s.metrics, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}

	heartbeat, err := workers.NewHeartbeatWorker(registry, cfg.HeartbeatInterval, cfg.RequestTimeout, s.logger)
	if err != nil {
		return err
	}

	if err = registry.Register(ctx); err != nil {
		return err
	}

	s.registry = registry
	s.workers = workers.NewWorkers(heartbeat)
	s.workers.Run()

	return nil
}

// Props returns the service configuration without the "sys" subtree. The
// tree must not be modified once the server accepts traffic.
func (s *Starter) Props() *props.Tree {
	return s.props
}

// Metrics serves the starter's prometheus collectors.
func (s *Starter) Metrics() http.Handler {
	return s.metrics.Handler()
}

// Instance returns the registry record of this instance and false when the
// registry is disabled.
func (s *Starter) Instance() (models.Instance, bool) {
	if s.registry == nil {
		return models.Instance{}, false
	}
	return s.registry.Instance(), true
}

// Close stops the heartbeat and removes the instance from the registry.
// Calls after the first return the first result.
func (s *Starter) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		if s.workers != nil {
			s.workers.Stop()
		}
		if s.registry != nil {
			s.closeErr = s.registry.Deregister(ctx)
		}
		if s.closeErr != nil {
			s.logger.Err(s.closeErr).Msg("error closing starter")
		}
	})
	return s.closeErr
}

// CurrentUser returns the user the auth middleware attached to r. ok is
// false for unauthenticated routes such as the health check.
func CurrentUser(r *http.Request) (models.User, bool) {
	return utils.GetUserFromContext(r.Context())
}

// IsUnavailable reports whether err was caused by an unreachable platform
// dependency (configuration source, identity provider or registry).
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrConfigSourceUnavailable) ||
		errors.Is(err, ErrPublicKeyUnavailable) ||
		errors.Is(err, ErrRegistryUnavailable)
}
