// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package starter

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/models"
)

// Source produces the flat configuration map of the service. Keys are
// dotted paths; values may be nested map[string]any.
type Source interface {
	Load(ctx context.Context) (map[string]any, error)
}

// Registry is the discovery registry client used for registration and
// heartbeats.
type Registry interface {
	Register(ctx context.Context, instance models.Instance) error
	Heartbeat(ctx context.Context, app, instanceID string) error
	Deregister(ctx context.Context, app, instanceID string) error
}

// IdentityProvider publishes the realm public key tokens are verified with.
type IdentityProvider interface {
	PublicKey(ctx context.Context) (string, error)
}

// Option customises Initialize.
type Option func(*options)

type options struct {
	source           Source
	registry         Registry
	identityProvider IdentityProvider
	logger           *logger.Logger
	region           string
	localConfigPath  string
	metricsRegistry  *prometheus.Registry
}

// WithSource replaces the parameter store / local file source.
func WithSource(source Source) Option {
	return func(o *options) { o.source = source }
}

// WithRegistry replaces the Eureka client built from sys.registry.
func WithRegistry(registry Registry) Option {
	return func(o *options) { o.registry = registry }
}

// WithIdentityProvider replaces the Keycloak client built from
// sys.identityProvider.
func WithIdentityProvider(idp IdentityProvider) Option {
	return func(o *options) { o.identityProvider = idp }
}

// WithLogger sets the logger. The default writes JSON to stdout.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger.Logger{Logger: l} }
}

// WithRegion sets the AWS region of the parameter store. Defaults to
// AWS_REGION, then us-east-1.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithLocalConfigPath sets the file read in the local environment. Defaults
// to LOCAL_CONFIG, then ./local.config.
func WithLocalConfigPath(path string) Option {
	return func(o *options) { o.localConfigPath = path }
}

// WithMetricsRegistry registers the starter's collectors on registry instead
// of a private one.
func WithMetricsRegistry(registry *prometheus.Registry) Option {
	return func(o *options) { o.metricsRegistry = registry }
}
