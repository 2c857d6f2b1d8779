// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/alto-starter/props"
)

// Key layout of the "sys" subtree. The camelCase names are canonical; the
// older eureka/keycloak names and snake_case keys are still read.
var (
	registryKeys         = []string{"registry", "eureka"}
	identityProviderKeys = []string{"identityProvider", "keycloak"}
)

const (
	defaultRealm             = "master"
	defaultRegistryPort      = 8080
	defaultRegistryContext   = "/eureka"
	defaultHeartbeatInterval = 30 * time.Second
	defaultLeaseDuration     = 90 * time.Second
	defaultRequestTimeout    = 10 * time.Second
)

// Sys is the platform configuration popped from the "sys" subtree of the
// service configuration.
type Sys struct {
	Registry         Registry
	IdentityProvider IdentityProvider
}

// Registry holds the discovery registry (Eureka) settings.
type Registry struct {
	// Enabled turns registration off when false (sys.registry.enabled).
	Enabled bool
	// URL is the registry server URL. Defaults to
	// http://registry.<deployment>.svc.cluster.local.
	URL string
	// Context is the REST context path of the registry. Defaults to /eureka.
	Context string
	// AppName is the registered application name. Defaults to the service id.
	AppName string
	// Port is the advertised instance port. Defaults to 8080.
	Port int
	// ServerIP is the advertised instance address. Empty means "resolve the
	// machine address at registration time".
	ServerIP string
	// HeartbeatInterval is the lease renewal period. Defaults to 30s.
	HeartbeatInterval time.Duration
	// LeaseDuration is how long the registry keeps the instance without a
	// heartbeat. Defaults to 90s.
	LeaseDuration time.Duration
	// RequestTimeout bounds every registry call. Defaults to 10s.
	RequestTimeout time.Duration
}

// IdentityProvider holds the identity provider (Keycloak) settings used to
// fetch the realm public key.
type IdentityProvider struct {
	// URL is the identity provider base URL.
	URL string
	// Realm is the realm name. Defaults to "master".
	Realm string
	// ClientSecret is the secret of the service's client.
	ClientSecret string
	// RequestTimeout bounds the public key request. Defaults to 10s.
	RequestTimeout time.Duration
}

// NewSys builds the typed platform configuration from the "sys" subtree.
// Missing values are filled with defaults derived from serviceID and
// deploymentID; the result is validated.
func NewSys(sys *props.Tree, serviceID, deploymentID string) (*Sys, error) {
	if sys == nil {
		sys = props.New()
	}

	registry, err := newRegistry(firstSub(sys, registryKeys...), serviceID, deploymentID)
	if err != nil {
		return nil, err
	}

	idp, err := newIdentityProvider(firstSub(sys, identityProviderKeys...))
	if err != nil {
		return nil, err
	}

	return &Sys{Registry: *registry, IdentityProvider: *idp}, nil
}

func newRegistry(tree *props.Tree, serviceID, deploymentID string) (*Registry, error) {
	registry := &Registry{
		Enabled:           tree.Bool("enabled", true),
		URL:               tree.String("url", ""),
		Context:           tree.String("context", ""),
		AppName:           firstString(tree, "appName", "app_name"),
		Port:              tree.Int("port", 0),
		ServerIP:          firstString(tree, "serverIp", "server_ip"),
		HeartbeatInterval: tree.Duration("heartbeatInterval", tree.Duration("heartbeat_interval", 0)),
		LeaseDuration:     tree.Duration("leaseDuration", tree.Duration("lease_duration", 0)),
		RequestTimeout:    tree.Duration("timeout", 0),
	}

	defaults := Registry{
		URL:               fmt.Sprintf("http://registry.%s.svc.cluster.local", deploymentID),
		Context:           defaultRegistryContext,
		AppName:           serviceID,
		Port:              defaultRegistryPort,
		HeartbeatInterval: defaultHeartbeatInterval,
		LeaseDuration:     defaultLeaseDuration,
		RequestTimeout:    defaultRequestTimeout,
	}
	if err := mergo.Merge(registry, defaults); err != nil {
		return nil, fmt.Errorf("error applying registry defaults: %w", err)
	}

	if err := registry.validate(); err != nil {
		return nil, err
	}

	return registry, nil
}

func newIdentityProvider(tree *props.Tree) (*IdentityProvider, error) {
	idp := &IdentityProvider{
		URL:            tree.String("url", ""),
		Realm:          tree.String("realm", ""),
		ClientSecret:   firstString(tree, "clientSecret", "client_secret"),
		RequestTimeout: tree.Duration("timeout", 0),
	}

	defaults := IdentityProvider{
		Realm:          defaultRealm,
		RequestTimeout: defaultRequestTimeout,
	}
	if err := mergo.Merge(idp, defaults); err != nil {
		return nil, fmt.Errorf("error applying identity provider defaults: %w", err)
	}

	if err := idp.validate(); err != nil {
		return nil, err
	}

	return idp, nil
}

func firstSub(tree *props.Tree, keys ...string) *props.Tree {
	for _, key := range keys {
		if sub, ok := tree.Sub(key); ok {
			return sub
		}
	}
	return props.New()
}

func firstString(tree *props.Tree, keys ...string) string {
	for _, key := range keys {
		if v := tree.String(key, ""); v != "" {
			return v
		}
	}
	return ""
}
