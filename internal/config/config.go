// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// EnvironmentLocal is the environment in which configuration is read from the
// local JSON file instead of the parameter store.
const EnvironmentLocal = "local"

// StructuredConfig is the process-level configuration of a service built on
// the starter. It is populated from environment variables and, for binaries
// that opt in, command-line flags. Everything service-specific lives in the
// parameter store and is loaded into a props.Tree instead.
type StructuredConfig struct {
	// Service is the service id: the identity-provider client, the registry
	// app name and part of the parameter store path.
	// Env: SERVICE
	Service string `env:"SERVICE" envDefault:"intelligent-search"`

	// Environment selects the configuration source. "local" reads
	// LocalConfigPath, anything else reads the parameter store.
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// Deployment is the deployment id, part of the parameter store path and
	// of the default registry URL.
	// Env: DEPLOYMENT
	Deployment string `env:"DEPLOYMENT" envDefault:"local"`

	// AWSRegion is the region of the parameter store.
	// Env: AWS_REGION
	AWSRegion string `env:"AWS_REGION" envDefault:"us-east-1"`

	// LocalConfigPath is the JSON file read in the local environment.
	// Env: LOCAL_CONFIG
	LocalConfigPath string `env:"LOCAL_CONFIG" envDefault:"./local.config"`

	// LogLevel is the minimal zerolog level.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`

	// Server holds listener settings.
	Server Server `envPrefix:"SERVER_"`
}

// Server holds network and timeout settings of the HTTP listeners.
type Server struct {
	// HTTPAddress is the application listener in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8080"`

	// MetricsAddress is the optional prometheus listener. Empty disables it.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsLocal reports whether configuration must come from the local file.
func (cfg *StructuredConfig) IsLocal() bool {
	return cfg.Environment == EnvironmentLocal
}

// GetStructuredConfig loads and validates the configuration from environment
// variables only. Libraries embedding the starter use it so that the host's
// flag set is left alone.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		build()
}

// GetStructuredConfigWithFlags loads environment variables, then applies the
// flags parsed from args on top (non-zero flag values win).
func GetStructuredConfigWithFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs, args).
		build()
}
