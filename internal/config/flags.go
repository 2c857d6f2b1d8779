// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers the starter flags on fs and parses args.
//
// Flags:
//
//	-service service id
//	-environment environment name ("local" reads the local config file)
//	-deployment deployment id
//	-region AWS region of the parameter store
//	-local-config path of the local JSON config
//	-log-level zerolog level
//	-a application address in format [host]:port
//	-metrics-address metrics address in format [host]:port
//	-request-timeout request timeout (e.g. "30s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, metricsAddress NetAddress
	var service, environment, deployment, region, localConfig, logLevel string
	var requestTimeout, shutdownTimeout time.Duration

	fs.StringVar(&service, "service", "", "Service id")
	fs.StringVar(&environment, "environment", "", "Environment name")
	fs.StringVar(&deployment, "deployment", "", "Deployment id")
	fs.StringVar(&region, "region", "", "AWS region")
	fs.StringVar(&localConfig, "local-config", "", "Local JSON config path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.Var(&metricsAddress, "metrics-address", "Metrics net address [host]:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Shutdown timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Service:         service,
		Environment:     environment,
		Deployment:      deployment,
		AWSRegion:       region,
		LocalConfigPath: localConfig,
		LogLevel:        logLevel,
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			MetricsAddress:  metricsAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
	}, nil
}

// String returns a canonical host:port string, or an empty string when the
// address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port. An empty host listens on
// all interfaces; otherwise the host must be "localhost" or a valid IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `[host]:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
