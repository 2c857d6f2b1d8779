// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the prometheus collectors of the starter.
//
// Collectors are registered on a per-starter registry rather than the global
// default one, so several starters (or tests) can live in one process.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "alto"

// Auth outcomes used as the "result" label of alto_auth_requests_total.
const (
	AuthResultAuthenticated = "authenticated"
	AuthResultMissing       = "missing_credentials"
	AuthResultInvalid       = "invalid_token"
	AuthResultClaims        = "claims_mismatch"
	AuthResultSkipped       = "skipped"
)

// Outcomes of registry calls, the "result" label of the registry counters.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultRenewed = "reregistered"
)

// Metrics groups the collectors recorded by the middleware and the registry
// heartbeat.
type Metrics struct {
	registry *prometheus.Registry

	AuthRequests        *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RegistryHeartbeats  *prometheus.CounterVec
	RegistryRegistered  prometheus.Gauge
}

// New creates the collectors and registers them on registry. A nil registry
// gets a fresh one with the Go runtime and process collectors attached.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: registry,
		AuthRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_requests_total",
			Help:      "Bearer token checks by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RegistryHeartbeats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_heartbeats_total",
			Help:      "Registry lease renewals by result.",
		}, []string{"result"}),
		RegistryRegistered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_registered",
			Help:      "1 while the instance is registered with the discovery registry.",
		}),
	}

	registry.MustRegister(
		m.AuthRequests,
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.RegistryHeartbeats,
		m.RegistryRegistered,
	)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveAuth counts one bearer token check.
func (m *Metrics) ObserveAuth(result string) {
	m.AuthRequests.WithLabelValues(result).Inc()
}

// ObserveHeartbeat counts one lease renewal attempt.
func (m *Metrics) ObserveHeartbeat(result string) {
	m.RegistryHeartbeats.WithLabelValues(result).Inc()
}

// SetRegistered records whether the instance is currently registered.
func (m *Metrics) SetRegistered(registered bool) {
	if registered {
		m.RegistryRegistered.Set(1)
		return
	}
	m.RegistryRegistered.Set(0)
}
