// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/alto-starter/internal/config"
	"github.com/MKhiriev/alto-starter/internal/logger"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func testConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		MetricsAddress:  "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_MetricsListenerIsOptional(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsAddress = ""

	srv, err := NewServer(textHandler("app"), textHandler("metrics"), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, srv.(*server).servers, 1)
}

func TestServer_RunServesBothListenersUntilCancelled(t *testing.T) {
	srv, err := NewServer(textHandler("app"), textHandler("metrics"), testConfig(), logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		return s.addr("http") != "" && s.addr("metrics") != ""
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "app", get(t, "http://"+s.addr("http")+"/"))
	assert.Equal(t, "metrics", get(t, "http://"+s.addr("metrics")+"/metrics"))

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + s.addr("http") + "/")
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_RunFailsWhenAddressIsTaken(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	cfg.HTTPAddress = busy.Addr().String()

	srv, err := NewServer(textHandler("app"), nil, cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	assert.Error(t, err)
}
