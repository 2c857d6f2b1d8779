// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/service"
)

// HeartbeatWorker renews the registry lease of this instance on a fixed
// interval.
type HeartbeatWorker struct {
	registry service.RegistryService
	interval time.Duration
	timeout  time.Duration

	cron *cron.Cron

	mu      sync.Mutex
	running bool

	logger *logger.Logger
}

// NewHeartbeatWorker schedules registry.Heartbeat every interval. Each call
// is bounded by timeout; a tick is skipped while the previous one is still
// running.
func NewHeartbeatWorker(registry service.RegistryService, interval, timeout time.Duration, logger *logger.Logger) (*HeartbeatWorker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid heartbeat interval %s", interval)
	}

	cronLogger := cronLogger{logger: logger}
	w := &HeartbeatWorker{
		registry: registry,
		interval: interval,
		timeout:  timeout,
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}

	if _, err := w.cron.AddFunc(fmt.Sprintf("@every %s", interval), w.beat); err != nil {
		return nil, fmt.Errorf("failed to schedule heartbeat: %w", err)
	}

	return w, nil
}

// Run implements [Worker].
func (w *HeartbeatWorker) Run() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.cron.Start()
	w.running = true

	w.logger.Info().Dur("interval", w.interval).Msg("registry heartbeat started")
}

// Stop implements [Worker].
func (w *HeartbeatWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	<-w.cron.Stop().Done()
	w.running = false

	w.logger.Info().Msg("registry heartbeat stopped")
}

func (w *HeartbeatWorker) beat() {
	ctx := context.Background()
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	if err := w.registry.Heartbeat(ctx); err != nil {
		w.logger.Err(err).Msg("registry heartbeat failed")
		return
	}
	w.logger.Debug().Msg("registry lease renewed")
}

// cronLogger adapts the zerolog wrapper to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
