// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/mock"
)

func TestNewHeartbeatWorker_InvalidInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewHeartbeatWorker(mock.NewMockRegistryService(ctrl), 0, time.Second, logger.Nop())
	require.Error(t, err)
}

func TestHeartbeatWorker_BeatAppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mock.NewMockRegistryService(ctrl)
	registry.EXPECT().Heartbeat(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
		return nil
	})

	w, err := NewHeartbeatWorker(registry, time.Minute, 5*time.Second, logger.Nop())
	require.NoError(t, err)

	w.beat()
}

func TestHeartbeatWorker_BeatErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mock.NewMockRegistryService(ctrl)
	registry.EXPECT().Heartbeat(gomock.Any()).Return(errors.New("registry down"))

	w, err := NewHeartbeatWorker(registry, time.Minute, 0, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, w.beat)
}

func TestHeartbeatWorker_RunsOnSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var beats atomic.Int32
	registry := mock.NewMockRegistryService(ctrl)
	registry.EXPECT().Heartbeat(gomock.Any()).DoAndReturn(func(context.Context) error {
		beats.Add(1)
		return nil
	}).MinTimes(1)

	w, err := NewHeartbeatWorker(registry, time.Second, time.Second, logger.Nop())
	require.NoError(t, err)

	w.Run()
	w.Run() // второй запуск игнорируется

	assert.Eventually(t, func() bool { return beats.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	w.Stop()
	w.Stop()

	stopped := beats.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, stopped, beats.Load())
}
