// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance(t *testing.T) {
	inst := NewInstance("intelligent-search", "10.0.0.7", 8080, 30, 90)

	assert.Equal(t, "10.0.0.7:intelligent-search:8080", inst.ID)
	assert.Equal(t, "INTELLIGENT-SEARCH", inst.App)
	assert.Equal(t, "intelligent-search", inst.VIPAddress)
	assert.Equal(t, InstanceStatusUp, inst.Status)
	assert.Equal(t, "http://10.0.0.7:8080/actuator/health", inst.HealthCheckURL)
	assert.Equal(t, LeaseInfo{RenewalIntervalInSecs: 30, DurationInSecs: 90}, inst.LeaseInfo)
}

func TestInstanceRegistration_JSONShape(t *testing.T) {
	inst := NewInstance("search", "127.0.0.1", 9090, 30, 90)

	data, err := json.Marshal(InstanceRegistration{Instance: inst})
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	body := doc["instance"]
	assert.Equal(t, "SEARCH", body["app"])
	assert.Equal(t, map[string]any{"$": float64(9090), "@enabled": "true"}, body["port"])
	assert.Equal(t, map[string]any{
		"@class": "com.netflix.appinfo.InstanceInfo$DefaultDataCenterInfo",
		"name":   "MyOwn",
	}, body["dataCenterInfo"])
}
