// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthResponse is the body of the health-check endpoint.
type HealthResponse struct {
	Health  string `json:"health"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// HealthOK is the response returned while the service is able to serve
// requests.
var HealthOK = HealthResponse{
	Health:  "OK",
	Message: "Everything is ok",
	Details: nil,
}
