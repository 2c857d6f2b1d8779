// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package starter

import (
	"errors"

	"github.com/MKhiriev/alto-starter/internal/paramstore"
	"github.com/MKhiriev/alto-starter/internal/service"
)

// Errors returned by Initialize, to be matched with errors.Is.
var (
	ErrConfigSourceUnavailable = paramstore.ErrConfigSourceUnavailable
	ErrPublicKeyUnavailable    = service.ErrPublicKeyUnavailable
	ErrRegistryUnavailable     = service.ErrRegistryUnavailable

	ErrNilRouter = errors.New("router is nil")
)
