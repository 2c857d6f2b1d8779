// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import "errors"

var (
	ErrConfigSourceUnavailable = errors.New("configuration source unavailable")
	ErrInvalidConfigFile       = errors.New("configuration file must contain a JSON object")
)
