// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging and validation for
// services built on the starter.
//
// Two layers exist:
//   - [StructuredConfig]: process settings from environment variables and,
//     optionally, command-line flags, merged with mergo (later sources
//     override non-zero fields).
//   - [Sys]: the typed view over the "sys" subtree fetched from the parameter
//     store, holding the registry and identity-provider settings.
package config
