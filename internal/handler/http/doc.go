// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP layer the starter installs on the host
// service's chi router.
//
// It provides the middleware chain (trace id, access log, bearer token
// authentication) and the unauthenticated health route. Authentication
// failures of any kind end in a bare 401 response; the reason is only
// logged.
package http
