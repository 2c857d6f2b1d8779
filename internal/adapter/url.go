// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// normalizeBaseURL adds a missing http scheme and strips trailing slashes so
// request paths can be appended directly.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// joinPath joins a context path such as "/eureka" onto a base URL.
func joinPath(base, context string) string {
	context = strings.Trim(context, "/")
	if context == "" {
		return base
	}
	return base + "/" + context
}
