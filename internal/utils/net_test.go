// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstIPv4(t *testing.T) {
	tests := []struct {
		name string
		ips  []net.IP
		want string
	}{
		{name: "empty", ips: nil, want: ""},
		{name: "loopback only", ips: []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")}, want: ""},
		{name: "skips ipv6", ips: []net.IP{net.ParseIP("fe80::1"), net.ParseIP("10.1.2.3")}, want: "10.1.2.3"},
		{name: "first wins", ips: []net.IP{net.ParseIP("10.0.0.1"), net.ParseIP("10.0.0.2")}, want: "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstIPv4(tt.ips))
		})
	}
}
