// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net"
	"os"
)

// ErrNoHostAddress is returned when no non-loopback IPv4 address is found.
var ErrNoHostAddress = errors.New("no host address found")

// ResolveHostIP returns the IPv4 address the machine's hostname resolves to,
// falling back to the first non-loopback interface address.
func ResolveHostIP() (string, error) {
	if host, err := os.Hostname(); err == nil {
		if ips, lookupErr := net.LookupIP(host); lookupErr == nil {
			if ip := firstIPv4(ips); ip != "" {
				return ip, nil
			}
		}
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok {
			ips = append(ips, ipNet.IP)
		}
	}
	if ip := firstIPv4(ips); ip != "" {
		return ip, nil
	}

	return "", ErrNoHostAddress
}

func firstIPv4(ips []net.IP) string {
	for _, ip := range ips {
		if ip.IsLoopback() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}
