// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net"
	"net/url"
	"time"
)

// netReachability is a trivial [Reachability] that probes the API host with
// a short TCP dial. Platforms with a proper connectivity monitor should
// inject their own implementation instead.
type netReachability struct {
	host    string
	timeout time.Duration
}

// NewNetReachability builds a dial-probe [Reachability] for the API base
// URL. An unparsable URL yields a prober that always reports offline.
func NewNetReachability(baseURL string, timeout time.Duration) Reachability {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return &netReachability{timeout: timeout}
	}

	host := parsed.Host
	if parsed.Port() == "" {
		port := "443"
		if parsed.Scheme == "http" {
			port = "80"
		}
		host = net.JoinHostPort(parsed.Hostname(), port)
	}

	return &netReachability{host: host, timeout: timeout}
}

func (r *netReachability) IsNetworkAvailable() bool {
	if r.host == "" {
		return false
	}

	conn, err := net.DialTimeout("tcp", r.host, r.timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
