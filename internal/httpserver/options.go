// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import "time"

// DefaultShutdownTimeout is the default duration the server waits
// for in-flight requests to complete when shutting down.
const DefaultShutdownTimeout = 3 * time.Second

// Option modifies the settings of a server.
type Option func(s *optionalSettings)

type optionalSettings struct {
	shutdownTimeout time.Duration
}

func newOptionalSettings(options []Option) (settings optionalSettings) {
	settings.shutdownTimeout = DefaultShutdownTimeout
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// ShutdownTimeout sets the duration the server waits for in-flight
// requests when shutting down. It defaults to DefaultShutdownTimeout.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) {
		s.shutdownTimeout = timeout
	}
}
