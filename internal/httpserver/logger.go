// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

// Logger logs the lifecycle of the server: listening at info
// level, shutting down at warn level and shutdown failures at
// error level.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
