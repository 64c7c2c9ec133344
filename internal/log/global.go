// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// globalLogger is the parent of every package logger,
// so patching it configures the logging of the whole program.
var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global logger and all its children.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}
