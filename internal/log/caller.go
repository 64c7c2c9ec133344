// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
)

type callerSettings struct {
	file *bool
	line *bool
}

func (c *callerSettings) mergeWith(other callerSettings) {
	mergePtr(&c.file, other.file)
	mergePtr(&c.line, other.line)
}

func (c *callerSettings) overrideWith(other callerSettings) {
	overridePtr(&c.file, other.file)
	overridePtr(&c.line, other.line)
}

func (c *callerSettings) setDefaults() {
	defaultPtr(&c.file, false)
	defaultPtr(&c.line, false)
}

// callerString returns the caller of the logging method of the
// logger, as file name and line number, depending on settings.
func callerString(settings callerSettings) (s string) {
	if !*settings.file && !*settings.line {
		return ""
	}

	const depth = 3
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "unknown caller"
	}

	switch {
	case *settings.file && *settings.line:
		return filepath.Base(file) + ":L" + strconv.Itoa(line)
	case *settings.file:
		return filepath.Base(file)
	default:
		return "L" + strconv.Itoa(line)
	}
}
