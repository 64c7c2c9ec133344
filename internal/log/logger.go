// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"sync"
)

// Logger is a leveled logger safe for concurrent use.
// Loggers created from it with New share its writer lock,
// and are patched together with it.
type Logger struct {
	settings settings
	children []*Logger
	mutex    *sync.Mutex
}

// New creates a root logger. Child loggers writing to
// the same writer should be created with its New method.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a child logger inheriting every setting
// not given in options, and appending to its context.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := newSettings(options)
	s.mergeWith(l.settings)
	s.setDefaults()

	child := &Logger{
		settings: s,
		mutex:    l.mutex,
	}
	l.children = append(l.children, child)
	return child
}
