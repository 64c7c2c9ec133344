// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values for each unset field of s
// using the field values of other.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	mergePtr(&s.level, other.level)
	mergePtr(&s.format, other.format)
	s.caller.mergeWith(other.caller)

	if len(other.context) > 0 {
		merged := make([]contextKeyValues, 0, len(other.context)+len(s.context))
		for _, kv := range other.context {
			merged = append(merged, contextKeyValues{
				key:    kv.key,
				values: append([]string(nil), kv.values...),
			})
		}
		for _, kv := range s.context {
			merged = appendContext(merged, kv)
		}
		s.context = merged
	}
}

// overrideWith sets every field of s that is set in other.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	overridePtr(&s.level, other.level)
	overridePtr(&s.format, other.format)
	s.caller.overrideWith(other.caller)

	for _, kv := range other.context {
		s.context = appendContext(s.context, kv)
	}
}

func appendContext(context []contextKeyValues, kv contextKeyValues) []contextKeyValues {
	for i := range context {
		if context[i].key == kv.key {
			context[i].values = append(context[i].values, kv.values...)
			return context
		}
	}
	return append(context, contextKeyValues{
		key:    kv.key,
		values: append([]string(nil), kv.values...),
	})
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	defaultPtr(&s.level, Info)
	defaultPtr(&s.format, FormatConsole)
	s.caller.setDefaults()
}
