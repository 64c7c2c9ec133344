// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Patch overrides the settings of the logger and of all its
// children with the options given.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patch(newSettings(options))
}

func (l *Logger) patch(patch settings) {
	l.settings.overrideWith(patch)
	for _, child := range l.children {
		child.patch(patch)
	}
}
