// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Settings is the database settings.
type Settings struct {
	// Path is the database directory path to use.
	// It defaults to the current directory if left unset.
	Path *string
	// InMemory is whether to keep the database in memory only.
	// It defaults to false.
	InMemory *bool
}

// SetDefaults sets the default values on the settings.
func (s *Settings) SetDefaults() {
	if s.Path == nil {
		s.Path = new(string)
	}

	if s.InMemory == nil {
		s.InMemory = new(bool)
	}
}

var ErrPathInMemory = errors.New("path must be empty for an in memory database")

// Validate validates the settings.
func (s Settings) Validate() (err error) {
	if *s.InMemory {
		if *s.Path != "" {
			return fmt.Errorf("%w: %s", ErrPathInMemory, *s.Path)
		}
		return nil
	}

	_, err = filepath.Abs(*s.Path)
	if err != nil {
		return fmt.Errorf("changing path to absolute path: %w", err)
	}

	return nil
}
