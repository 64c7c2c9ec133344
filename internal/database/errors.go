// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database defines the errors shared by the database implementations.
package database

import "errors"

var (
	// ErrKeyNotFound is returned when a key is not found in the database.
	ErrKeyNotFound = errors.New("key not found")
	// ErrClosed is returned when the database is used after being closed.
	ErrClosed = errors.New("database closed")
)
