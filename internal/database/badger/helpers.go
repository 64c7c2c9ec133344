// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"errors"

	"github.com/ChainSafe/chainfork/internal/database"
	"github.com/dgraph-io/badger/v2"
)

// transformError maps badger errors to their sentinel
// errors of the database package, if any.
func transformError(badgerErr error) (err error) {
	switch {
	case badgerErr == nil:
		return nil
	case errors.Is(badgerErr, badger.ErrKeyNotFound):
		return database.ErrKeyNotFound
	case errors.Is(badgerErr, badger.ErrDBClosed):
		return database.ErrClosed
	default:
		return badgerErr
	}
}
