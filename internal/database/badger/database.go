// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package badger provides a database implementation using badger v2.
package badger

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chainfork/internal/database"
	"github.com/dgraph-io/badger/v2"
)

// Database is database implementation using a badger/v2 database.
type Database struct {
	badgerDatabase *badger.DB
}

// New returns a new database based on a badger v2 database.
func New(settings Settings) (db *Database, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	badgerOptions := badger.DefaultOptions(*settings.Path)
	badgerOptions = badgerOptions.WithLogger(nil)
	badgerOptions = badgerOptions.WithInMemory(*settings.InMemory)
	badgerDatabase, err := badger.Open(badgerOptions)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}

	return &Database{
		badgerDatabase: badgerDatabase,
	}, nil
}

// Get retrieves a value from the database using the given key.
// It returns the wrapped error `database.ErrKeyNotFound` if the
// key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	err = db.badgerDatabase.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("copying value: %w", err)
		}

		return nil
	})

	err = transformError(err)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: 0x%x", err, key)
	}

	return value, err
}

// Set sets a value at the given key in the database.
func (db *Database) Set(key, value []byte) (err error) {
	err = db.badgerDatabase.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	return transformError(err)
}

// NewWriteBatch returns a new write batch for the database.
func (db *Database) NewWriteBatch() (writeBatch *WriteBatch) {
	return &WriteBatch{
		badgerWriteBatch: db.badgerDatabase.NewWriteBatch(),
	}
}

// Iterate calls handle for every key value pair of the database,
// in ascending key order, and stops at the first error returned by handle.
// The key and value given to handle are copies owned by the caller.
func (db *Database) Iterate(handle func(key, value []byte) error) (err error) {
	err = db.badgerDatabase.View(func(txn *badger.Txn) error {
		iterator := txn.NewIterator(badger.DefaultIteratorOptions)
		defer iterator.Close()

		for iterator.Rewind(); iterator.Valid(); iterator.Next() {
			item := iterator.Item()
			key := item.KeyCopy(nil)
			value, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("copying value: %w", err)
			}

			err = handle(key, value)
			if err != nil {
				return fmt.Errorf("handling key value: %w", err)
			}
		}
		return nil
	})
	return transformError(err)
}

// Close closes the database.
func (db *Database) Close() (err error) {
	err = db.badgerDatabase.Close()
	return transformError(err)
}
