// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import "github.com/dgraph-io/badger/v2"

// WriteBatch batches writes to the database.
type WriteBatch struct {
	badgerWriteBatch *badger.WriteBatch
}

// Set sets a value at the given key.
func (wb *WriteBatch) Set(key, value []byte) (err error) {
	return transformError(wb.badgerWriteBatch.Set(key, value))
}

// Flush flushes the write batch to the database.
func (wb *WriteBatch) Flush() (err error) {
	return transformError(wb.badgerWriteBatch.Flush())
}

// Cancel cancels the write batch.
func (wb *WriteBatch) Cancel() {
	wb.badgerWriteBatch.Cancel()
}
