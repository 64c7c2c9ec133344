// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/chainfork/internal/database/badger"
	"github.com/ChainSafe/chainfork/lib/common"
	"github.com/klauspost/compress/zstd"
)

// ErrCacheMalformed is returned when a snapshot cache cannot be parsed.
var ErrCacheMalformed = errors.New("snapshot cache is malformed")

// Cache persists a snapshot so it can be reused without querying the node.
type Cache interface {
	// Path returns the path of the cache.
	Path() string
	// Exists returns true if the cache exists on disk.
	Exists() (bool, error)
	// Load reads the snapshot from the cache.
	Load() (Snapshot, error)
	// Store writes the snapshot to the cache.
	Store(snapshot Snapshot) error
}

// OpenCache returns the cache at the path given, its format chosen from
// the path extension: a badger database directory for `.badger`, a zstd
// compressed JSON object for `.zst` and a JSON object otherwise.
func OpenCache(path string) Cache {
	switch {
	case strings.HasSuffix(path, ".badger"):
		return &badgerCache{path: path}
	case strings.HasSuffix(path, ".zst"):
		return &fileCache{path: path, compressed: true}
	default:
		return &fileCache{path: path}
	}
}

type fileCache struct {
	path       string
	compressed bool
}

func (c *fileCache) Path() string { return c.path }

func (c *fileCache) Exists() (bool, error) {
	return pathExists(c.path)
}

func (c *fileCache) Load() (snapshot Snapshot, err error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot cache: %w", err)
	}

	if c.compressed {
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer decoder.Close()

		data, err = decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: decompressing: %s", ErrCacheMalformed, err)
		}
	}

	err = json.Unmarshal(data, &snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheMalformed, err)
	} else if snapshot == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrCacheMalformed)
	}

	err = validate(snapshot)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (c *fileCache) Store(snapshot Snapshot) (err error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if c.compressed {
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		data = encoder.EncodeAll(data, nil)
		err = encoder.Close()
		if err != nil {
			return fmt.Errorf("closing zstd encoder: %w", err)
		}
	}

	const perm = 0o644
	err = os.WriteFile(c.path, data, perm)
	if err != nil {
		return fmt.Errorf("writing snapshot cache: %w", err)
	}
	return nil
}

// badgerCache stores each key value pair of the snapshot as a raw bytes
// entry of a badger database, its key prefixed with badgerEntryPrefix.
// The number of entries is written last under badgerCompleteKey, so a
// database without it is incomplete. The database is written next to
// the cache path and only renamed to it once complete.
type badgerCache struct {
	path string
}

var (
	badgerEntryPrefix = []byte("entry/")
	badgerCompleteKey = []byte("complete")
)

func (c *badgerCache) Path() string { return c.path }

func (c *badgerCache) Exists() (bool, error) {
	return pathExists(c.path)
}

func (c *badgerCache) Load() (snapshot Snapshot, err error) {
	db, err := badger.New(badger.Settings{Path: &c.path})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheMalformed, err)
	}

	snapshot, err = readEntries(db)
	closeErr := db.Close()
	if err != nil {
		return nil, err
	} else if closeErr != nil {
		return nil, fmt.Errorf("closing badger cache: %w", closeErr)
	}

	return snapshot, nil
}

func readEntries(db *badger.Database) (snapshot Snapshot, err error) {
	snapshot = make(Snapshot)
	var complete []byte
	err = db.Iterate(func(key, value []byte) error {
		switch {
		case bytes.HasPrefix(key, badgerEntryPrefix):
			key = key[len(badgerEntryPrefix):]
			snapshot[common.BytesToHex(key)] = common.BytesToHex(value)
		case bytes.Equal(key, badgerCompleteKey):
			complete = value
		default:
			return fmt.Errorf("%w: unexpected entry 0x%x", ErrCacheMalformed, key)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCacheMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("reading badger cache: %w", err)
	}

	const countLength = 8
	if len(complete) != countLength {
		return nil, fmt.Errorf("%w: incomplete badger database", ErrCacheMalformed)
	}

	count := binary.LittleEndian.Uint64(complete)
	if count != uint64(len(snapshot)) {
		return nil, fmt.Errorf("%w: %d entries instead of %d",
			ErrCacheMalformed, len(snapshot), count)
	}

	return snapshot, nil
}

func (c *badgerCache) Store(snapshot Snapshot) (err error) {
	tmpPath := c.path + ".tmp"
	err = os.RemoveAll(tmpPath)
	if err != nil {
		return fmt.Errorf("removing stale badger cache: %w", err)
	}

	db, err := badger.New(badger.Settings{Path: &tmpPath})
	if err != nil {
		return fmt.Errorf("opening badger cache: %w", err)
	}

	err = writeEntries(db.NewWriteBatch(), snapshot)
	if err == nil {
		err = markComplete(db, len(snapshot))
	}
	closeErr := db.Close()
	if err != nil {
		return err
	} else if closeErr != nil {
		return fmt.Errorf("closing badger cache: %w", closeErr)
	}

	err = os.Rename(tmpPath, c.path)
	if err != nil {
		return fmt.Errorf("moving badger cache in place: %w", err)
	}
	return nil
}

func markComplete(db *badger.Database, count int) (err error) {
	value := binary.LittleEndian.AppendUint64(nil, uint64(count))
	err = db.Set(badgerCompleteKey, value)
	if err != nil {
		return fmt.Errorf("marking badger cache complete: %w", err)
	}
	return nil
}

func writeEntries(writeBatch *badger.WriteBatch, snapshot Snapshot) (err error) {
	err = setEntries(writeBatch, snapshot)
	if err != nil {
		writeBatch.Cancel()
		return err
	}

	err = writeBatch.Flush()
	if err != nil {
		return fmt.Errorf("flushing badger cache: %w", err)
	}
	return nil
}

func setEntries(writeBatch *badger.WriteBatch, snapshot Snapshot) (err error) {
	for keyHex, valueHex := range snapshot {
		key, err := common.HexToBytes(keyHex)
		if err != nil {
			return fmt.Errorf("decoding key: %w", err)
		}

		value, err := common.HexToBytes(valueHex)
		if err != nil {
			return fmt.Errorf("decoding value of key %s: %w", keyHex, err)
		}

		entryKey := make([]byte, 0, len(badgerEntryPrefix)+len(key))
		entryKey = append(entryKey, badgerEntryPrefix...)
		entryKey = append(entryKey, key...)
		err = writeBatch.Set(entryKey, value)
		if err != nil {
			return fmt.Errorf("writing key %s: %w", keyHex, err)
		}
	}
	return nil
}

func validate(snapshot Snapshot) error {
	for key, value := range snapshot {
		if !common.IsStorageKeyHex(key) {
			return fmt.Errorf("%w: invalid key %q", ErrCacheMalformed, key)
		}
		if !common.IsStorageKeyHex(value) {
			return fmt.Errorf("%w: invalid value %q for key %s", ErrCacheMalformed, value, key)
		}
	}
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking snapshot cache: %w", err)
	}
}
