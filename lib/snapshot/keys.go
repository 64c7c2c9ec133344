// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

import (
	"context"
	"fmt"

	"github.com/ChainSafe/chainfork/lib/common"
)

// KeyEnumerator lazily yields every storage key of a node at a block,
// requesting them page by page. Pages are requested sequentially, each
// one starting after the last key of the previous page, until an empty
// page is received. A KeyEnumerator can only be consumed once.
type KeyEnumerator struct {
	api      KeysAPI
	at       common.Hash
	limiter  *Limiter
	progress Progress
	pageSize uint32

	page   []string
	cursor string
	done   bool
	err    error
}

// NewKeyEnumerator creates a key enumerator. A zero pageSize
// defaults to DefaultPageSize.
func NewKeyEnumerator(api KeysAPI, at common.Hash, limiter *Limiter,
	progress Progress, pageSize uint32) *KeyEnumerator {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	return &KeyEnumerator{
		api:      api,
		at:       at,
		limiter:  limiter,
		progress: progress,
		pageSize: pageSize,
	}
}

// Next returns the next key, with ok set to false once every key
// has been returned. Once a page request fails, Next keeps on
// returning the same error.
func (e *KeyEnumerator) Next(ctx context.Context) (key string, ok bool, err error) {
	for len(e.page) == 0 {
		if e.err != nil {
			return "", false, e.err
		}

		if e.done {
			return "", false, nil
		}

		err = e.fetchPage(ctx)
		if err != nil {
			e.err = err
			return "", false, err
		}
	}

	key = e.page[0]
	e.page = e.page[1:]
	return key, true, nil
}

// Collect drains the enumerator and returns all the remaining keys.
func (e *KeyEnumerator) Collect(ctx context.Context) (keys []string, err error) {
	for {
		key, ok, err := e.Next(ctx)
		if err != nil {
			return nil, err
		} else if !ok {
			return keys, nil
		}
		keys = append(keys, key)
	}
}

func (e *KeyEnumerator) fetchPage(ctx context.Context) (err error) {
	err = e.limiter.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring request permit: %w", err)
	}
	keys, err := e.api.GetKeysPaged(ctx, "0x", e.pageSize, e.cursor, e.at)
	e.limiter.Release()
	if err != nil {
		return fmt.Errorf("getting keys page after key %q: %w", e.cursor, err)
	}

	if len(keys) == 0 {
		e.done = true
		e.progress.Finish()
		return nil
	}

	pagesFetched.Inc()
	keysEnumerated.Add(float64(len(keys)))
	e.progress.Inc(len(keys))

	e.cursor = keys[len(keys)-1]
	e.page = keys
	return nil
}
