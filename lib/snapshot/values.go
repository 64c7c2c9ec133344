// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/chainfork/lib/common"
	"golang.org/x/sync/errgroup"
)

// ErrMissingValue is returned when the node has no value for an enumerated key.
var ErrMissingValue = errors.New("no value for enumerated key")

type keyValue struct {
	key   string
	value string
}

// FetchValues fetches the values of all the keys given at the block given,
// with one goroutine per request in flight, bounded by the limiter.
// The first failure cancels the requests not yet completed and is returned,
// no partial snapshot is ever returned.
func FetchValues(ctx context.Context, api StorageAPI, at common.Hash, keys []string,
	limiter *Limiter, progress Progress) (snapshot Snapshot, err error) {
	group, groupCtx := errgroup.WithContext(ctx)

	snapshot = make(Snapshot, len(keys))
	results := make(chan keyValue)
	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for result := range results {
			snapshot[result.key] = result.value
			valuesFetched.Inc()
			progress.Inc(1)
		}
	}()

	var spawnErr error
	for _, key := range keys {
		spawnErr = groupCtx.Err()
		if spawnErr == nil {
			spawnErr = limiter.Acquire(groupCtx)
		}
		if spawnErr != nil {
			break
		}

		key := key
		group.Go(func() error {
			defer limiter.Release()
			return fetchValue(groupCtx, api, at, key, results)
		})
	}

	err = group.Wait()
	close(results)
	<-collectorDone

	switch {
	case err != nil:
		return nil, err
	case spawnErr != nil:
		return nil, fmt.Errorf("acquiring request permit: %w", spawnErr)
	}

	progress.Finish()
	return snapshot, nil
}

func fetchValue(ctx context.Context, api StorageAPI, at common.Hash,
	key string, results chan<- keyValue) (err error) {
	value, err := api.GetStorage(ctx, key, at)
	if err != nil {
		return fmt.Errorf("getting storage value of key %s: %w", key, err)
	} else if value == nil {
		return fmt.Errorf("%w: %s", ErrMissingValue, key)
	}

	select {
	case results <- keyValue{key: key, value: *value}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
