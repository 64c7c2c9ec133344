// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package snapshot retrieves the complete key value storage of a node
// at a given block, under a bounded number of concurrent requests.
package snapshot

import (
	"context"
	"fmt"

	"github.com/ChainSafe/chainfork/internal/log"
	"github.com/ChainSafe/chainfork/lib/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "snapshot"))

var (
	pagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chainfork_snapshot",
		Name:      "pages_fetched_total",
		Help:      "number of storage key pages fetched",
	})
	keysEnumerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chainfork_snapshot",
		Name:      "keys_enumerated_total",
		Help:      "number of storage keys enumerated",
	})
	valuesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chainfork_snapshot",
		Name:      "values_fetched_total",
		Help:      "number of storage values fetched",
	})
)

const (
	// DefaultMaxRequests is the default maximum number of requests in flight.
	DefaultMaxRequests = 2048
	// DefaultPageSize is the default number of keys requested per page.
	DefaultPageSize = 512
)

// Snapshot maps hex encoded storage keys to their hex encoded value,
// all taken at the same block.
type Snapshot map[string]string

// KeysAPI lists storage keys of a node.
type KeysAPI interface {
	GetKeysPaged(ctx context.Context, keyPrefix string, count uint32,
		startKey string, at common.Hash) (keys []string, err error)
}

// StorageAPI reads storage values of a node.
type StorageAPI interface {
	GetStorage(ctx context.Context, key string, at common.Hash) (value *string, err error)
}

// NodeAPI is the node API needed to take a snapshot.
type NodeAPI interface {
	KeysAPI
	StorageAPI
}

// HeadAPI gives the finalized head of a node.
type HeadAPI interface {
	GetFinalizedHead(ctx context.Context) (hash common.Hash, err error)
}

// Options are the options to take a snapshot.
type Options struct {
	// MaxRequests is the maximum number of requests in flight.
	// It defaults to DefaultMaxRequests if zero.
	MaxRequests int64
	// PageSize is the number of keys requested per page.
	// It defaults to DefaultPageSize if zero.
	PageSize uint32
	// Progress reports the progress of the snapshot.
	// It defaults to reporting through the logger if nil.
	Progress ProgressReporter
}

func (o *Options) setDefaults() {
	if o.MaxRequests == 0 {
		o.MaxRequests = DefaultMaxRequests
	}
	if o.PageSize == 0 {
		o.PageSize = DefaultPageSize
	}
	if o.Progress == nil {
		o.Progress = NewLogProgressReporter(logger)
	}
}

// Fetch enumerates every storage key of the node at the block given and
// fetches all their values. Page and value requests share the same limiter.
func Fetch(ctx context.Context, api NodeAPI, at common.Hash, options Options) (
	snapshot Snapshot, err error) {
	options.setDefaults()
	limiter := NewLimiter(options.MaxRequests)

	logger.Infof("enumerating storage keys at block %s", at)
	enumerator := NewKeyEnumerator(api, at, limiter, options.Progress.Keys(), options.PageSize)
	keys, err := enumerator.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating keys: %w", err)
	}

	logger.Infof("fetching %d storage values", len(keys))
	progress := NewThrottledProgress(options.Progress.Values(len(keys)), ThrottleInterval)
	snapshot, err = FetchValues(ctx, api, at, keys, limiter, progress)
	if err != nil {
		return nil, fmt.Errorf("fetching values: %w", err)
	}

	return snapshot, nil
}

// ResolveBlock returns the block hash given if it is not nil,
// and otherwise the hash of the finalized head of the node.
func ResolveBlock(ctx context.Context, api HeadAPI, at *common.Hash) (hash common.Hash, err error) {
	if at != nil {
		return *at, nil
	}

	hash, err = api.GetFinalizedHead(ctx)
	if err != nil {
		return hash, fmt.Errorf("getting finalized head: %w", err)
	}

	logger.Infof("using finalized block %s", hash)
	return hash, nil
}
