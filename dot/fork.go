// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"
	"os"

	"github.com/ChainSafe/chainfork/internal/log"
	"github.com/ChainSafe/chainfork/lib/prefix"
	"github.com/ChainSafe/chainfork/lib/rpc"
	"github.com/ChainSafe/chainfork/lib/snapshot"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// NodeAPI is the node API used to fork a chain.
type NodeAPI interface {
	snapshot.NodeAPI
	snapshot.HeadAPI
	prefix.MetadataSource
	Close() error
}

// Dialer connects to the node at the endpoint given.
type Dialer func(ctx context.Context, endpoint string) (NodeAPI, error)

// DialRPC connects to the node websocket JSON-RPC endpoint given.
func DialRPC(ctx context.Context, endpoint string) (NodeAPI, error) {
	client, err := rpc.Dial(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Fork builds the chain specification of a fork of a live chain.
type Fork struct {
	cfg       Config
	generator SpecGenerator
	dial      Dialer
	progress  snapshot.ProgressReporter

	node NodeAPI
}

// NewFork creates a fork pipeline. The node is only dialed once
// its storage or metadata is needed.
func NewFork(cfg Config, generator SpecGenerator, dial Dialer,
	progress snapshot.ProgressReporter) *Fork {
	return &Fork{
		cfg:       cfg,
		generator: generator,
		dial:      dial,
		progress:  progress,
	}
}

// Run takes the storage snapshot, assembles the fork chain specification
// and writes it to the output path. Nothing is written if any step fails.
func (f *Fork) Run(ctx context.Context) (err error) {
	if f.cfg.OrigChain == nil {
		return ErrNoOrigChain
	}
	defer f.closeNode()

	storage, err := f.loadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("loading storage snapshot: %w", err)
	}

	prefixes, err := f.selectPrefixes(ctx)
	if err != nil {
		return fmt.Errorf("selecting transplanted modules: %w", err)
	}

	spec, err := NewAssembler(f.generator).Assemble(ctx, Assembly{
		OrigChain:   *f.cfg.OrigChain,
		BaseChain:   f.cfg.BaseChain,
		Name:        f.cfg.Name,
		ID:          f.cfg.ID,
		RuntimePath: f.cfg.RuntimePath,
		Snapshot:    storage,
		Prefixes:    prefixes,
	})
	if err != nil {
		return fmt.Errorf("assembling chain specification: %w", err)
	}

	data, err := spec.ToJSON()
	if err != nil {
		return fmt.Errorf("encoding chain specification: %w", err)
	}

	logger.Infof("writing chain specification of fork %s to %s", spec.Name, f.cfg.OutputPath)
	const perm = 0o644
	err = os.WriteFile(f.cfg.OutputPath, data, perm)
	if err != nil {
		return fmt.Errorf("writing chain specification: %w", err)
	}

	return nil
}

func (f *Fork) loadSnapshot(ctx context.Context) (storage snapshot.Snapshot, err error) {
	switch {
	case f.cfg.Storage == "":
		return f.fetchSnapshot(ctx)
	case f.cfg.StorageNone():
		logger.Info("using an empty storage snapshot")
		return snapshot.Snapshot{}, nil
	}

	cache := snapshot.OpenCache(f.cfg.Storage)
	exists, err := cache.Exists()
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Infof("using existing storage snapshot %s", cache.Path())
		storage, err = cache.Load()
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", cache.Path(), err)
		}
		return storage, nil
	}

	storage, err = f.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	logger.Infof("writing storage snapshot to %s", cache.Path())
	err = cache.Store(storage)
	if err != nil {
		return nil, fmt.Errorf("storing %s: %w", cache.Path(), err)
	}

	return storage, nil
}

func (f *Fork) fetchSnapshot(ctx context.Context) (storage snapshot.Snapshot, err error) {
	node, err := f.connect(ctx)
	if err != nil {
		return nil, err
	}

	at, err := snapshot.ResolveBlock(ctx, node, f.cfg.At)
	if err != nil {
		return nil, err
	}

	logger.Infof("taking storage snapshot at block %s", at.Short())

	return snapshot.Fetch(ctx, node, at, snapshot.Options{
		MaxRequests: f.cfg.MaxRequests,
		PageSize:    f.cfg.PageSize,
		Progress:    f.progress,
	})
}

func (f *Fork) selectPrefixes(ctx context.Context) (prefixes *prefix.Set, err error) {
	if len(f.cfg.Pallets) > 0 {
		return prefix.Explicit(f.cfg.Pallets), nil
	}

	node, err := f.connect(ctx)
	if err != nil {
		return nil, err
	}

	return prefix.Discover(ctx, node, f.cfg.Denylist)
}

func (f *Fork) connect(ctx context.Context) (node NodeAPI, err error) {
	if f.node != nil {
		return f.node, nil
	}

	logger.Infof("connecting to node at %s", f.cfg.RPCEndpoint)
	node, err = f.dial(ctx, f.cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("connecting to node: %w", err)
	}
	f.node = node
	return node, nil
}

func (f *Fork) closeNode() {
	if f.node == nil {
		return
	}

	err := f.node.Close()
	if err != nil {
		logger.Warnf("closing node connection: %s", err)
	}
	f.node = nil
}
