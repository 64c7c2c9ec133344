// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"fmt"

	"github.com/ChainSafe/chainfork/lib/common"
	"github.com/ChainSafe/chainfork/lib/prefix"
)

// GetKeysPaged returns at most count storage keys starting with prefix,
// following startKey, at the block given. An empty startKey starts from
// the first key.
func (c *Client) GetKeysPaged(ctx context.Context, keyPrefix string, count uint32,
	startKey string, at common.Hash) (keys []string, err error) {
	var start interface{}
	if startKey != "" {
		start = startKey
	}

	err = c.Call(ctx, &keys, "state_getKeysPaged", keyPrefix, count, start, at)
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// GetStorage returns the hex encoded value stored at key at the block given,
// or nil if there is no such value.
func (c *Client) GetStorage(ctx context.Context, key string, at common.Hash) (value *string, err error) {
	err = c.Call(ctx, &value, "state_getStorage", key, at)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// GetFinalizedHead returns the hash of the last finalized block.
func (c *Client) GetFinalizedHead(ctx context.Context) (hash common.Hash, err error) {
	err = c.Call(ctx, &hash, "chain_getFinalizedHead")
	if err != nil {
		return common.EmptyHash, err
	}
	return hash, nil
}

// GetMetadata returns the SCALE encoded runtime metadata at the best block.
func (c *Client) GetMetadata(ctx context.Context) (metadata []byte, err error) {
	var metadataHex string
	err = c.Call(ctx, &metadataHex, "state_getMetadata")
	if err != nil {
		return nil, err
	}

	metadata, err = common.HexToBytes(metadataHex)
	if err != nil {
		return nil, fmt.Errorf("decoding metadata hex: %w", err)
	}
	return metadata, nil
}

// Modules returns the runtime modules listed in the runtime metadata.
func (c *Client) Modules(ctx context.Context) (modules []prefix.Module, err error) {
	metadata, err := c.GetMetadata(ctx)
	if err != nil {
		return nil, err
	}

	return decodeModules(metadata)
}
