// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/chainfork/lib/common"
	"github.com/ChainSafe/chainfork/lib/prefix"
	"github.com/ChainSafe/chainfork/lib/snapshot"
	"github.com/go-playground/validator/v10"
	"github.com/qdm12/gotree"
)

// StorageNone is the storage option value selecting an empty snapshot.
const StorageNone = "none"

// Config is the configuration of a fork.
type Config struct {
	// Binary is the path of the node binary building chain specifications.
	Binary string `validate:"required"`
	// RuntimePath is the optional path of a runtime wasm file
	// replacing the runtime code of the snapshot.
	RuntimePath string `validate:"omitempty,file"`
	// OutputPath is the path the fork chain specification is written to.
	OutputPath string `validate:"required"`
	// OrigChain is the chain the snapshot is taken from. It has no default
	// since forking the wrong chain would go unnoticed.
	OrigChain *Chain `validate:"required"`
	BaseChain Chain
	// Storage is empty to fetch the snapshot from the node, StorageNone
	// in any letter case to use an empty snapshot, or the path of a
	// snapshot cache.
	Storage string
	// At is the block to take the snapshot at, defaulting to
	// the finalized head of the node if nil.
	At   *common.Hash
	Name string
	ID   string
	// RPCEndpoint is the websocket endpoint of the node.
	RPCEndpoint string `validate:"required,url"`
	// Pallets lists the modules whose storage is transplanted.
	// If empty, every module with storage not in Denylist is transplanted.
	Pallets  []string
	Denylist []string
	// MaxRequests is the maximum number of requests in flight to the node.
	MaxRequests int64 `validate:"gte=1"`
	// PageSize is the number of keys requested per page.
	PageSize uint32 `validate:"gte=1,lte=1000"`
}

// DefaultConfig returns the default configuration, to be
// completed with at least the node binary path and the original chain.
func DefaultConfig() Config {
	return Config{
		OutputPath:  "fork.json",
		BaseChain:   DevChain,
		RPCEndpoint: "ws://127.0.0.1:9944",
		Denylist:    append([]string{}, prefix.DefaultDenylist...),
		MaxRequests: snapshot.DefaultMaxRequests,
		PageSize:    snapshot.DefaultPageSize,
	}
}

// Validate validates the configuration.
func (c Config) Validate() (err error) {
	err = validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// StorageNone returns true if the storage option selects an empty snapshot.
func (c Config) StorageNone() bool {
	return strings.EqualFold(c.Storage, StorageNone)
}

func (c Config) String() string {
	return c.toNode().String()
}

func (c Config) toNode() *gotree.Node {
	node := gotree.New("Fork settings:")
	node.Appendf("Node binary: %s", c.Binary)
	if c.OrigChain == nil {
		node.Appendf("Original chain: [not set]")
	} else {
		node.Appendf("Original chain: %s", c.OrigChain)
	}
	node.Appendf("Base chain: %s", c.BaseChain)
	node.Appendf("Name: %s", orDefault(c.Name, "original name"+forkSuffix))
	node.Appendf("ID: %s", orDefault(c.ID, "original id"+forkSuffix))
	node.Appendf("Runtime: %s", orDefault(c.RuntimePath, "snapshot runtime code"))
	node.Appendf("Output: %s", c.OutputPath)

	storageNode := node.Appendf("Storage:")
	switch {
	case c.Storage == "":
		storageNode.Appendf("Source: node")
	case c.StorageNone():
		storageNode.Appendf("Source: none")
	default:
		storageNode.Appendf("Source: cache %s", c.Storage)
	}
	if !c.StorageNone() {
		storageNode.Appendf("Node: %s", c.RPCEndpoint)
		if c.At == nil {
			storageNode.Appendf("Block: finalized head")
		} else {
			storageNode.Appendf("Block: %s", c.At)
		}
		storageNode.Appendf("Max requests: %d", c.MaxRequests)
		storageNode.Appendf("Page size: %d", c.PageSize)
	}

	modulesNode := node.Appendf("Modules:")
	if len(c.Pallets) > 0 {
		modulesNode.Appendf("Transplanted: %s", strings.Join(c.Pallets, ", "))
	} else {
		modulesNode.Appendf("Transplanted: all with storage")
		modulesNode.Appendf("Denylist: %s", orDefault(strings.Join(c.Denylist, ", "), "empty"))
	}

	return node
}

func orDefault(s, defaultValue string) string {
	if s == "" {
		return "[" + defaultValue + "]"
	}
	return s
}
