// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"fmt"

	"github.com/ChainSafe/chainfork/lib/prefix"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

func decodeModules(encodedMetadata []byte) (modules []prefix.Module, err error) {
	metadata := new(types.Metadata)
	err = codec.Decode(encodedMetadata, metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", prefix.ErrUnsupportedMetadata, err)
	}

	return metadataModules(metadata)
}

func metadataModules(metadata *types.Metadata) (modules []prefix.Module, err error) {
	if metadata.Version != 14 {
		return nil, fmt.Errorf("%w: version %d, want 14",
			prefix.ErrUnsupportedMetadata, metadata.Version)
	}

	pallets := metadata.AsMetadataV14.Pallets
	modules = make([]prefix.Module, len(pallets))
	for i, pallet := range pallets {
		modules[i] = prefix.Module{
			Name:       string(pallet.Name),
			HasStorage: bool(pallet.HasStorage),
		}
	}
	return modules, nil
}
