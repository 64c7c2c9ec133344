// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"github.com/ChainSafe/chainfork/lib/common"
	"github.com/ChainSafe/chainfork/lib/genesis"
	"github.com/ChainSafe/chainfork/lib/prefix"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

const (
	// genesisMarkerKey is set so the fork genesis state always differs
	// from the genesis state of the chains it is built from.
	genesisMarkerKey   = "0xdeadbeef"
	genesisMarkerValue = "0x1"

	targetBlockTimeMillis = 6000
)

var (
	lastRuntimeUpgradeKey = prefix.StoragePrefix("System", "LastRuntimeUpgrade")
	sudoKey               = prefix.StoragePrefix("Sudo", "Key")
	targetBlockTimeKey    = prefix.StoragePrefix("Difficulty", "TargetBlockTime")

	// aliceKey is the public key of the Alice development account.
	aliceKey = common.BytesToHex(signature.TestKeyringPairAlice.PublicKey)

	targetBlockTime = mustEncodeToHex(types.NewU64(targetBlockTimeMillis))
)

func mustEncodeToHex(value interface{}) string {
	encoded, err := codec.EncodeToHex(value)
	if err != nil {
		panic(err)
	}
	return encoded
}

// MergeState writes every key value pair of storage into the genesis
// storage of spec, overwriting existing values.
func MergeState(spec *genesis.ChainSpec, storage map[string]string) {
	for key, value := range storage {
		spec.SetState(key, value)
	}
}

// RemoveLastRuntimeUpgrade removes System.LastRuntimeUpgrade from the genesis
// storage of spec. Without it, the runtime considers it was just upgraded
// and runs its pending storage migrations in the first block of the fork.
func RemoveLastRuntimeUpgrade(spec *genesis.ChainSpec) {
	spec.RemoveState(lastRuntimeUpgradeKey)
}

// applyOverrides sets the state and settings making the
// fork a network of its own, controlled by Alice.
func applyOverrides(spec *genesis.ChainSpec) {
	spec.SetState(genesisMarkerKey, genesisMarkerValue)
	spec.SetState(sudoKey, aliceKey)
	spec.Bootnodes = []string{}
	spec.SetState(targetBlockTimeKey, targetBlockTime)
}
