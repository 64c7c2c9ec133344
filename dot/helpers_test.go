// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/chainfork/lib/genesis"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

// newOrigSpec returns the chain specification of a live chain being forked.
func newOrigSpec() *genesis.ChainSpec {
	return &genesis.ChainSpec{
		Name:       "Creditcoin",
		ID:         "creditcoin",
		ChainType:  "Live",
		Bootnodes:  []string{"/dns4/bootnode.creditcoin.network/tcp/30333"},
		ProtocolID: ptrTo("ctc"),
		Genesis: genesis.Fields{
			Raw: genesis.RawFields{
				Top: map[string]string{"0x01": "0x01"},
			},
		},
	}
}

// newBaseSpec returns the chain specification of a development chain,
// the fork starting point.
func newBaseSpec() *genesis.ChainSpec {
	return &genesis.ChainSpec{
		Name:      "Development",
		ID:        "dev",
		ChainType: "Development",
		Bootnodes: []string{"/ip4/127.0.0.1/tcp/30333"},
		Genesis: genesis.Fields{
			Raw: genesis.RawFields{
				Top: map[string]string{
					"0x02":                "0x02",
					lastRuntimeUpgradeKey: "0x6400",
					sudoKey:               "0x00",
				},
			},
		},
	}
}

func writeTempFile(t *testing.T, name string, data []byte) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, data, 0o600)
	require.NoError(t, err)
	return path
}
