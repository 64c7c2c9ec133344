// Copyright 2019 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
)

// Twox128Hash returns the 16 bytes concatenation of the little endian
// xxHash64 digests of msg seeded with 0 and 1, as used by Substrate
// to hash module and storage item names.
func Twox128Hash(msg []byte) []byte {
	const rounds = 2
	hash := make([]byte, 0, rounds*8)
	for seed := uint64(0); seed < rounds; seed++ {
		hash = binary.LittleEndian.AppendUint64(hash, xxhash.Checksum64S(msg, seed))
	}
	return hash
}
