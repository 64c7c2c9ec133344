// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrNoPrefix is returned when trying to convert a hex-encoded string with no 0x prefix
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// BytesToHex turns a byte slice into a 0x prefixed lowercase hex string
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, fmt.Errorf("%w: %q", ErrNoPrefix, in)
	}

	out, err := hex.DecodeString(in[2:])
	if err != nil {
		return nil, fmt.Errorf("decoding hex string %q: %w", in, err)
	}
	return out, nil
}

// IsStorageKeyHex returns true if s is the canonical form of a storage key:
// a 0x prefixed, even length, lowercase hex string.
func IsStorageKeyHex(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s)%2 != 0 {
		return false
	}

	for _, c := range s[2:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
