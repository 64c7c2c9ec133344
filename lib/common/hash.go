// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// HashLength is the expected length of the common.Hash type
	HashLength = 32
)

var (
	// EmptyHash is the zero value of Hash.
	EmptyHash = Hash{}

	// ErrHashLength is returned when a hex string does not decode to 32 bytes.
	ErrHashLength = errors.New("hash must be 32 bytes")
)

// Hash is a 32 byte block hash, used as the historical reference point
// for storage reads.
type Hash [32]byte

// NewHash casts a byte array to a Hash
// if the input is longer than 32 bytes, it takes the first 32 bytes
func NewHash(in []byte) (res Hash) {
	res = [32]byte{}
	copy(res[:], in)
	return res
}

// String returns the hex string for the hash
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// UnmarshalJSON converts hex data to hash
func (h *Hash) UnmarshalJSON(data []byte) error {
	trimmedData := strings.Trim(string(data), "\"")
	if len(trimmedData) < 2 {
		return errors.New("invalid hash format")
	}

	var err error
	if *h, err = HexToHash(trimmedData); err != nil {
		return err
	}
	return nil
}

// MarshalJSON converts hash to hex data
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// HexToHash turns a 0x prefixed hex string into type Hash.
// The decoded value must be exactly 32 bytes long.
func HexToHash(in string) (Hash, error) {
	out, err := HexToBytes(in)
	if err != nil {
		return EmptyHash, err
	}

	if len(out) != HashLength {
		return EmptyHash, fmt.Errorf("%w: got %d bytes", ErrHashLength, len(out))
	}

	return NewHash(out), nil
}

// MustHexToHash turns a 0x prefixed hex string into type Hash
// it panics if it cannot turn the string into a Hash
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}
