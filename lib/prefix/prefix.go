// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package prefix

import (
	"strings"

	"github.com/ChainSafe/chainfork/lib/common"
)

// ModulePrefix returns the hex encoding of Twox128Hash(module),
// the prefix of every storage key of the module.
func ModulePrefix(module string) string {
	return common.BytesToHex(common.Twox128Hash([]byte(module)))
}

// StoragePrefix returns the hex encoding of
// Twox128Hash(module) + Twox128Hash(item), the prefix of the
// storage keys of one storage item of a module.
func StoragePrefix(module, item string) string {
	key := make([]byte, 0, 32)
	key = append(key, common.Twox128Hash([]byte(module))...)
	key = append(key, common.Twox128Hash([]byte(item))...)
	return common.BytesToHex(key)
}

// Set is a set of hex encoded storage key prefixes.
// The zero value is an empty set ready to use.
type Set struct {
	prefixes []string
	seen     map[string]struct{}
}

// NewSet creates a set containing the prefixes given.
func NewSet(prefixes ...string) *Set {
	s := new(Set)
	for _, p := range prefixes {
		s.Add(p)
	}
	return s
}

// Add adds a prefix to the set if it is not already present.
func (s *Set) Add(prefix string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[prefix]; ok {
		return
	}
	s.seen[prefix] = struct{}{}
	s.prefixes = append(s.prefixes, prefix)
}

// Prefixes returns the prefixes of the set in insertion order.
func (s *Set) Prefixes() []string {
	prefixes := make([]string, len(s.prefixes))
	copy(prefixes, s.prefixes)
	return prefixes
}

// Len returns the number of prefixes in the set.
func (s *Set) Len() int {
	return len(s.prefixes)
}

// Contains returns true if any prefix of the set is a prefix
// of the hex encoded storage key given.
func (s *Set) Contains(key string) bool {
	for _, p := range s.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// Filter returns the key value pairs of storage whose key is contained in the set.
func (s *Set) Filter(storage map[string]string) (filtered map[string]string) {
	filtered = make(map[string]string)
	for key, value := range storage {
		if s.Contains(key) {
			filtered[key] = value
		}
	}
	return filtered
}
