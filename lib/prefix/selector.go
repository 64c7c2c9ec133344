// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package prefix

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/chainfork/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "prefix"))

// ErrUnsupportedMetadata is returned when the runtime metadata of the node
// cannot be used to list its modules.
var ErrUnsupportedMetadata = errors.New("unsupported runtime metadata")

// DefaultDenylist lists the modules whose state is regenerated by the new chain:
// block and consensus bookkeeping and node identity.
var DefaultDenylist = []string{"System", "Authorship", "Difficulty", "Rewards"}

// SystemAccountPrefix is the prefix of the System.Account storage map,
// always transplanted so that balances survive the fork.
var SystemAccountPrefix = StoragePrefix("System", "Account")

// Module is a runtime module as described by the runtime metadata.
type Module struct {
	Name       string
	HasStorage bool
}

// MetadataSource lists the modules of the runtime.
type MetadataSource interface {
	Modules(ctx context.Context) ([]Module, error)
}

// Explicit returns the set of the module prefixes of the module names given,
// together with the System.Account prefix.
func Explicit(modules []string) *Set {
	set := NewSet(SystemAccountPrefix)
	for _, module := range modules {
		set.Add(ModulePrefix(module))
	}
	return set
}

// Discover queries the runtime modules and returns the set of the module prefixes
// of every module with storage not present in the denylist, together with
// the System.Account prefix.
func Discover(ctx context.Context, source MetadataSource, denylist []string) (*Set, error) {
	modules, err := source.Modules(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting runtime modules: %w", err)
	}

	denied := make(map[string]struct{}, len(denylist))
	for _, name := range denylist {
		denied[name] = struct{}{}
	}

	set := NewSet(SystemAccountPrefix)
	for _, module := range modules {
		if !module.HasStorage {
			continue
		}

		if _, ok := denied[module.Name]; ok {
			logger.Debugf("skipping denylisted module %s", module.Name)
			continue
		}

		logger.Debugf("keeping state of module %s", module.Name)
		set.Add(ModulePrefix(module.Name))
	}

	return set, nil
}
