// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"
	"os"

	"github.com/ChainSafe/chainfork/lib/common"
	"github.com/ChainSafe/chainfork/lib/genesis"
	"github.com/ChainSafe/chainfork/lib/prefix"
	"github.com/ChainSafe/chainfork/lib/snapshot"
)

const forkSuffix = "-fork"

// Assembly describes the chain specification to assemble.
type Assembly struct {
	// OrigChain is the chain being forked.
	OrigChain Chain
	// BaseChain is the chain whose specification the fork starts from.
	BaseChain Chain
	// Name and ID default to the name and id of the
	// original chain suffixed with "-fork" if left empty.
	Name string
	ID   string
	// RuntimePath is the path of a runtime wasm file to use instead
	// of the runtime code of the snapshot, if not empty.
	RuntimePath string
	// Snapshot is the storage of the chain being forked.
	Snapshot snapshot.Snapshot
	// Prefixes selects the snapshot entries transplanted into the fork.
	Prefixes *prefix.Set
}

// Assembler assembles the chain specification of a fork.
type Assembler struct {
	generator SpecGenerator
}

// NewAssembler creates an assembler building the
// baseline chain specifications with the generator given.
func NewAssembler(generator SpecGenerator) *Assembler {
	return &Assembler{generator: generator}
}

// Assemble builds the chain specification of the fork: the specification
// of the base chain, named after the original chain, with the selected
// snapshot state and runtime code, and the fork overrides applied.
func (a *Assembler) Assemble(ctx context.Context, assembly Assembly) (spec *genesis.ChainSpec, err error) {
	origSpec, err := a.generator.BuildSpec(ctx, assembly.OrigChain)
	if err != nil {
		return nil, fmt.Errorf("building original chain specification: %w", err)
	}

	spec, err = a.generator.BuildSpec(ctx, assembly.BaseChain)
	if err != nil {
		return nil, fmt.Errorf("building base chain specification: %w", err)
	}

	spec.Name = assembly.Name
	if spec.Name == "" {
		spec.Name = origSpec.Name + forkSuffix
	}
	spec.ID = assembly.ID
	if spec.ID == "" {
		spec.ID = origSpec.ID + forkSuffix
	}
	spec.ProtocolID = origSpec.ProtocolID

	filtered := assembly.Prefixes.Filter(assembly.Snapshot)
	logger.Infof("transplanting %d of %d storage entries", len(filtered), len(assembly.Snapshot))
	MergeState(spec, filtered)

	RemoveLastRuntimeUpgrade(spec)

	code, err := runtimeCode(assembly.RuntimePath, assembly.Snapshot)
	if err != nil {
		return nil, err
	}
	spec.SetState(common.CodeKeyHex, code)

	applyOverrides(spec)

	return spec, nil
}

// runtimeCode returns the hex encoded runtime code read from the file
// at path if path is not empty, and from the snapshot otherwise.
func runtimeCode(path string, storage snapshot.Snapshot) (code string, err error) {
	if path != "" {
		logger.Infof("reading runtime code from %s", path)
		wasm, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading runtime code: %w", err)
		}
		return common.BytesToHex(wasm), nil
	}

	code, ok := storage[common.CodeKeyHex]
	if !ok {
		return "", fmt.Errorf("%w: no runtime file given and snapshot has no %s entry",
			ErrNoRuntimeCode, common.CodeKeyHex)
	}
	return code, nil
}
