// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ChainSafe/chainfork/lib/genesis"
)

// SpecGenerator generates the raw chain specification of a chain.
type SpecGenerator interface {
	BuildSpec(ctx context.Context, chain Chain) (spec *genesis.ChainSpec, err error)
}

// BinaryGenerator generates chain specifications by running
// `<binary> build-spec <chain arguments> --raw`.
type BinaryGenerator struct {
	binary string
}

// NewBinaryGenerator returns a generator running the node binary given.
func NewBinaryGenerator(binary string) *BinaryGenerator {
	return &BinaryGenerator{binary: binary}
}

// BuildSpec runs the node binary and parses its standard output.
func (g *BinaryGenerator) BuildSpec(ctx context.Context, chain Chain) (spec *genesis.ChainSpec, err error) {
	args := []string{"build-spec"}
	args = append(args, chain.Args()...)
	args = append(args, "--raw")

	logger.Debugf("running %s %s", g.binary, strings.Join(args, " "))

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd := exec.CommandContext(ctx, g.binary, args...) //nolint:gosec
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	err = cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: for chain %s: %s: %s",
			ErrBuildSpec, chain, err, lastLine(stderr.String()))
	}

	spec, err = genesis.ParseChainSpec(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parsing chain specification of chain %s: %w", chain, err)
	}

	return spec, nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
