// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

// newTestContext creates a cli context with the application flags
// parsed from the arguments given.
func newTestContext(t *testing.T, arguments ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	set.SetOutput(io.Discard)
	for _, f := range AllFlags {
		f.Apply(set)
	}
	err := set.Parse(arguments)
	require.NoError(t, err)

	testApp := cli.NewApp()
	testApp.Writer = io.Discard
	testApp.Flags = AllFlags
	return cli.NewContext(testApp, set, nil)
}

func writeTOMLConfig(t *testing.T, content string) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(content), os.ModePerm)
	require.NoError(t, err)
	return path
}
