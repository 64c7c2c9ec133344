// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ctoml "github.com/ChainSafe/chainfork/dot/config/toml"

	"github.com/ChainSafe/chainfork/dot"
	"github.com/ChainSafe/chainfork/lib/common"
	"github.com/naoina/toml"
	"github.com/urfave/cli"
)

// defaultLogLevel is the log level used if neither flag nor configuration file sets it.
const defaultLogLevel = "info"

// loadConfigFile loads the TOML configuration file given by the config flag,
// if any, into cfg.
func loadConfigFile(ctx *cli.Context, cfg *ctoml.Config) (err error) {
	cfgPath := ctx.String(ConfigFlag.Name)
	if cfgPath == "" {
		return nil
	}

	logger.Info("loading toml configuration from " + cfgPath + "...")
	return loadConfigFromFile(cfg, cfgPath)
}

func loadConfigFromFile(cfg *ctoml.Config, path string) (err error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}

	err = toml.NewDecoder(file).Decode(cfg)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("decoding toml configuration %s: %w", path, err)
	}

	return file.Close()
}

// createDotConfig creates the fork configuration from the defaults, overridden
// by the TOML configuration file and then by the command line flags.
func createDotConfig(ctx *cli.Context) (cfg dot.Config, tomlCfg *ctoml.Config, err error) {
	tomlCfg = new(ctoml.Config)
	err = loadConfigFile(ctx, tomlCfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("loading toml configuration: %w", err)
	}

	cfg = dot.DefaultConfig()
	setDotChainConfig(ctx, tomlCfg.Chain, &cfg)
	err = setDotStorageConfig(ctx, tomlCfg.Storage, &cfg)
	if err != nil {
		return cfg, nil, err
	}
	setDotModulesConfig(ctx, tomlCfg.Modules, &cfg)

	return cfg, tomlCfg, nil
}

func setDotChainConfig(ctx *cli.Context, tomlCfg ctoml.ChainConfig, cfg *dot.Config) {
	cfg.Binary = stringValue(ctx, BinaryFlag.Name, tomlCfg.Binary, cfg.Binary)
	cfg.RuntimePath = stringValue(ctx, RuntimeFlag.Name, tomlCfg.Runtime, cfg.RuntimePath)
	cfg.OutputPath = stringValue(ctx, OutputFlag.Name, tomlCfg.Output, cfg.OutputPath)
	if orig := stringValue(ctx, OrigChainFlag.Name, tomlCfg.Orig, ""); orig != "" {
		origChain := dot.ParseChain(orig)
		cfg.OrigChain = &origChain
	}
	cfg.BaseChain = dot.ParseChain(stringValue(ctx, BaseChainFlag.Name, tomlCfg.Base, cfg.BaseChain.String()))
	cfg.Name = stringValue(ctx, NameFlag.Name, tomlCfg.Name, cfg.Name)
	cfg.ID = stringValue(ctx, IDFlag.Name, tomlCfg.ID, cfg.ID)
}

func setDotStorageConfig(ctx *cli.Context, tomlCfg ctoml.StorageConfig, cfg *dot.Config) (err error) {
	cfg.Storage = stringValue(ctx, StorageFlag.Name, tomlCfg.Path, cfg.Storage)
	if cfg.StorageNone() {
		cfg.Storage = dot.StorageNone
	}
	cfg.RPCEndpoint = stringValue(ctx, RPCFlag.Name, tomlCfg.RPC, cfg.RPCEndpoint)

	if at := stringValue(ctx, AtFlag.Name, tomlCfg.At, ""); at != "" {
		hash, err := common.HexToHash(at)
		if err != nil {
			return fmt.Errorf("parsing block hash %q: %w", at, err)
		}
		cfg.At = &hash
	}

	if tomlCfg.MaxRequests != 0 {
		cfg.MaxRequests = tomlCfg.MaxRequests
	}
	if ctx.IsSet(MaxRequestsFlag.Name) {
		cfg.MaxRequests = ctx.Int64(MaxRequestsFlag.Name)
	}

	if tomlCfg.PageSize != 0 {
		cfg.PageSize = tomlCfg.PageSize
	}
	if ctx.IsSet(PageSizeFlag.Name) {
		cfg.PageSize = uint32(ctx.Uint(PageSizeFlag.Name))
	}

	return nil
}

func setDotModulesConfig(ctx *cli.Context, tomlCfg ctoml.ModulesConfig, cfg *dot.Config) {
	if len(tomlCfg.Pallets) > 0 {
		cfg.Pallets = tomlCfg.Pallets
	}
	if pallets := ctx.String(PalletsFlag.Name); pallets != "" {
		cfg.Pallets = splitList(pallets)
	}

	if tomlCfg.Denylist != nil {
		cfg.Denylist = tomlCfg.Denylist
	}
	if ctx.IsSet(DenylistFlag.Name) {
		cfg.Denylist = splitList(ctx.String(DenylistFlag.Name))
	}
}

// stringValue returns the flag value if it is not empty, otherwise
// the toml value if it is not empty, otherwise the default value.
func stringValue(ctx *cli.Context, flagName, tomlValue, defaultValue string) string {
	if value := ctx.String(flagName); value != "" {
		return value
	}
	if tomlValue != "" {
		return tomlValue
	}
	return defaultValue
}

// splitList splits a comma separated list, ignoring empty elements.
func splitList(s string) (list []string) {
	list = []string{}
	for _, element := range strings.Split(s, ",") {
		element = strings.TrimSpace(element)
		if element == "" {
			continue
		}
		list = append(list, element)
	}
	return list
}
