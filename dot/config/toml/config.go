// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

// Config is a collection of configurations of a fork
type Config struct {
	Global  GlobalConfig  `toml:"global,omitempty"`
	Chain   ChainConfig   `toml:"chain,omitempty"`
	Storage StorageConfig `toml:"storage,omitempty"`
	Modules ModulesConfig `toml:"modules,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	LogLvl         string `toml:"log,omitempty"`
	MetricsAddress string `toml:"metrics-address,omitempty"`
	NoProgress     bool   `toml:"no-progress,omitempty"`
}

// ChainConfig is to marshal/unmarshal toml chain config vars
type ChainConfig struct {
	Binary  string `toml:"bin,omitempty"`
	Runtime string `toml:"runtime,omitempty"`
	Output  string `toml:"out,omitempty"`
	Orig    string `toml:"orig,omitempty"`
	Base    string `toml:"base,omitempty"`
	Name    string `toml:"name,omitempty"`
	ID      string `toml:"id,omitempty"`
}

// StorageConfig is to marshal/unmarshal toml storage config vars
type StorageConfig struct {
	RPC         string `toml:"rpc,omitempty"`
	Path        string `toml:"path,omitempty"`
	At          string `toml:"at,omitempty"`
	MaxRequests int64  `toml:"max-requests,omitempty"`
	PageSize    uint32 `toml:"page-size,omitempty"`
}

// ModulesConfig is to marshal/unmarshal toml modules config vars.
// A nil Denylist keeps the default denylist, whereas an
// empty one disables it.
type ModulesConfig struct {
	Pallets  []string `toml:"pallets,omitempty"`
	Denylist []string `toml:"denylist"`
}
