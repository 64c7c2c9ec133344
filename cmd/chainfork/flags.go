// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// MetricsAddressFlag address of the prometheus metrics server
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the prometheus metrics server, disabled if empty. eg --metrics-address=localhost:9876",
	}
	// NoProgressFlag disables the progress bars
	NoProgressFlag = cli.BoolFlag{
		Name:  "no-progress",
		Usage: "Log the snapshot progress instead of drawing progress bars",
	}
)

// Chain specification flags
var (
	// BinaryFlag node binary building chain specifications
	BinaryFlag = cli.StringFlag{
		Name:  "bin",
		Usage: "Path of the node binary used to build chain specifications",
	}
	// RuntimeFlag runtime wasm file
	RuntimeFlag = cli.StringFlag{
		Name:  "runtime",
		Usage: "Path of a runtime wasm file replacing the runtime code of the snapshot",
	}
	// OutputFlag fork chain specification file
	OutputFlag = cli.StringFlag{
		Name:  "out",
		Usage: "Path the fork chain specification is written to",
	}
	// OrigChainFlag original chain
	OrigChainFlag = cli.StringFlag{
		Name:  "orig",
		Usage: "Chain the snapshot is taken from, as known to the node binary. Required, use 'dev' for the development chain",
	}
	// BaseChainFlag base chain
	BaseChainFlag = cli.StringFlag{
		Name:  "base",
		Usage: "Chain whose genesis is the base of the fork. Defaults to the development chain",
	}
	// NameFlag fork name
	NameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "Name of the fork. Defaults to the original chain name suffixed with -fork",
	}
	// IDFlag fork id
	IDFlag = cli.StringFlag{
		Name:  "id",
		Usage: "ID of the fork. Defaults to the original chain id suffixed with -fork",
	}
)

// Storage flags
var (
	// StorageFlag storage snapshot source
	StorageFlag = cli.StringFlag{
		Name: "storage",
		Usage: "Storage snapshot source: 'none' for an empty snapshot, or a snapshot cache path " +
			"read if it exists and written otherwise (.json, .json.zst or .badger). " +
			"Fetched from the node if empty",
	}
	// AtFlag block hash of the snapshot
	AtFlag = cli.StringFlag{
		Name:  "at",
		Usage: "Hex encoded block hash to take the snapshot at. Defaults to the finalized head",
	}
	// RPCFlag node websocket endpoint
	RPCFlag = cli.StringFlag{
		Name:  "rpc",
		Usage: "Websocket JSON-RPC endpoint of the node",
	}
	// MaxRequestsFlag maximum requests in flight
	MaxRequestsFlag = cli.Int64Flag{
		Name:  "max-requests",
		Usage: "Maximum number of requests in flight to the node",
	}
	// PageSizeFlag keys per page
	PageSizeFlag = cli.UintFlag{
		Name:  "page-size",
		Usage: "Number of storage keys requested per page, at most 1000",
	}
)

// Module flags
var (
	// PalletsFlag transplanted modules
	PalletsFlag = cli.StringFlag{
		Name:  "pallets",
		Usage: "Comma separated modules whose storage is transplanted. eg --pallets=Balances,Assets. Defaults to every module with storage",
	}
	// DenylistFlag modules never transplanted
	DenylistFlag = cli.StringFlag{
		Name:  "denylist",
		Usage: "Comma separated modules excluded when transplanting every module. Set it empty to exclude none",
	}
)

// flag sets for the main application
var (
	// GlobalFlags are flags that are valid for use with the root command
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		LogFlag,
		MetricsAddressFlag,
		NoProgressFlag,
	}

	// ForkFlags are flags describing the fork
	ForkFlags = []cli.Flag{
		BinaryFlag,
		RuntimeFlag,
		OutputFlag,
		OrigChainFlag,
		BaseChainFlag,
		NameFlag,
		IDFlag,
		StorageFlag,
		AtFlag,
		RPCFlag,
		MaxRequestsFlag,
		PageSizeFlag,
		PalletsFlag,
		DenylistFlag,
	}

	// AllFlags are all the flags of the application
	AllFlags = append(append([]cli.Flag{}, GlobalFlags...), ForkFlags...)
)
