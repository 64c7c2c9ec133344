// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import "encoding/json"

const jsonRPCVersion = "2.0"

// Request is a JSON-RPC 2.0 request
type Request struct {
	// JSON-RPC Version
	Version string `json:"jsonrpc"`
	// Method name called
	Method string `json:"method"`
	// Positional parameters
	Params []interface{} `json:"params"`
	// Request id
	ID uint64 `json:"id"`
}

// Response wraps the websocket response
type Response struct {
	// JSON-RPC Version
	Version string `json:"jsonrpc"`
	// Method name called, set for subscription notifications only
	Method string `json:"method,omitempty"`
	// Resulting values
	Result json.RawMessage `json:"result,omitempty"`
	// Params values of subscription notifications
	Params json.RawMessage `json:"params,omitempty"`
	// Any generated errors
	Error *Error `json:"error,omitempty"`
	// Request id, nil for subscription notifications
	ID *uint64 `json:"id,omitempty"`
}

// Error is a struct that holds the error message and the error code for a error
type Error struct {
	Message   string          `json:"message"`
	ErrorCode int             `json:"code"`
	Data      json.RawMessage `json:"data,omitempty"`
}
