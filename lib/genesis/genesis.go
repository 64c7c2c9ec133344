// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedChainSpec is returned when a document cannot be parsed
// as a raw chain specification.
var ErrMalformedChainSpec = errors.New("malformed chain specification")

// ChainSpec stores the data parsed from a raw chain specification.
// Fields the fork tool does not interpret are kept as raw JSON, and fields
// it does not know about are kept in Extra, so a parsed document is written
// back without losing any content.
type ChainSpec struct {
	Name               string          `json:"name"`
	ID                 string          `json:"id"`
	ChainType          string          `json:"chainType"`
	Bootnodes          []string        `json:"bootNodes"`
	TelemetryEndpoints json.RawMessage `json:"telemetryEndpoints,omitempty"`
	ProtocolID         *string         `json:"protocolId"`
	Properties         json.RawMessage `json:"properties,omitempty"`
	CodeSubstitutes    json.RawMessage `json:"codeSubstitutes,omitempty"`
	Genesis            Fields          `json:"genesis"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Fields stores the genesis section of a chain specification.
type Fields struct {
	Raw RawFields `json:"raw"`

	Extra map[string]json.RawMessage `json:"-"`
}

// RawFields stores the raw genesis storage tables.
type RawFields struct {
	Top             map[string]string `json:"top"`
	ChildrenDefault json.RawMessage   `json:"childrenDefault,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// ParseChainSpec parses a JSON encoded raw chain specification.
func ParseChainSpec(data []byte) (*ChainSpec, error) {
	spec := new(ChainSpec)
	err := json.Unmarshal(data, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedChainSpec, err)
	}

	if spec.Genesis.Raw.Top == nil {
		return nil, fmt.Errorf("%w: genesis.raw.top is missing", ErrMalformedChainSpec)
	}

	return spec, nil
}

// ToJSON returns the indented JSON encoding of the chain specification.
func (c *ChainSpec) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "    ")
}

// SetState inserts or overwrites the value of key in the genesis top storage.
func (c *ChainSpec) SetState(key, value string) {
	if c.Genesis.Raw.Top == nil {
		c.Genesis.Raw.Top = make(map[string]string)
	}
	c.Genesis.Raw.Top[key] = value
}

// RemoveState removes key from the genesis top storage.
// Removing an absent key is a no-op.
func (c *ChainSpec) RemoveState(key string) {
	delete(c.Genesis.Raw.Top, key)
}

// State returns the value of key in the genesis top storage.
func (c *ChainSpec) State(key string) (value string, ok bool) {
	value, ok = c.Genesis.Raw.Top[key]
	return value, ok
}
