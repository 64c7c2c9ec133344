// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import "strings"

// Chain identifies the chain a node builds a specification for.
// The zero value is the development chain.
type Chain struct {
	name string
}

// DevChain is the development chain.
var DevChain = Chain{}

// ParseChain returns the chain named s, where "dev" in any
// letter case and the empty string are the development chain.
func ParseChain(s string) Chain {
	if s == "" || strings.EqualFold(s, "dev") {
		return DevChain
	}
	return Chain{name: s}
}

// IsDev returns true if the chain is the development chain.
func (c Chain) IsDev() bool {
	return c.name == ""
}

// Args returns the node command line arguments selecting the chain.
func (c Chain) Args() []string {
	if c.IsDev() {
		return []string{"--dev"}
	}
	return []string{"--chain", c.name}
}

func (c Chain) String() string {
	if c.IsDev() {
		return "dev"
	}
	return c.name
}
