// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

// ErrBuildSpec is returned when the node binary fails to build a chain specification.
var ErrBuildSpec = errors.New("cannot build chain specification")

// ErrNoOrigChain is returned when the original chain is not given.
var ErrNoOrigChain = errors.New("no original chain given")

// ErrNoRuntimeCode is returned when no runtime file is given and the
// storage snapshot has no runtime code.
var ErrNoRuntimeCode = errors.New("no runtime code")
