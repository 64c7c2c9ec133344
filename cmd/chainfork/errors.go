// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import "errors"

// ErrUnexpectedArguments is returned when positional arguments are given.
var ErrUnexpectedArguments = errors.New("unexpected arguments")
