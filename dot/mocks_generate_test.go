// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . NodeAPI,SpecGenerator
