// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . HeadAPI,KeysAPI,Logger,Progress
