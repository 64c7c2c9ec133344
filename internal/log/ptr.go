// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// mergePtr sets *dst to a copy of the value of src if *dst is nil.
func mergePtr[T any](dst **T, src *T) {
	if *dst != nil || src == nil {
		return
	}
	value := *src
	*dst = &value
}

// overridePtr sets *dst to a copy of the value of src if src is not nil.
func overridePtr[T any](dst **T, src *T) {
	if src == nil {
		return
	}
	value := *src
	*dst = &value
}

func defaultPtr[T any](dst **T, defaultValue T) {
	if *dst == nil {
		*dst = &defaultValue
	}
}
