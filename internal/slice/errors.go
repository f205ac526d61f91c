// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package slice

import "errors"

var (
	// ErrSliceAbsent means the key does not open a slice at the probed
	// positions. Junk, a wrong key and a damaged slice all look the same.
	ErrSliceAbsent = errors.New("slice absent")

	// ErrSafeFull is returned when a payload does not fit the safe.
	ErrSafeFull = errors.New("safe full")

	// ErrLayout is returned for an unusable block index or slice size.
	ErrLayout = errors.New("invalid slice layout")
)
