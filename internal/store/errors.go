// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [SafeStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrSafeNotFound is returned by Load when no safe is stored.
	ErrSafeNotFound = errors.New("safe was not found")

	// ErrSafeExists is returned by Create when a safe is already stored.
	ErrSafeExists = errors.New("safe already exists")

	// ErrSafeNotSaved is returned when writing the new safe file fails. The
	// previously stored safe is left untouched.
	ErrSafeNotSaved = errors.New("safe was not saved")
)
