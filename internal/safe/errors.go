// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safe

import "errors"

var (
	// ErrFormat is returned for a file that is not a well-formed safe.
	ErrFormat = errors.New("invalid safe format")

	// ErrWrongPassword is the only error Open returns for a password or key
	// that opens nothing. It does not tell whether a container exists.
	ErrWrongPassword = errors.New("wrong password")

	// ErrEntryNotFound is returned when a container has no entry with the
	// requested key.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrDuplicateEntry is returned when adding an entry whose key is
	// already taken.
	ErrDuplicateEntry = errors.New("entry already exists")

	// ErrCapability is returned when the opened capability does not permit
	// an operation.
	ErrCapability = errors.New("operation not permitted by capability")

	// ErrAccessCollision is returned when the access slices of a new
	// container would share blocks. A different password avoids it.
	ErrAccessCollision = errors.New("access slices collide")
)
