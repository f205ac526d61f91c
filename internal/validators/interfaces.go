// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the values the pol
// command writes into a safe.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Validation runs before a safe is loaded, so bad input never costs a key
// stretch or a rewrite of the safe file.
package validators

import "context"

// Validator checks a value before it is written into a safe. Passing field
// names (Field* constants) limits the check to those fields; an unknown
// field or an unsupported value type is an error.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
