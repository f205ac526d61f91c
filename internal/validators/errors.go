// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEntryKey   = errors.New("entry key is empty")
	ErrInvalidEntryKey = errors.New("entry key must be printable UTF-8")
	ErrInvalidNote     = errors.New("entry note must be valid UTF-8")
	ErrFieldTooLong    = errors.New("field is too long")
	ErrNoCredentials   = errors.New("no password or key provided")
)
