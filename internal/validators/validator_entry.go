// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pol-safe/models"
)

const (
	FieldKey         = "key"
	FieldNote        = "note"
	FieldSecret      = "secret"
	FieldCredentials = "credentials"
)

// Length limits in bytes. An entry is rewritten with its whole main slice
// on every change, so oversized values are refused early.
const (
	MaxKeyLen    = 256
	MaxNoteLen   = 4096
	MaxSecretLen = 64 * 1024
)

type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, e models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldNote, FieldSecret}
	}

	for _, field := range fields {
		switch field {
		case FieldKey:
			if err := validateEntryKey(e.Key); err != nil {
				return err
			}
		case FieldNote:
			if !utf8.ValidString(e.Note) {
				return ErrInvalidNote
			}
			if len(e.Note) > MaxNoteLen {
				return fmt.Errorf("%w: note has %d bytes, at most %d allowed", ErrFieldTooLong, len(e.Note), MaxNoteLen)
			}
		case FieldSecret:
			if len(e.Secret) > MaxSecretLen {
				return fmt.Errorf("%w: secret has %d bytes, at most %d allowed", ErrFieldTooLong, len(e.Secret), MaxSecretLen)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func validateEntryKey(key string) error {
	if key == "" {
		return ErrEmptyEntryKey
	}
	if len(key) > MaxKeyLen {
		return fmt.Errorf("%w: key has %d bytes, at most %d allowed", ErrFieldTooLong, len(key), MaxKeyLen)
	}
	if !utf8.ValidString(key) {
		return ErrInvalidEntryKey
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return ErrInvalidEntryKey
		}
	}
	return nil
}

func (v *EntryValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	for _, field := range fields {
		if field != FieldCredentials {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	if c.Empty() {
		return ErrNoCredentials
	}
	return nil
}
