// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-pol-safe/internal/app"
	"github.com/MKhiriev/go-pol-safe/internal/config"
	"github.com/MKhiriev/go-pol-safe/internal/keys"
	"github.com/MKhiriev/go-pol-safe/internal/locator"
	"github.com/MKhiriev/go-pol-safe/internal/primitives"
	"github.com/MKhiriev/go-pol-safe/internal/safe"
	"github.com/MKhiriev/go-pol-safe/internal/slice"
	"github.com/MKhiriev/go-pol-safe/internal/store"
	"github.com/MKhiriev/go-pol-safe/internal/validators"
)

// UserMessage translates err into the message shown to the user. Usage
// errors keep their own text.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUsage):
		return err.Error()
	case errors.Is(err, ErrUnknownCommand):
		return app.MsgUnknownCommand
	case errors.Is(err, safe.ErrWrongPassword):
		return app.MsgWrongPassword
	case errors.Is(err, validators.ErrNoCredentials):
		return app.MsgNoCredentials
	case errors.Is(err, keys.ErrKeyFormat):
		return app.MsgBadKey
	case errors.Is(err, store.ErrSafeNotFound):
		return app.MsgSafeNotFound
	case errors.Is(err, store.ErrSafeExists):
		return app.MsgSafeExists
	case errors.Is(err, store.ErrSafeNotSaved):
		return app.MsgSaveFailed
	case errors.Is(err, safe.ErrFormat):
		return app.MsgSafeCorrupt
	case errors.Is(err, slice.ErrSafeFull):
		return app.MsgSafeFull
	case errors.Is(err, locator.ErrNoCapacity):
		return app.MsgNoBlocks
	case errors.Is(err, safe.ErrEntryNotFound):
		return app.MsgEntryNotFound
	case errors.Is(err, safe.ErrDuplicateEntry):
		return app.MsgDuplicateEntry
	case errors.Is(err, validators.ErrEmptyEntryKey):
		return app.MsgEmptyEntryKey
	case errors.Is(err, validators.ErrInvalidEntryKey),
		errors.Is(err, validators.ErrInvalidNote),
		errors.Is(err, validators.ErrFieldTooLong):
		return app.MsgInvalidEntry
	case errors.Is(err, safe.ErrCapability):
		return app.MsgAccessDenied
	case errors.Is(err, safe.ErrAccessCollision):
		return app.MsgAccessCollision
	case errors.Is(err, primitives.ErrConfig),
		errors.Is(err, config.ErrInvalidSafeConfigs),
		errors.Is(err, config.ErrInvalidCryptoConfigs),
		errors.Is(err, config.ErrInvalidWorkerConfigs),
		errors.Is(err, config.ErrInvalidLogConfigs):
		return app.MsgInvalidConfig
	default:
		return app.MsgInternalError
	}
}
