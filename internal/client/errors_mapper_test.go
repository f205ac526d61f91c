// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pol-safe/internal/app"
	"github.com/MKhiriev/go-pol-safe/internal/config"
	"github.com/MKhiriev/go-pol-safe/internal/keys"
	"github.com/MKhiriev/go-pol-safe/internal/locator"
	"github.com/MKhiriev/go-pol-safe/internal/safe"
	"github.com/MKhiriev/go-pol-safe/internal/slice"
	"github.com/MKhiriev/go-pol-safe/internal/store"
	"github.com/MKhiriev/go-pol-safe/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrong password", fmt.Errorf("open container: %w", safe.ErrWrongPassword), app.MsgWrongPassword},
		{"no credentials", validators.ErrNoCredentials, app.MsgNoCredentials},
		{"bad key", fmt.Errorf("decode capability key: %w", keys.ErrKeyFormat), app.MsgBadKey},
		{"safe missing", fmt.Errorf("load safe: %w", store.ErrSafeNotFound), app.MsgSafeNotFound},
		{"safe exists", store.ErrSafeExists, app.MsgSafeExists},
		{"save failed", fmt.Errorf("%w: %w", store.ErrSafeNotSaved, context.Canceled), app.MsgSaveFailed},
		{"corrupt", fmt.Errorf("%w: bad magic", safe.ErrFormat), app.MsgSafeCorrupt},
		{"full", fmt.Errorf("%w: %w", slice.ErrSafeFull, locator.ErrNoCapacity), app.MsgSafeFull},
		{"no blocks", locator.ErrNoCapacity, app.MsgNoBlocks},
		{"entry missing", safe.ErrEntryNotFound, app.MsgEntryNotFound},
		{"duplicate", safe.ErrDuplicateEntry, app.MsgDuplicateEntry},
		{"empty key", validators.ErrEmptyEntryKey, app.MsgEmptyEntryKey},
		{"too long", fmt.Errorf("validate entry: %w", validators.ErrFieldTooLong), app.MsgInvalidEntry},
		{"capability", safe.ErrCapability, app.MsgAccessDenied},
		{"withheld key", fmt.Errorf("%w: %w: opened as list", safe.ErrWrongPassword, safe.ErrCapability), app.MsgWrongPassword},
		{"collision", safe.ErrAccessCollision, app.MsgAccessCollision},
		{"config", fmt.Errorf("%w: level", config.ErrInvalidLogConfigs), app.MsgInvalidConfig},
		{"unknown command", ErrUnknownCommand, app.MsgUnknownCommand},
		{"other", errors.New("boom"), app.MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_UsageKeepsText(t *testing.T) {
	err := fmt.Errorf("%w: get takes 1 argument(s), got 0", ErrUsage)
	assert.Equal(t, err.Error(), UserMessage(err))
}
