// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pol-safe/internal/safe"
)

// SafeStorage keeps a safe in durable storage.
type SafeStorage interface {
	// Exists reports whether a safe is stored.
	Exists() bool
	// Create stores a new safe and fails with ErrSafeExists if one is
	// already stored.
	Create(ctx context.Context, s *safe.Safe) error
	// Save rerandomizes s and replaces the stored safe with it as one unit.
	Save(ctx context.Context, s *safe.Safe) error
	// Load reads the stored safe.
	Load(ctx context.Context, opts ...safe.Option) (*safe.Safe, error)
}
