// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pol-safe/internal/safe"
	"github.com/MKhiriev/go-pol-safe/models"
)

//go:generate mockgen -destination=mock_store_test.go -package=service github.com/MKhiriev/go-pol-safe/internal/store SafeStorage

// SafeService defines the operations of the pol command on a stored safe.
type SafeService interface {
	// Init generates a new safe of junk blocks and stores it. It fails if a
	// safe is already stored.
	Init(ctx context.Context, opts safe.GenerateOptions) error

	// NewContainer creates a container opened by password. The options pick
	// the delegate passwords.
	NewContainer(ctx context.Context, password string, opts ...safe.ContainerOption) error

	// List returns the entries visible to cred.
	List(ctx context.Context, cred models.Credentials) ([]models.EntryInfo, error)

	// Get returns the secret of the entry named key. Requires full access.
	Get(ctx context.Context, cred models.Credentials, key string) (string, error)

	// Add stores e in the main slice. Requires full access.
	Add(ctx context.Context, cred models.Credentials, e models.Entry) error

	// Append queues e for the container owner. Requires append access.
	Append(ctx context.Context, cred models.Credentials, e models.Entry) error

	// Merge moves queued entries into the main slice. Requires full access.
	Merge(ctx context.Context, cred models.Credentials) error

	// Keys returns the encoded capability keys of password.
	Keys(ctx context.Context, password string) (map[models.Capability]string, error)
}
