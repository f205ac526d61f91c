// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

//go:generate mockgen -destination=mock_service_test.go -package=client github.com/MKhiriev/go-pol-safe/internal/service SafeService

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args[0] and returns when it is
	// done.
	Run(ctx context.Context, args []string) error
}
