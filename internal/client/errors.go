// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUsage is returned when the arguments of a subcommand are invalid.
	ErrUsage = errors.New("usage error")

	// ErrUnknownCommand is returned for an unknown subcommand.
	ErrUnknownCommand = errors.New("unknown command")
)
