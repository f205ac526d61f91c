// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pol command-line application runtime.
//
// It parses the subcommand arguments, resolves credentials and hands the
// work to the safe service.
package client
