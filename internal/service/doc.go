// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the safe use cases behind the pol commands.
//
// Every call loads the stored safe, opens one container, and for mutations
// rerandomizes and saves the whole safe again before returning.
package service
