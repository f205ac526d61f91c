// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from POL_* environment variables. Each section of
// [StructuredConfig] brings its prefix through an envPrefix tag, so
// Safe.NBlocks is read from POL_SAFE_N_BLOCKS.
//
// Variables that are not set leave their fields zero, which the builder
// later fills from other sources or the defaults.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
