// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pol-safe/internal/primitives"
)

// validate checks the merged [StructuredConfig] after defaults were applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Safe.Path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidSafeConfigs)
	}
	if cfg.Safe.NBlocks < 0 || cfg.Safe.BytesPerBlock < 1 || cfg.Safe.SliceSize < 1 {
		return fmt.Errorf("%w: n-blocks %d, bytes-per-block %d, slice-size %d", ErrInvalidSafeConfigs,
			cfg.Safe.NBlocks, cfg.Safe.BytesPerBlock, cfg.Safe.SliceSize)
	}
	if !slices.Contains([]int{1, 2, 4}, cfg.Safe.BlockIndexSize) {
		return fmt.Errorf("%w: block index size %d", ErrInvalidSafeConfigs, cfg.Safe.BlockIndexSize)
	}
	if cfg.Safe.BytesPerBlock <= cfg.Safe.BlockIndexSize {
		return fmt.Errorf("%w: bytes-per-block must exceed the block index size", ErrInvalidSafeConfigs)
	}

	if !slices.Contains([]string{primitives.StretchArgon2, primitives.StretchScrypt, primitives.StretchPBKDF2},
		cfg.Crypto.KeyStretching) {
		return fmt.Errorf("%w: key stretching %q", ErrInvalidCryptoConfigs, cfg.Crypto.KeyStretching)
	}
	if !slices.Contains([]string{primitives.DeriveHKDFSHA256, primitives.DeriveBLAKE2b}, cfg.Crypto.KeyDerivation) {
		return fmt.Errorf("%w: key derivation %q", ErrInvalidCryptoConfigs, cfg.Crypto.KeyDerivation)
	}
	if !slices.Contains([]string{primitives.CipherAESCTR, primitives.CipherChaCha20}, cfg.Crypto.BlockCipher) {
		return fmt.Errorf("%w: block cipher %q", ErrInvalidCryptoConfigs, cfg.Crypto.BlockCipher)
	}
	if cfg.Crypto.Cost < 0 {
		return fmt.Errorf("%w: negative cost", ErrInvalidCryptoConfigs)
	}

	if cfg.Workers.Count < 0 {
		return fmt.Errorf("%w: negative worker count", ErrInvalidWorkerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
