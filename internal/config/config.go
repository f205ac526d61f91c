// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the configuration of the pol command. It is populated
// by merging values from environment variables, command-line flags and an
// optional JSON file, and then filled up with defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Safe holds the location and the layout of the safe file. The layout
	// fields are only used when a new safe is generated.
	Safe Safe `envPrefix:"POL_SAFE_"`

	// Crypto selects the primitives of a new safe.
	Crypto Crypto `envPrefix:"POL_CRYPTO_"`

	// Workers limits the goroutines used for rerandomization and the safe
	// prime search.
	Workers Workers `envPrefix:"POL_WORKERS_"`

	// Log configures the stderr logger.
	Log Log `envPrefix:"POL_LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Safe holds the safe file path and the layout of newly generated safes.
type Safe struct {
	// Path is the safe file.
	// Env: POL_SAFE_PATH
	Path string `env:"PATH"`

	// NBlocks is the number of blocks of a new safe.
	// Env: POL_SAFE_N_BLOCKS
	NBlocks int `env:"N_BLOCKS"`

	// BytesPerBlock is the plaintext capacity of one block. It fixes the
	// size of the group modulus.
	// Env: POL_SAFE_BYTES_PER_BLOCK
	BytesPerBlock int `env:"BYTES_PER_BLOCK"`

	// BlockIndexSize is the width of the chain field in bytes: 1, 2 or 4.
	// Env: POL_SAFE_BLOCK_INDEX_SIZE
	BlockIndexSize int `env:"BLOCK_INDEX_SIZE"`

	// SliceSize rounds every slice up to a multiple of this many blocks.
	// Env: POL_SAFE_SLICE_SIZE
	SliceSize int `env:"SLICE_SIZE"`
}

// Crypto names the primitives of a new safe.
type Crypto struct {
	// Env: POL_CRYPTO_KEY_STRETCHING (argon2, scrypt or pbkdf2)
	KeyStretching string `env:"KEY_STRETCHING"`

	// Env: POL_CRYPTO_KEY_DERIVATION (hkdf-sha256 or blake2b)
	KeyDerivation string `env:"KEY_DERIVATION"`

	// Env: POL_CRYPTO_BLOCK_CIPHER (aes-ctr or chacha20)
	BlockCipher string `env:"BLOCK_CIPHER"`

	// Cost is the stretching work factor; zero picks the stretcher default.
	// Env: POL_CRYPTO_COST
	Cost int `env:"COST"`
}

// Workers holds the parallelism settings.
type Workers struct {
	// Count is the number of goroutines; zero means one per CPU.
	// Env: POL_WORKERS_COUNT
	Count int `env:"COUNT"`
}

// Log holds the logger settings.
type Log struct {
	// Level is a zerolog level name such as "debug" or "warn".
	// Env: POL_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaultConfig holds the values used for fields no source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Safe: Safe{
			Path:           "pol.safe",
			NBlocks:        1024,
			BytesPerBlock:  128,
			BlockIndexSize: 2,
			SliceSize:      1,
		},
		Crypto: Crypto{
			KeyStretching: "argon2",
			KeyDerivation: "hkdf-sha256",
			BlockCipher:   "aes-ctr",
		},
		Log: Log{Level: "warn"},
	}
}

// GetStructuredConfig loads, merges and validates the configuration from
// all available sources. Later sources override non-zero fields of earlier
// ones:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// It returns the config and the arguments left after the flags, which name
// the subcommand.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, b.rest, nil
}
