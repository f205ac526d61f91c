// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
)

// ParseFlags parses the global flags in args and returns the remaining
// arguments.
//
// Flags:
//
//	-safe safe file path
//	-n-blocks number of blocks of a new safe
//	-bytes-per-block plaintext bytes per block of a new safe
//	-block-index-size chain field width of a new safe (1, 2 or 4)
//	-slice-size blocks per slice unit of a new safe
//	-key-stretching argon2, scrypt or pbkdf2
//	-key-derivation hkdf-sha256 or blake2b
//	-block-cipher aes-ctr or chacha20
//	-cost key stretching work factor
//	-workers goroutines for rerandomization
//	-log-level zerolog level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("pol", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &StructuredConfig{}
	fs.StringVar(&cfg.Safe.Path, "safe", "", "Safe file path")
	fs.IntVar(&cfg.Safe.NBlocks, "n-blocks", 0, "Number of blocks of a new safe")
	fs.IntVar(&cfg.Safe.BytesPerBlock, "bytes-per-block", 0, "Plaintext bytes per block of a new safe")
	fs.IntVar(&cfg.Safe.BlockIndexSize, "block-index-size", 0, "Chain field width of a new safe")
	fs.IntVar(&cfg.Safe.SliceSize, "slice-size", 0, "Blocks per slice unit of a new safe")
	fs.StringVar(&cfg.Crypto.KeyStretching, "key-stretching", "", "Key stretching of a new safe")
	fs.StringVar(&cfg.Crypto.KeyDerivation, "key-derivation", "", "Key derivation of a new safe")
	fs.StringVar(&cfg.Crypto.BlockCipher, "block-cipher", "", "Block cipher of a new safe")
	fs.IntVar(&cfg.Crypto.Cost, "cost", 0, "Key stretching work factor")
	fs.IntVar(&cfg.Workers.Count, "workers", 0, "Goroutines for rerandomization")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}
