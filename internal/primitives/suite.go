// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package primitives

import (
	"fmt"
	"io"
)

// DefaultSaltSize is the length of the key stretching salt of new safes.
const DefaultSaltSize = 16

// Config holds the four primitive sub-mappings of a safe header verbatim.
type Config struct {
	BlockCipher   Params
	KeyStretching Params
	KeyDerivation Params
	Envelope      Params
}

// Suite binds the four external primitives selected by a safe header.
// It holds no logic of its own beyond the stretching salt and cost, which
// are part of the "key-stretching" sub-mapping.
type Suite struct {
	Cipher    BlockCipher
	Stretcher KeyStretcher
	Deriver   KeyDeriver
	Envelope  Envelope

	salt []byte
	cost int
}

// NewSuite builds every primitive from cfg. Any unknown type or malformed
// attribute fails with ErrConfig.
func NewSuite(cfg Config) (*Suite, error) {
	blockCipher, err := NewBlockCipher(cfg.BlockCipher)
	if err != nil {
		return nil, fmt.Errorf("block-cipher: %w", err)
	}
	stretcher, err := NewKeyStretcher(cfg.KeyStretching)
	if err != nil {
		return nil, fmt.Errorf("key-stretching: %w", err)
	}
	deriver, err := NewKeyDeriver(cfg.KeyDerivation)
	if err != nil {
		return nil, fmt.Errorf("key-derivation: %w", err)
	}
	envelope, err := NewEnvelope(cfg.Envelope)
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	salt, err := cfg.KeyStretching.Bytes("salt")
	if err != nil {
		return nil, fmt.Errorf("key-stretching: %w", err)
	}
	cost, err := cfg.KeyStretching.Int("cost")
	if err != nil {
		return nil, fmt.Errorf("key-stretching: %w", err)
	}

	return &Suite{
		Cipher:    blockCipher,
		Stretcher: stretcher,
		Deriver:   deriver,
		Envelope:  envelope,
		salt:      salt,
		cost:      cost,
	}, nil
}

// Salt is the safe-wide stretching salt.
func (s *Suite) Salt() []byte { return s.salt }

// Cost is the safe-wide stretching work factor.
func (s *Suite) Cost() int { return s.cost }

// Config returns the sub-mappings the suite was built from.
func (s *Suite) Config() Config {
	return Config{
		BlockCipher:   s.Cipher.Params(),
		KeyStretching: s.Stretcher.Params(),
		KeyDerivation: s.Deriver.Params(),
		Envelope:      s.Envelope.Params(),
	}
}

// Options selects the primitives of a new safe.
type Options struct {
	BlockCipher   string
	KeyStretching string
	KeyDerivation string
	Envelope      string

	// Cost is the stretching work factor, see NewKeyStretcher.
	// Zero picks the default of the chosen stretcher.
	Cost int

	// Argon2Memory overrides the argon2 memory cost in KiB.
	Argon2Memory int
}

// DefaultOptions returns argon2id, HKDF-SHA256, AES-256-CTR and NaCl boxes.
func DefaultOptions() Options {
	return Options{
		BlockCipher:   CipherAESCTR,
		KeyStretching: StretchArgon2,
		KeyDerivation: DeriveHKDFSHA256,
		Envelope:      EnvelopeNaClBox,
	}
}

// NewConfig builds the header sub-mappings for a new safe, drawing a fresh
// stretching salt from rand.
func NewConfig(rand io.Reader, opts Options) (Config, error) {
	salt := make([]byte, DefaultSaltSize)
	if _, err := io.ReadFull(rand, salt); err != nil {
		return Config{}, fmt.Errorf("generate stretching salt: %w", err)
	}

	ks := Params{"type": opts.KeyStretching, "salt": salt}
	switch opts.KeyStretching {
	case StretchArgon2:
		ks["cost"] = orDefault(opts.Cost, 1)
		ks["memory"] = orDefault(opts.Argon2Memory, 64*1024)
		ks["threads"] = 4
	case StretchScrypt:
		ks["cost"] = orDefault(opts.Cost, 15)
		ks["r"] = 8
		ks["p"] = 1
	case StretchPBKDF2:
		ks["cost"] = orDefault(opts.Cost, 600000)
	default:
		return Config{}, fmt.Errorf("%w: unknown key stretching %q", ErrConfig, opts.KeyStretching)
	}

	bc := Params{"type": opts.BlockCipher}
	if opts.BlockCipher == CipherAESCTR {
		bc["bits"] = 256
	}

	cfg := Config{
		BlockCipher:   bc,
		KeyStretching: ks,
		KeyDerivation: Params{"type": opts.KeyDerivation},
		Envelope:      Params{"type": opts.Envelope},
	}

	// fail early on unknown types
	if _, err := NewSuite(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
