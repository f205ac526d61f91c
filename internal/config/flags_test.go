// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCfg  *StructuredConfig
		wantRest []string
	}{
		{
			name:     "no flags",
			args:     []string{"list"},
			wantCfg:  &StructuredConfig{},
			wantRest: []string{"list"},
		},
		{
			name: "layout flags",
			args: []string{"-safe", "a.safe", "-n-blocks", "16", "-bytes-per-block", "32",
				"-block-index-size", "1", "-slice-size", "2", "init"},
			wantCfg: &StructuredConfig{Safe: Safe{
				Path: "a.safe", NBlocks: 16, BytesPerBlock: 32, BlockIndexSize: 1, SliceSize: 2,
			}},
			wantRest: []string{"init"},
		},
		{
			name: "crypto and runtime flags",
			args: []string{"-key-stretching", "pbkdf2", "-key-derivation", "blake2b", "-block-cipher", "chacha20",
				"-cost", "1000", "-workers", "2", "-log-level", "info"},
			wantCfg: &StructuredConfig{
				Crypto:  Crypto{KeyStretching: "pbkdf2", KeyDerivation: "blake2b", BlockCipher: "chacha20", Cost: 1000},
				Workers: Workers{Count: 2},
				Log:     Log{Level: "info"},
			},
			wantRest: []string{},
		},
		{
			name:     "config alias",
			args:     []string{"-config", "cfg.json", "get", "site"},
			wantCfg:  &StructuredConfig{JSONFilePath: "cfg.json"},
			wantRest: []string{"get", "site"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCfg, cfg)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-bogus"}},
		{name: "not a number", args: []string{"-n-blocks", "lots"}},
		{name: "missing value", args: []string{"-safe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
