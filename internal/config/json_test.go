// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeJSON(t, `{
		"safe": {"path": "/srv/pol.safe", "n_blocks": 2048, "bytes_per_block": 96,
		         "block_index_size": 2, "slice_size": 4},
		"crypto": {"key_stretching": "scrypt", "key_derivation": "hkdf-sha256",
		           "block_cipher": "aes-ctr", "cost": 15},
		"workers": {"count": 6},
		"log": {"level": "error"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		Safe: Safe{Path: "/srv/pol.safe", NBlocks: 2048, BytesPerBlock: 96, BlockIndexSize: 2, SliceSize: 4},
		Crypto: Crypto{
			KeyStretching: "scrypt", KeyDerivation: "hkdf-sha256", BlockCipher: "aes-ctr", Cost: 15,
		},
		Workers: Workers{Count: 6},
		Log:     Log{Level: "error"},
	}, cfg)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeJSON(t, `{"safe": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_WrongType(t *testing.T) {
	_, err := parseJSON(writeJSON(t, `{"safe": {"n_blocks": "many"}}`))
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSON(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
