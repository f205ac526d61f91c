// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the layout of the JSON config file.
type StructuredJSONConfig struct {
	Safe struct {
		Path           string `json:"path"`
		NBlocks        int    `json:"n_blocks"`
		BytesPerBlock  int    `json:"bytes_per_block"`
		BlockIndexSize int    `json:"block_index_size"`
		SliceSize      int    `json:"slice_size"`
	} `json:"safe,omitempty"`

	Crypto struct {
		KeyStretching string `json:"key_stretching"`
		KeyDerivation string `json:"key_derivation"`
		BlockCipher   string `json:"block_cipher"`
		Cost          int    `json:"cost"`
	} `json:"crypto,omitempty"`

	Workers struct {
		Count int `json:"count"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		Safe: Safe{
			Path:           jsonCfg.Safe.Path,
			NBlocks:        jsonCfg.Safe.NBlocks,
			BytesPerBlock:  jsonCfg.Safe.BytesPerBlock,
			BlockIndexSize: jsonCfg.Safe.BlockIndexSize,
			SliceSize:      jsonCfg.Safe.SliceSize,
		},
		Crypto: Crypto{
			KeyStretching: jsonCfg.Crypto.KeyStretching,
			KeyDerivation: jsonCfg.Crypto.KeyDerivation,
			BlockCipher:   jsonCfg.Crypto.BlockCipher,
			Cost:          jsonCfg.Crypto.Cost,
		},
		Workers: Workers{Count: jsonCfg.Workers.Count},
		Log:     Log{Level: jsonCfg.Log.Level},
	}, nil
}
