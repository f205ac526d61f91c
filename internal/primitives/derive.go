// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package primitives

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

// Supported "key-derivation" types.
const (
	DeriveHKDFSHA256 = "hkdf-sha256"
	DeriveBLAKE2b    = "blake2b"
)

// hkdfInfo separates this tool's HKDF outputs from other HKDF users.
var hkdfInfo = []byte("pol key derivation")

// NewKeyDeriver builds the key derivation described by params.
func NewKeyDeriver(params Params) (KeyDeriver, error) {
	typ, err := params.Type()
	if err != nil {
		return nil, err
	}

	switch typ {
	case DeriveHKDFSHA256:
		return &hkdfDeriver{params: params}, nil
	case DeriveBLAKE2b:
		return &blake2bDeriver{params: params}, nil
	default:
		return nil, fmt.Errorf("%w: unknown key derivation %q", ErrConfig, typ)
	}
}

// encodeParts length-prefixes every part so the encoding is injective.
func encodeParts(parts [][]byte) []byte {
	size := 0
	for _, p := range parts {
		size += binary.MaxVarintLen64 + len(p)
	}
	buf := make([]byte, 0, size)
	for _, p := range parts {
		buf = binary.AppendUvarint(buf, uint64(len(p)))
		buf = append(buf, p...)
	}
	return buf
}

type hkdfDeriver struct {
	params Params
}

func (d *hkdfDeriver) Params() Params { return d.params }

func (d *hkdfDeriver) Derive(parts [][]byte, salt []byte, outLen int) ([]byte, error) {
	if outLen < 1 || outLen > 255*sha256.Size {
		return nil, fmt.Errorf("%w: hkdf output length %d", ErrPrimitive, outLen)
	}

	out := make([]byte, outLen)
	r := hkdf.New(sha256.New, encodeParts(parts), salt, hkdfInfo)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("%w: hkdf: %w", ErrPrimitive, err)
	}
	return out, nil
}

type blake2bDeriver struct {
	params Params
}

func (d *blake2bDeriver) Params() Params { return d.params }

func (d *blake2bDeriver) Derive(parts [][]byte, salt []byte, outLen int) ([]byte, error) {
	if outLen < 1 || uint64(outLen) >= uint64(blake2b.OutputLengthUnknown) {
		return nil, fmt.Errorf("%w: blake2b output length %d", ErrPrimitive, outLen)
	}

	key := salt
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(salt)
		key = sum[:]
	}

	x, err := blake2b.NewXOF(uint32(outLen), key)
	if err != nil {
		return nil, fmt.Errorf("%w: blake2b: %w", ErrPrimitive, err)
	}
	if _, err = x.Write(encodeParts(parts)); err != nil {
		return nil, fmt.Errorf("%w: blake2b: %w", ErrPrimitive, err)
	}

	out := make([]byte, outLen)
	if _, err = io.ReadFull(x, out); err != nil {
		return nil, fmt.Errorf("%w: blake2b: %w", ErrPrimitive, err)
	}
	return out, nil
}
