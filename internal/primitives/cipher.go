// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package primitives

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Supported "block-cipher" types.
const (
	CipherAESCTR   = "aes-ctr"
	CipherChaCha20 = "chacha20"
)

// NewBlockCipher builds the cipher described by params.
//
//	{"type": "aes-ctr", "bits": 256}
//	{"type": "chacha20"}
func NewBlockCipher(params Params) (BlockCipher, error) {
	typ, err := params.Type()
	if err != nil {
		return nil, err
	}

	switch typ {
	case CipherAESCTR:
		bits, err := params.IntOr("bits", 256)
		if err != nil {
			return nil, err
		}
		if bits != 128 && bits != 192 && bits != 256 {
			return nil, fmt.Errorf("%w: unsupported aes key size %d", ErrConfig, bits)
		}
		return &aesCTR{keySize: bits / 8, params: params}, nil
	case CipherChaCha20:
		return &chaCha20{params: params}, nil
	default:
		return nil, fmt.Errorf("%w: unknown block cipher %q", ErrConfig, typ)
	}
}

// aesCTR is AES in counter mode from the standard library.
type aesCTR struct {
	keySize int
	params  Params
}

func (c *aesCTR) KeySize() int   { return c.keySize }
func (c *aesCTR) NonceSize() int { return aes.BlockSize }
func (c *aesCTR) Params() Params { return c.params }

func (c *aesCTR) Encrypt(key, nonce, data []byte) ([]byte, error) {
	if len(key) != c.keySize {
		return nil, fmt.Errorf("%w: aes key is %d bytes, want %d", ErrPrimitive, len(key), c.keySize)
	}
	if len(nonce) != aes.BlockSize {
		return nil, fmt.Errorf("%w: aes nonce is %d bytes, want %d", ErrPrimitive, len(nonce), aes.BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create aes cipher: %w", ErrPrimitive, err)
	}

	out := make([]byte, len(data))
	cipher.NewCTR(block, nonce).XORKeyStream(out, data)
	return out, nil
}

func (c *aesCTR) Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	return c.Encrypt(key, nonce, ciphertext)
}

// chaCha20 is the unauthenticated ChaCha20 stream cipher.
type chaCha20 struct {
	params Params
}

func (c *chaCha20) KeySize() int   { return chacha20.KeySize }
func (c *chaCha20) NonceSize() int { return chacha20.NonceSize }
func (c *chaCha20) Params() Params { return c.params }

func (c *chaCha20) Encrypt(key, nonce, data []byte) ([]byte, error) {
	if len(key) != chacha20.KeySize {
		return nil, fmt.Errorf("%w: chacha20 key is %d bytes, want %d", ErrPrimitive, len(key), chacha20.KeySize)
	}

	s, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: create chacha20 cipher: %w", ErrPrimitive, err)
	}

	out := make([]byte, len(data))
	s.XORKeyStream(out, data)
	return out, nil
}

func (c *chaCha20) Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	return c.Encrypt(key, nonce, ciphertext)
}
