// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package randsrc provides the randomness sources handed to a safe.
//
// A safe never reaches for a global generator: junk blocks, rerandomization
// exponents, container secrets and envelope nonces are all drawn from the
// io.Reader it was constructed with. Production code passes [System];
// tests pass [NewSeeded] to reproduce block layouts byte for byte.
package randsrc

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// System returns the operating system CSPRNG.
func System() io.Reader {
	return rand.Reader
}

// seeded is a ChaCha20 keystream keyed by a hash of the seed.
type seeded struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewSeeded returns a deterministic cryptographically strong stream for
// seed. It is safe for concurrent use, but concurrent readers observe a
// scheduling-dependent split of the stream.
func NewSeeded(seed []byte) io.Reader {
	key := sha256.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)

	// cannot fail: key and nonce sizes are fixed
	stream, _ := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	return &seeded{stream: stream}
}

func (s *seeded) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(p)
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}
