// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package group

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/MKhiriev/go-pol-safe/internal/workers"
)

// primeRounds is the Miller-Rabin round count used for validation.
const primeRounds = 20

// Params are the safe's group parameters: a safe prime P = 2Q+1 and a
// generator G of the order-Q subgroup of quadratic residues mod P.
type Params struct {
	P *big.Int
	G *big.Int
}

// ParamsFromBytes parses the two big-endian "group-params" strings.
func ParamsFromBytes(raw [][]byte) (Params, error) {
	if len(raw) != 2 {
		return Params{}, fmt.Errorf("%w: want 2 group parameters, got %d", ErrInvalidParams, len(raw))
	}
	return Params{
		P: new(big.Int).SetBytes(raw[0]),
		G: new(big.Int).SetBytes(raw[1]),
	}, nil
}

// Bytes encodes p as the two "group-params" strings.
func (p Params) Bytes() [][]byte {
	return [][]byte{p.P.Bytes(), p.G.Bytes()}
}

// BitsFor returns the modulus size needed to carry bytesPerBlock plaintext
// bytes per group element.
func BitsFor(bytesPerBlock int) int {
	return 8*bytesPerBlock + 2
}

// Validate checks that P is a safe prime and G generates the quadratic
// residue subgroup.
func (p Params) Validate() error {
	if p.P == nil || p.G == nil || p.P.BitLen() < 16 {
		return fmt.Errorf("%w: modulus too small", ErrInvalidParams)
	}
	if !p.P.ProbablyPrime(primeRounds) {
		return fmt.Errorf("%w: modulus is not prime", ErrInvalidParams)
	}

	q := new(big.Int).Rsh(p.P, 1)
	if !q.ProbablyPrime(primeRounds) {
		return fmt.Errorf("%w: modulus is not a safe prime", ErrInvalidParams)
	}

	one := big.NewInt(1)
	if p.G.Cmp(one) <= 0 || p.G.Cmp(p.P) >= 0 {
		return fmt.Errorf("%w: generator out of range", ErrInvalidParams)
	}
	if new(big.Int).Exp(p.G, q, p.P).Cmp(one) != 0 {
		return fmt.Errorf("%w: generator is not a quadratic residue", ErrInvalidParams)
	}
	return nil
}

// errFound stops the other searchers once a safe prime was found.
var errFound = errors.New("safe prime found")

// GenerateParams searches for a safe prime of exactly bits bits with
// nworkers concurrent searchers and returns it with generator 4.
// The search honours ctx.
func GenerateParams(ctx context.Context, bits int, rnd io.Reader, nworkers int) (Params, error) {
	if bits < 16 {
		return Params{}, fmt.Errorf("%w: %d bit modulus", ErrInvalidParams, bits)
	}

	pool := workers.NewPool(nworkers, workers.WithChunkSize(1))

	var (
		mu    sync.Mutex
		found *big.Int
	)
	err := pool.Run(ctx, pool.Size(), func(ctx context.Context, _ int) error {
		for ctx.Err() == nil {
			q, err := rand.Prime(rnd, bits-1)
			if err != nil {
				return fmt.Errorf("draw prime: %w", err)
			}

			p := new(big.Int).Lsh(q, 1)
			p.Add(p, big.NewInt(1))
			if p.BitLen() != bits || !p.ProbablyPrime(primeRounds) {
				continue
			}

			mu.Lock()
			if found == nil {
				found = p
			}
			mu.Unlock()
			return errFound
		}
		return ctx.Err()
	})
	if err != nil && !errors.Is(err, errFound) {
		return Params{}, fmt.Errorf("generate group parameters: %w", err)
	}
	if found == nil {
		return Params{}, fmt.Errorf("generate group parameters: %w", context.Canceled)
	}

	// 4 = 2^2 is a residue, and any residue other than 1 generates the
	// prime-order subgroup.
	return Params{P: found, G: big.NewInt(4)}, nil
}
