// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package primitives

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Supported "key-stretching" types.
const (
	StretchArgon2 = "argon2"
	StretchScrypt = "scrypt"
	StretchPBKDF2 = "pbkdf2"
)

const stretchedKeyLen = 32

// NewKeyStretcher builds the stretcher described by params. The cost passed
// to Stretch means:
//   - argon2: time cost (iterations); "memory" (KiB) and "threads" are fixed
//     per safe;
//   - scrypt: log2 of N; "r" and "p" are fixed per safe;
//   - pbkdf2: HMAC-SHA256 iteration count.
func NewKeyStretcher(params Params) (KeyStretcher, error) {
	typ, err := params.Type()
	if err != nil {
		return nil, err
	}

	switch typ {
	case StretchArgon2:
		memory, err := params.IntOr("memory", 64*1024) // 64 MiB
		if err != nil {
			return nil, err
		}
		threads, err := params.IntOr("threads", 4)
		if err != nil {
			return nil, err
		}
		if memory < 8 || threads < 1 || threads > 255 {
			return nil, fmt.Errorf("%w: argon2 memory=%d threads=%d", ErrConfig, memory, threads)
		}
		return &argon2Stretcher{memory: uint32(memory), threads: uint8(threads), params: params}, nil
	case StretchScrypt:
		r, err := params.IntOr("r", 8)
		if err != nil {
			return nil, err
		}
		p, err := params.IntOr("p", 1)
		if err != nil {
			return nil, err
		}
		if r < 1 || p < 1 {
			return nil, fmt.Errorf("%w: scrypt r=%d p=%d", ErrConfig, r, p)
		}
		return &scryptStretcher{r: r, p: p, params: params}, nil
	case StretchPBKDF2:
		return &pbkdf2Stretcher{params: params}, nil
	default:
		return nil, fmt.Errorf("%w: unknown key stretching %q", ErrConfig, typ)
	}
}

type argon2Stretcher struct {
	memory  uint32
	threads uint8
	params  Params
}

func (s *argon2Stretcher) Params() Params { return s.params }

func (s *argon2Stretcher) Stretch(password, salt []byte, cost int) ([]byte, error) {
	if cost < 1 {
		return nil, fmt.Errorf("%w: argon2 time cost %d", ErrPrimitive, cost)
	}
	return argon2.IDKey(password, salt, uint32(cost), s.memory, s.threads, stretchedKeyLen), nil
}

type scryptStretcher struct {
	r, p   int
	params Params
}

func (s *scryptStretcher) Params() Params { return s.params }

func (s *scryptStretcher) Stretch(password, salt []byte, cost int) ([]byte, error) {
	if cost < 1 || cost > 30 {
		return nil, fmt.Errorf("%w: scrypt log2(N) %d", ErrPrimitive, cost)
	}
	key, err := scrypt.Key(password, salt, 1<<cost, s.r, s.p, stretchedKeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %w", ErrPrimitive, err)
	}
	return key, nil
}

type pbkdf2Stretcher struct {
	params Params
}

func (s *pbkdf2Stretcher) Params() Params { return s.params }

func (s *pbkdf2Stretcher) Stretch(password, salt []byte, cost int) ([]byte, error) {
	if cost < 1 {
		return nil, fmt.Errorf("%w: pbkdf2 iterations %d", ErrPrimitive, cost)
	}
	return pbkdf2.Key(password, salt, cost, stretchedKeyLen, sha256.New), nil
}
