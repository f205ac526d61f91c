// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package primitives

import (
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// Supported "envelope" types.
const (
	EnvelopeNaClBox = "nacl-box"
)

const naclKeySize = 32

// NewEnvelope builds the envelope described by params.
func NewEnvelope(params Params) (Envelope, error) {
	typ, err := params.Type()
	if err != nil {
		return nil, err
	}

	switch typ {
	case EnvelopeNaClBox:
		return &naclEnvelope{params: params}, nil
	default:
		return nil, fmt.Errorf("%w: unknown envelope %q", ErrConfig, typ)
	}
}

// naclEnvelope seals with anonymous curve25519/xsalsa20/poly1305 boxes.
type naclEnvelope struct {
	params Params
}

func (e *naclEnvelope) Params() Params { return e.params }

func (e *naclEnvelope) KeyGen(rand io.Reader) ([]byte, []byte, error) {
	pub, priv, err := box.GenerateKey(rand)
	if err != nil {
		return nil, nil, fmt.Errorf("generate envelope key pair: %w", err)
	}
	return pub[:], priv[:], nil
}

func (e *naclEnvelope) Seal(rand io.Reader, public, message []byte) ([]byte, error) {
	if len(public) != naclKeySize {
		return nil, fmt.Errorf("%w: envelope public key is %d bytes, want %d", ErrPrimitive, len(public), naclKeySize)
	}

	var pub [naclKeySize]byte
	copy(pub[:], public)

	sealed, err := box.SealAnonymous(nil, message, &pub, rand)
	if err != nil {
		return nil, fmt.Errorf("seal envelope: %w", err)
	}
	return sealed, nil
}

func (e *naclEnvelope) Unseal(private, sealed []byte) ([]byte, error) {
	if len(private) != naclKeySize {
		return nil, fmt.Errorf("%w: envelope private key is %d bytes, want %d", ErrPrimitive, len(private), naclKeySize)
	}

	var priv, pub [naclKeySize]byte
	copy(priv[:], private)
	derived, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	copy(pub[:], derived)

	message, ok := box.OpenAnonymous(nil, sealed, &pub, &priv)
	if !ok {
		return nil, ErrAuthenticationFailed
	}
	return message, nil
}
