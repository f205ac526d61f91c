// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package primitives

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockCipher_RoundTripAndLengthPreserving(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{name: "aes-128", params: Params{"type": CipherAESCTR, "bits": 128}},
		{name: "aes-256", params: Params{"type": CipherAESCTR, "bits": uint16(256)}},
		{name: "chacha20", params: Params{"type": CipherChaCha20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewBlockCipher(tt.params)
			require.NoError(t, err)

			key := bytes.Repeat([]byte{0x2A}, c.KeySize())
			nonce := bytes.Repeat([]byte{0x01}, c.NonceSize())
			plain := []byte("attack at dawn, bring snacks")

			ct, err := c.Encrypt(key, nonce, plain)
			require.NoError(t, err)
			assert.Len(t, ct, len(plain))
			assert.NotEqual(t, plain, ct)

			back, err := c.Decrypt(key, nonce, ct)
			require.NoError(t, err)
			assert.Equal(t, plain, back)
		})
	}
}

func TestBlockCipher_WrongKeyLength(t *testing.T) {
	c, err := NewBlockCipher(Params{"type": CipherAESCTR, "bits": 256})
	require.NoError(t, err)

	_, err = c.Encrypt(make([]byte, 16), make([]byte, c.NonceSize()), []byte("x"))
	assert.ErrorIs(t, err, ErrPrimitive)
}

func TestNewBlockCipher_BadConfig(t *testing.T) {
	_, err := NewBlockCipher(Params{"type": "rot13"})
	assert.ErrorIs(t, err, ErrConfig)

	_, err = NewBlockCipher(Params{"type": CipherAESCTR, "bits": 100})
	assert.ErrorIs(t, err, ErrConfig)

	_, err = NewBlockCipher(Params{})
	assert.ErrorIs(t, err, ErrConfig)
}

func TestKeyStretcher_Deterministic(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		cost   int
	}{
		{name: "argon2", params: Params{"type": StretchArgon2, "memory": 64, "threads": 1}, cost: 1},
		{name: "scrypt", params: Params{"type": StretchScrypt, "r": 8, "p": 1}, cost: 4},
		{name: "pbkdf2", params: Params{"type": StretchPBKDF2}, cost: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewKeyStretcher(tt.params)
			require.NoError(t, err)

			salt := bytes.Repeat([]byte{0xAB}, 16)
			k1, err := s.Stretch([]byte("correct horse"), salt, tt.cost)
			require.NoError(t, err)
			k2, err := s.Stretch([]byte("correct horse"), salt, tt.cost)
			require.NoError(t, err)
			k3, err := s.Stretch([]byte("correct horse"), bytes.Repeat([]byte{0xAC}, 16), tt.cost)
			require.NoError(t, err)

			assert.Len(t, k1, 32)
			assert.Equal(t, k1, k2)
			assert.NotEqual(t, k1, k3)
		})
	}
}

func TestKeyStretcher_RejectsZeroCost(t *testing.T) {
	s, err := NewKeyStretcher(Params{"type": StretchPBKDF2})
	require.NoError(t, err)

	_, err = s.Stretch([]byte("pw"), []byte("salt"), 0)
	assert.ErrorIs(t, err, ErrPrimitive)
}

func TestKeyDeriver_OutputLengthAndSeparation(t *testing.T) {
	for _, typ := range []string{DeriveHKDFSHA256, DeriveBLAKE2b} {
		t.Run(typ, func(t *testing.T) {
			d, err := NewKeyDeriver(Params{"type": typ})
			require.NoError(t, err)

			salt := []byte("salt")
			for _, n := range []int{1, 32, 100} {
				out, err := d.Derive([][]byte{[]byte("a")}, salt, n)
				require.NoError(t, err)
				assert.Len(t, out, n)
			}

			a, err := d.Derive([][]byte{[]byte("ab"), []byte("c")}, salt, 32)
			require.NoError(t, err)
			b, err := d.Derive([][]byte{[]byte("a"), []byte("bc")}, salt, 32)
			require.NoError(t, err)
			again, err := d.Derive([][]byte{[]byte("ab"), []byte("c")}, salt, 32)
			require.NoError(t, err)
			otherSalt, err := d.Derive([][]byte{[]byte("ab"), []byte("c")}, []byte("pepper"), 32)
			require.NoError(t, err)

			assert.NotEqual(t, a, b)
			assert.Equal(t, a, again)
			assert.NotEqual(t, a, otherSalt)
		})
	}
}

func TestKeyDeriver_LongSaltIsAccepted(t *testing.T) {
	d, err := NewKeyDeriver(Params{"type": DeriveBLAKE2b})
	require.NoError(t, err)

	out, err := d.Derive([][]byte{[]byte("x")}, bytes.Repeat([]byte{1}, 200), 16)
	require.NoError(t, err)
	assert.Len(t, out, 16)
}

func TestEnvelope_SealUnseal(t *testing.T) {
	e, err := NewEnvelope(Params{"type": EnvelopeNaClBox})
	require.NoError(t, err)

	pub, priv, err := e.KeyGen(rand.Reader)
	require.NoError(t, err)

	sealed, err := e.Seal(rand.Reader, pub, []byte("pending entry"))
	require.NoError(t, err)

	msg, err := e.Unseal(priv, sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("pending entry"), msg)
}

func TestEnvelope_UnsealWithOtherKeyFails(t *testing.T) {
	e, err := NewEnvelope(Params{"type": EnvelopeNaClBox})
	require.NoError(t, err)

	pub, _, err := e.KeyGen(rand.Reader)
	require.NoError(t, err)
	_, otherPriv, err := e.KeyGen(rand.Reader)
	require.NoError(t, err)

	sealed, err := e.Seal(rand.Reader, pub, []byte("pending entry"))
	require.NoError(t, err)

	_, err = e.Unseal(otherPriv, sealed)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestEnvelope_CorruptedFails(t *testing.T) {
	e, err := NewEnvelope(Params{"type": EnvelopeNaClBox})
	require.NoError(t, err)

	pub, priv, err := e.KeyGen(rand.Reader)
	require.NoError(t, err)
	sealed, err := e.Seal(rand.Reader, pub, []byte("pending entry"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xFF
	_, err = e.Unseal(priv, sealed)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestNewConfig_BuildsSuite(t *testing.T) {
	opts := DefaultOptions()
	opts.Argon2Memory = 64

	cfg, err := NewConfig(rand.Reader, opts)
	require.NoError(t, err)

	s, err := NewSuite(cfg)
	require.NoError(t, err)
	assert.Len(t, s.Salt(), DefaultSaltSize)
	assert.Equal(t, 1, s.Cost())
	assert.Equal(t, 32, s.Cipher.KeySize())
	assert.Equal(t, cfg, s.Config())
}

func TestNewSuite_MissingSalt(t *testing.T) {
	_, err := NewSuite(Config{
		BlockCipher:   Params{"type": CipherChaCha20},
		KeyStretching: Params{"type": StretchPBKDF2, "cost": 1},
		KeyDerivation: Params{"type": DeriveHKDFSHA256},
		Envelope:      Params{"type": EnvelopeNaClBox},
	})
	assert.ErrorIs(t, err, ErrConfig)
}

func TestParams_IntAcceptsDecoderWidths(t *testing.T) {
	p := Params{"a": int8(3), "b": uint16(300), "c": int64(-1), "d": "x"}

	for key, want := range map[string]int{"a": 3, "b": 300, "c": -1} {
		got, err := p.Int(key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.Int("d")
	assert.ErrorIs(t, err, ErrConfig)

	got, err := p.IntOr("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
