// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package group implements the ElGamal arithmetic that hides slice data in
// blocks.
//
// Every block is a universal re-encryption ciphertext: two ElGamal pairs over
// the quadratic residues modulo a safe prime,
//
//	(a, b) = (M * y^k0, g^k0)    the message M under public key y
//	(c, d) = (y^k1,     g^k1)    an encryption of 1 under y
//
// The second pair lets anyone re-blind the first without knowing y, so junk
// blocks (four random residues) and payload blocks are rerandomized by the
// same operation and stay indistinguishable across saved copies.
package group

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MKhiriev/go-pol-safe/internal/blockstore"
)

var one = big.NewInt(1)

// Ciphertext is a block in group form: a, b, c, d as described above.
type Ciphertext [blockstore.FieldsPerBlock]*big.Int

// Group performs arithmetic for one safe.
type Group struct {
	p, q, g  *big.Int
	width    int
	capacity int
	rand     io.Reader
}

// New validates params and returns a group whose blocks each carry
// bytesPerBlock plaintext bytes. rand feeds every fresh exponent.
func New(params Params, bytesPerBlock int, rnd io.Reader) (*Group, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	q := new(big.Int).Rsh(params.P, 1)
	if bytesPerBlock < 1 || q.BitLen() <= 8*bytesPerBlock {
		return nil, fmt.Errorf("%w: `bytes-per-block' %d larger than group allows", ErrInvalidParams, bytesPerBlock)
	}

	return &Group{
		p:        new(big.Int).Set(params.P),
		q:        q,
		g:        new(big.Int).Set(params.G),
		width:    (params.P.BitLen() + 7) / 8,
		capacity: bytesPerBlock,
		rand:     rnd,
	}, nil
}

// Width is the byte length of every serialized group element.
func (gr *Group) Width() int { return gr.width }

// Capacity is the number of plaintext bytes one block carries.
func (gr *Group) Capacity() int { return gr.capacity }

// Mul returns x*y mod p.
func (gr *Group) Mul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, gr.p)
}

// Exp returns x^e mod p.
func (gr *Group) Exp(x, e *big.Int) *big.Int {
	return new(big.Int).Exp(x, e, gr.p)
}

// PrivateKey maps key material to an exponent in [1, q).
func (gr *Group) PrivateKey(seed []byte) *big.Int {
	x := new(big.Int).SetBytes(seed)
	x.Mod(x, gr.q)
	if x.Sign() == 0 {
		x.SetInt64(1)
	}
	return x
}

// PublicKey returns g^x.
func (gr *Group) PublicKey(x *big.Int) *big.Int {
	return gr.Exp(gr.g, x)
}

// RandomExponent draws a uniform exponent in [1, q).
func (gr *Group) RandomExponent() (*big.Int, error) {
	k, err := rand.Int(gr.rand, new(big.Int).Sub(gr.q, one))
	if err != nil {
		return nil, fmt.Errorf("draw exponent: %w", err)
	}
	return k.Add(k, one), nil
}

// randomResidue draws a uniform quadratic residue: r^2 for uniform r in
// [1, p). Every residue has exactly two roots, so the result is uniform.
func (gr *Group) randomResidue() (*big.Int, error) {
	r, err := rand.Int(gr.rand, new(big.Int).Sub(gr.p, one))
	if err != nil {
		return nil, fmt.Errorf("draw residue: %w", err)
	}
	r.Add(r, one)
	return gr.Mul(r, r), nil
}

// BlindEncode encrypts exactly Capacity() plaintext bytes under pub with
// fresh randomness.
func (gr *Group) BlindEncode(plaintext []byte, pub *big.Int) (Ciphertext, error) {
	m, err := gr.embed(plaintext)
	if err != nil {
		return Ciphertext{}, err
	}

	k0, err := gr.RandomExponent()
	if err != nil {
		return Ciphertext{}, err
	}
	k1, err := gr.RandomExponent()
	if err != nil {
		return Ciphertext{}, err
	}

	return Ciphertext{
		gr.Mul(m, gr.Exp(pub, k0)),
		gr.Exp(gr.g, k0),
		gr.Exp(pub, k1),
		gr.Exp(gr.g, k1),
	}, nil
}

// Decode recovers the plaintext of ct with private key x. It fails with
// ErrNotThisKey unless ct was produced under g^x.
func (gr *Group) Decode(ct Ciphertext, x *big.Int) ([]byte, error) {
	if gr.Exp(ct[3], x).Cmp(ct[2]) != 0 {
		return nil, ErrNotThisKey
	}

	shared := gr.Exp(ct[1], x)
	inv := new(big.Int).ModInverse(shared, gr.p)
	if inv == nil {
		return nil, ErrNotThisKey
	}
	return gr.extract(gr.Mul(ct[0], inv))
}

// Rerandomize returns a bitwise different ciphertext that decodes to the
// same plaintext under the same key. It needs neither the plaintext nor any
// key, and treats junk the same way as payload.
func (gr *Group) Rerandomize(ct Ciphertext) (Ciphertext, error) {
	s0, err := gr.RandomExponent()
	if err != nil {
		return Ciphertext{}, err
	}
	s1, err := gr.RandomExponent()
	if err != nil {
		return Ciphertext{}, err
	}
	return gr.RerandomizeWith(ct, s0, s1), nil
}

// RerandomizeWith is Rerandomize with caller supplied exponents, so that
// randomness can be drawn sequentially and the exponentiations done in
// parallel.
func (gr *Group) RerandomizeWith(ct Ciphertext, s0, s1 *big.Int) Ciphertext {
	return Ciphertext{
		gr.Mul(ct[0], gr.Exp(ct[2], s0)),
		gr.Mul(ct[1], gr.Exp(ct[3], s0)),
		gr.Exp(ct[2], s1),
		gr.Exp(ct[3], s1),
	}
}

// Junk returns a block of four independent random residues. It implements
// blockstore.JunkSource.
func (gr *Group) Junk() (blockstore.Block, error) {
	var ct Ciphertext
	for i := range ct {
		r, err := gr.randomResidue()
		if err != nil {
			return blockstore.Block{}, err
		}
		ct[i] = r
	}
	return gr.ToBlock(ct), nil
}

// ToBlock serializes ct into fixed-width big-endian fields.
func (gr *Group) ToBlock(ct Ciphertext) blockstore.Block {
	var b blockstore.Block
	for i, x := range ct {
		b[i] = x.FillBytes(make([]byte, gr.width))
	}
	return b
}

// FromBlock parses a block. Fields must be in [1, p).
func (gr *Group) FromBlock(b blockstore.Block) (Ciphertext, error) {
	var ct Ciphertext
	for i, f := range b {
		x := new(big.Int).SetBytes(f)
		if x.Sign() == 0 || x.Cmp(gr.p) >= 0 {
			return Ciphertext{}, fmt.Errorf("%w: block field %d not a group element", ErrInvalidParams, i)
		}
		ct[i] = x
	}
	return ct, nil
}

// embed maps plaintext to a quadratic residue. With p = 3 mod 4, -1 is a
// non-residue, so exactly one of M and p-M is a residue.
func (gr *Group) embed(plaintext []byte) (*big.Int, error) {
	if len(plaintext) != gr.capacity {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrPlaintextSize, len(plaintext), gr.capacity)
	}

	m := new(big.Int).SetBytes(plaintext)
	m.Add(m, one)
	if big.Jacobi(m, gr.p) != 1 {
		m.Sub(gr.p, m)
	}
	return m, nil
}

func (gr *Group) extract(m *big.Int) ([]byte, error) {
	if m.Cmp(gr.q) > 0 {
		m = new(big.Int).Sub(gr.p, m)
	}
	m.Sub(m, one)
	if m.Sign() < 0 || m.BitLen() > 8*gr.capacity {
		return nil, ErrNotThisKey
	}
	return m.FillBytes(make([]byte, gr.capacity)), nil
}
