// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package slice encodes payloads into chained runs of blocks.
//
// A payload P is framed as uvarint(len(P)) || P, zero padded and cut into
// chunks of Capacity()-indexSize bytes. Every chunk gets a big-endian chain
// field holding its position in the slice; the top bit of the field marks
// the last chunk. Chunk and chain field are encrypted with the block cipher
// and then ElGamal encoded under a key derived from the slice key and the
// physical block index:
//
//	sym   = derive(["symmetric"], slice key)
//	nonce = derive(["nonce", index], slice key)
//	x     = derive(["elgamal", index], slice key) mod q
//
// Decoding stops at the last-chunk marker, so no length is stored outside
// the slice.
package slice

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"sync/atomic"

	"github.com/MKhiriev/go-pol-safe/internal/blockstore"
	"github.com/MKhiriev/go-pol-safe/internal/group"
	"github.com/MKhiriev/go-pol-safe/internal/locator"
	"github.com/MKhiriev/go-pol-safe/internal/primitives"
)

// Placement returns the physical block of chunk i of a slice.
type Placement func(i int) (int, error)

// Codec reads and writes slices in one block store.
type Codec struct {
	group     *group.Group
	cipher    primitives.BlockCipher
	kd        primitives.KeyDeriver
	blocks    *blockstore.Store
	indexSize int
	sliceSize int

	probes atomic.Uint64
}

// NewCodec returns a codec. indexSize is the chain field width in bytes (1,
// 2 or 4); chunk counts are rounded up to multiples of sliceSize.
func NewCodec(gr *group.Group, cipher primitives.BlockCipher, kd primitives.KeyDeriver,
	blocks *blockstore.Store, indexSize, sliceSize int) (*Codec, error) {
	switch indexSize {
	case 1, 2, 4:
	default:
		return nil, fmt.Errorf("%w: block index size %d", ErrLayout, indexSize)
	}
	if sliceSize < 1 {
		return nil, fmt.Errorf("%w: slice size %d", ErrLayout, sliceSize)
	}
	if gr.Capacity() <= indexSize {
		return nil, fmt.Errorf("%w: %d bytes per block leave no room next to a %d byte index",
			ErrLayout, gr.Capacity(), indexSize)
	}

	return &Codec{
		group:     gr,
		cipher:    cipher,
		kd:        kd,
		blocks:    blocks,
		indexSize: indexSize,
		sliceSize: sliceSize,
	}, nil
}

// ChunkSize is the number of payload bytes one block carries.
func (c *Codec) ChunkSize() int { return c.group.Capacity() - c.indexSize }

// MaxChunks is the largest chunk count the chain field can address.
func (c *Codec) MaxChunks() int {
	return 1 << (8*c.indexSize - 1)
}

// ChunkCount is the number of blocks a payload of payloadLen bytes takes.
func (c *Codec) ChunkCount(payloadLen int) int {
	frameLen := uvarintLen(payloadLen) + payloadLen
	n := (frameLen + c.ChunkSize() - 1) / c.ChunkSize()
	if rem := n % c.sliceSize; rem != 0 {
		n += c.sliceSize - rem
	}
	return n
}

// Probes is the number of block decode attempts made so far.
func (c *Codec) Probes() uint64 { return c.probes.Load() }

// Store writes payload under key at the blocks chosen by place and returns
// them. Nothing is written unless every block could be encoded.
func (c *Codec) Store(key, payload []byte, place Placement) ([]int, error) {
	n := c.ChunkCount(len(payload))
	if n > c.MaxChunks() {
		return nil, fmt.Errorf("%w: %d byte payload needs %d blocks, chain field allows %d",
			ErrSafeFull, len(payload), n, c.MaxChunks())
	}

	indices := make([]int, n)
	for i := range indices {
		idx, err := place(i)
		if err != nil {
			if errors.Is(err, locator.ErrNoCapacity) {
				return nil, fmt.Errorf("%w: %w", ErrSafeFull, err)
			}
			return nil, err
		}
		indices[i] = idx
	}

	frame := make([]byte, n*c.ChunkSize())
	off := binary.PutUvarint(frame, uint64(len(payload)))
	copy(frame[off:], payload)

	symKey, err := c.symmetricKey(key)
	if err != nil {
		return nil, err
	}

	encoded := make([]blockstore.Block, n)
	for i, idx := range indices {
		pt := make([]byte, 0, c.group.Capacity())
		pt = append(pt, frame[i*c.ChunkSize():(i+1)*c.ChunkSize()]...)
		pt = append(pt, c.chainField(i, i == n-1)...)

		if encoded[i], err = c.encodeBlock(key, symKey, idx, pt); err != nil {
			return nil, err
		}
	}

	for i, idx := range indices {
		if err = c.blocks.Set(idx, encoded[i]); err != nil {
			return nil, err
		}
	}
	return indices, nil
}

// Probe reports whether the first block of the slice at place opens under
// key. It never fails; every problem counts as absent.
func (c *Codec) Probe(key []byte, place Placement) bool {
	idx, err := place(0)
	if err != nil {
		return false
	}
	symKey, err := c.symmetricKey(key)
	if err != nil {
		return false
	}
	pt, err := c.decodeBlock(key, symKey, idx)
	if err != nil {
		return false
	}
	pos, _ := c.parseChain(pt[c.ChunkSize():])
	return pos == 0
}

// Load reads the slice at place under key and returns its payload and
// blocks. Every failure is ErrSliceAbsent.
func (c *Codec) Load(key []byte, place Placement) ([]byte, []int, error) {
	symKey, err := c.symmetricKey(key)
	if err != nil {
		return nil, nil, ErrSliceAbsent
	}

	var (
		frame   []byte
		indices []int
	)
	for i := 0; ; i++ {
		if i >= c.MaxChunks() {
			return nil, nil, ErrSliceAbsent
		}
		idx, err := place(i)
		if err != nil {
			return nil, nil, ErrSliceAbsent
		}
		pt, err := c.decodeBlock(key, symKey, idx)
		if err != nil {
			return nil, nil, ErrSliceAbsent
		}

		pos, last := c.parseChain(pt[c.ChunkSize():])
		if pos != i {
			return nil, nil, ErrSliceAbsent
		}
		frame = append(frame, pt[:c.ChunkSize()]...)
		indices = append(indices, idx)
		if last {
			break
		}
	}

	size, off := binary.Uvarint(frame)
	if off <= 0 || size > uint64(len(frame)-off) {
		return nil, nil, ErrSliceAbsent
	}
	payload := make([]byte, size)
	copy(payload, frame[off:])
	return payload, indices, nil
}

// Trash overwrites blocks with fresh junk.
func (c *Codec) Trash(indices []int) error {
	for _, idx := range indices {
		b, err := c.group.Junk()
		if err != nil {
			return err
		}
		if err = c.blocks.Set(idx, b); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) encodeBlock(key, symKey []byte, idx int, pt []byte) (blockstore.Block, error) {
	nonce, err := c.kd.Derive([][]byte{[]byte("nonce"), indexTag(idx)}, key, c.cipher.NonceSize())
	if err != nil {
		return blockstore.Block{}, fmt.Errorf("derive nonce: %w", err)
	}
	ct, err := c.cipher.Encrypt(symKey, nonce, pt)
	if err != nil {
		return blockstore.Block{}, err
	}

	x, err := c.privateKey(key, idx)
	if err != nil {
		return blockstore.Block{}, err
	}
	gct, err := c.group.BlindEncode(ct, c.group.PublicKey(x))
	if err != nil {
		return blockstore.Block{}, err
	}
	return c.group.ToBlock(gct), nil
}

func (c *Codec) decodeBlock(key, symKey []byte, idx int) ([]byte, error) {
	c.probes.Add(1)

	b, err := c.blocks.Get(idx)
	if err != nil {
		return nil, err
	}
	gct, err := c.group.FromBlock(b)
	if err != nil {
		return nil, err
	}
	x, err := c.privateKey(key, idx)
	if err != nil {
		return nil, err
	}
	ct, err := c.group.Decode(gct, x)
	if err != nil {
		return nil, err
	}

	nonce, err := c.kd.Derive([][]byte{[]byte("nonce"), indexTag(idx)}, key, c.cipher.NonceSize())
	if err != nil {
		return nil, err
	}
	return c.cipher.Decrypt(symKey, nonce, ct)
}

func (c *Codec) symmetricKey(key []byte) ([]byte, error) {
	k, err := c.kd.Derive([][]byte{[]byte("symmetric")}, key, c.cipher.KeySize())
	if err != nil {
		return nil, fmt.Errorf("derive symmetric key: %w", err)
	}
	return k, nil
}

func (c *Codec) privateKey(key []byte, idx int) (*big.Int, error) {
	seed, err := c.kd.Derive([][]byte{[]byte("elgamal"), indexTag(idx)}, key, c.group.Width()+8)
	if err != nil {
		return nil, fmt.Errorf("derive block key: %w", err)
	}
	return c.group.PrivateKey(seed), nil
}

const lastChunk = 0x80

func (c *Codec) chainField(pos int, last bool) []byte {
	f := make([]byte, 8)
	binary.BigEndian.PutUint64(f, uint64(pos))
	f = f[8-c.indexSize:]
	if last {
		f[0] |= lastChunk
	}
	return f
}

func (c *Codec) parseChain(f []byte) (int, bool) {
	last := f[0]&lastChunk != 0
	var v uint64
	for i, b := range f {
		if i == 0 {
			b &^= lastChunk
		}
		v = v<<8 | uint64(b)
	}
	return int(v), last
}

func indexTag(idx int) []byte {
	return []byte(strconv.Itoa(idx))
}

func uvarintLen(n int) int {
	var buf [binary.MaxVarintLen64]byte
	return binary.PutUvarint(buf[:], uint64(n))
}
