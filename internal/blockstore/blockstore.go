// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package blockstore owns the fixed array of physical blocks of a safe.
//
// It is a flat, bounds-checked, fixed-size array and nothing else: it knows
// neither which blocks carry payload nor how blocks are encrypted. Payload
// blocks and junk blocks look exactly alike at this level.
package blockstore

import (
	"errors"
	"fmt"
	"slices"
)

// FieldsPerBlock is the number of byte strings in one block.
const FieldsPerBlock = 4

var (
	// ErrIndexOutOfRange is returned for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("block index out of range")

	// ErrBlockShape is returned for a block whose fields do not all have the
	// store's field width.
	ErrBlockShape = errors.New("malformed block")
)

// Block is the physical unit of storage: four byte strings of equal width.
type Block [FieldsPerBlock][]byte

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	var c Block
	for i := range b {
		c[i] = slices.Clone(b[i])
	}
	return c
}

// JunkSource produces blocks that are indistinguishable from payload blocks
// to anyone without a key.
type JunkSource interface {
	Junk() (Block, error)
}

// Store is the ordered sequence of exactly Len() blocks. Its length never
// changes. Store does no locking; the owning safe serializes mutations.
type Store struct {
	width  int
	blocks []Block
}

// NewRandom returns a store of n blocks, each drawn independently from src.
// This is the "all junk" state of an empty safe.
func NewRandom(n, width int, src JunkSource) (*Store, error) {
	if n < 0 || width < 1 {
		return nil, fmt.Errorf("%w: n=%d width=%d", ErrBlockShape, n, width)
	}

	s := &Store{width: width, blocks: make([]Block, n)}
	for i := range s.blocks {
		b, err := src.Junk()
		if err != nil {
			return nil, fmt.Errorf("draw junk block %d: %w", i, err)
		}
		if err = s.check(b); err != nil {
			return nil, err
		}
		s.blocks[i] = b
	}
	return s, nil
}

// FromBlocks wraps blocks read from a safe file. Every field must be
// exactly width bytes long.
func FromBlocks(width int, blocks []Block) (*Store, error) {
	s := &Store{width: width, blocks: make([]Block, len(blocks))}
	for i, b := range blocks {
		if err := s.check(b); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		s.blocks[i] = b.Clone()
	}
	return s, nil
}

// Len returns the number of blocks.
func (s *Store) Len() int { return len(s.blocks) }

// Width returns the length of every block field in bytes.
func (s *Store) Width() int { return s.width }

// Get returns a copy of the block at index.
func (s *Store) Get(index int) (Block, error) {
	if index < 0 || index >= len(s.blocks) {
		return Block{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.blocks))
	}
	return s.blocks[index].Clone(), nil
}

// Set replaces the block at index.
func (s *Store) Set(index int, b Block) error {
	if index < 0 || index >= len(s.blocks) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.blocks))
	}
	if err := s.check(b); err != nil {
		return err
	}
	s.blocks[index] = b.Clone()
	return nil
}

// Blocks returns a deep copy of all blocks in order.
func (s *Store) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = b.Clone()
	}
	return out
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	return &Store{width: s.width, blocks: s.Blocks()}
}

func (s *Store) check(b Block) error {
	for i, f := range b {
		if len(f) != s.width {
			return fmt.Errorf("%w: field %d is %d bytes, want %d", ErrBlockShape, i, len(f), s.width)
		}
	}
	return nil
}
