// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locator maps capability keys to physical block positions.
//
// A key and a slice kind seed a stream of 32-bit words:
//
//	word stream = derive([kind, "stream", "0"], key, 64) ||
//	              derive([kind, "stream", "1"], key, 64) || ...
//
// Each word is masked to the bit length of n-1 and words >= n are dropped,
// so indices are uniform in [0, n) without modulo bias. The stream is
// prefix stable: asking for more indices never changes the earlier ones.
package locator

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/MKhiriev/go-pol-safe/internal/primitives"
	"github.com/MKhiriev/go-pol-safe/models"
)

// ErrNoCapacity is returned when no (more) blocks can be located, e.g. for a
// safe without blocks.
var ErrNoCapacity = errors.New("no block capacity left")

const (
	streamChunkLen = 64
	wordLen        = 4
)

// Locator places slices of one safe.
type Locator struct {
	kd   primitives.KeyDeriver
	n    int
	mask uint32
}

// New returns a locator over nBlocks blocks.
func New(kd primitives.KeyDeriver, nBlocks int) *Locator {
	var mask uint32
	if nBlocks > 1 {
		mask = uint32(1)<<bits.Len(uint(nBlocks-1)) - 1
	}
	return &Locator{kd: kd, n: nBlocks, mask: mask}
}

// Len is the number of blocks indices are drawn from.
func (l *Locator) Len() int { return l.n }

// CandidateIndices returns the first count indices of the stream of key and
// kind. Indices may repeat. The result depends only on the inputs.
func (l *Locator) CandidateIndices(key []byte, kind models.SliceKind, count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative candidate count %d", count)
	}
	if l.n == 0 {
		if count == 0 {
			return []int{}, nil
		}
		return nil, ErrNoCapacity
	}

	s := l.stream(key, kind)
	out := make([]int, 0, count)
	for len(out) < count {
		i, err := s.next()
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Walk returns the distinct indices of the stream of key and kind, skipping
// everything in reserved.
func (l *Locator) Walk(key []byte, kind models.SliceKind, reserved []int) *Walk {
	w := &Walk{
		stream:   l.stream(key, kind),
		skip:     make(map[int]struct{}, len(reserved)),
		capacity: l.n,
	}
	for _, r := range reserved {
		if r < 0 || r >= l.n {
			continue
		}
		if _, dup := w.skip[r]; !dup {
			w.skip[r] = struct{}{}
			w.capacity--
		}
	}
	return w
}

func (l *Locator) stream(key []byte, kind models.SliceKind) *stream {
	return &stream{l: l, key: key, tag: []byte(kind.String())}
}

// stream yields the unbiased raw indices of one key and kind.
type stream struct {
	l     *Locator
	key   []byte
	tag   []byte
	chunk int
	buf   []byte
}

func (s *stream) next() (int, error) {
	for {
		if len(s.buf) < wordLen {
			if err := s.refill(); err != nil {
				return 0, err
			}
		}
		w := binary.BigEndian.Uint32(s.buf) & s.l.mask
		s.buf = s.buf[wordLen:]
		if int(w) < s.l.n {
			return int(w), nil
		}
	}
}

func (s *stream) refill() error {
	parts := [][]byte{s.tag, []byte("stream"), []byte(strconv.Itoa(s.chunk))}
	buf, err := s.l.kd.Derive(parts, s.key, streamChunkLen)
	if err != nil {
		return fmt.Errorf("derive index stream: %w", err)
	}
	s.chunk++
	s.buf = buf
	return nil
}

// Walk is a lazily extended sequence of distinct block indices. It is not
// safe for concurrent use.
type Walk struct {
	stream   *stream
	skip     map[int]struct{}
	indices  []int
	capacity int
}

// At returns the i-th index of the walk. It fails with ErrNoCapacity when
// fewer than i+1 distinct unreserved blocks exist.
func (w *Walk) At(i int) (int, error) {
	if i < 0 {
		return 0, fmt.Errorf("negative walk position %d", i)
	}
	for len(w.indices) <= i {
		if len(w.indices) >= w.capacity {
			return 0, ErrNoCapacity
		}
		idx, err := w.stream.next()
		if err != nil {
			return 0, err
		}
		if _, taken := w.skip[idx]; taken {
			continue
		}
		w.skip[idx] = struct{}{}
		w.indices = append(w.indices, idx)
	}
	return w.indices[i], nil
}

// Prefix returns the first n indices of the walk.
func (w *Walk) Prefix(n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		idx, err := w.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}
