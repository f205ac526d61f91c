// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safe

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MKhiriev/go-pol-safe/internal/blockstore"
	"github.com/MKhiriev/go-pol-safe/internal/group"
	"github.com/MKhiriev/go-pol-safe/internal/primitives"
)

// Magic starts every safe file.
var Magic = []byte{
	0x70, 0x6f, 0x6c, 0x0a, 0xd1, 0x63, 0xd4, 0x97, 0x7a,
	0x2c, 0xf6, 0x81, 0xad, 0x9a, 0x6c, 0xfe, 0x98, 0xab,
}

// TypeElGamal is the only supported safe "type".
const TypeElGamal = "elgamal"

var requiredAttrs = []string{
	"type", "block-cipher", "key-stretching", "key-derivation", "envelope",
	"block-index-size", "bytes-per-block", "n-blocks", "slice-size",
	"group-params", "blocks",
}

// fileObject is the msgpack mapping that follows the magic.
type fileObject struct {
	Type           string            `msgpack:"type"`
	BlockCipher    primitives.Params `msgpack:"block-cipher"`
	KeyStretching  primitives.Params `msgpack:"key-stretching"`
	KeyDerivation  primitives.Params `msgpack:"key-derivation"`
	Envelope       primitives.Params `msgpack:"envelope"`
	BlockIndexSize int               `msgpack:"block-index-size"`
	BytesPerBlock  int               `msgpack:"bytes-per-block"`
	NBlocks        int               `msgpack:"n-blocks"`
	SliceSize      int               `msgpack:"slice-size"`
	GroupParams    [][]byte          `msgpack:"group-params"`
	Blocks         [][][]byte        `msgpack:"blocks"`
}

// Header is the plaintext configuration of a safe. It never changes after
// the safe is created.
type Header struct {
	Primitives     primitives.Config
	BlockIndexSize int
	BytesPerBlock  int
	NBlocks        int
	SliceSize      int
	GroupParams    group.Params
}

// Load reads a safe written by WriteTo or Persist.
func Load(r io.Reader, opts ...Option) (*Safe, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(br, magic); err != nil || !bytes.Equal(magic, Magic) {
		return nil, fmt.Errorf("%w: bad magic", ErrFormat)
	}
	body, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("read safe: %w", err)
	}

	var raw map[string]msgpack.RawMessage
	if err = msgpack.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	for _, attr := range requiredAttrs {
		if _, ok := raw[attr]; !ok {
			return nil, fmt.Errorf("%w: missing attr `%s'", ErrFormat, attr)
		}
	}

	var obj fileObject
	if err = msgpack.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	hdr, blocks, err := obj.validate()
	if err != nil {
		return nil, err
	}
	return open(hdr, blocks, newOptions(opts))
}

func (obj *fileObject) validate() (Header, []blockstore.Block, error) {
	if obj.Type != TypeElGamal {
		return Header{}, nil, fmt.Errorf("%w: unsupported safe type %q", ErrFormat, obj.Type)
	}
	if obj.NBlocks < 0 || len(obj.Blocks) != obj.NBlocks {
		return Header{}, nil, fmt.Errorf("%w: amount of blocks isn't `n-blocks'", ErrFormat)
	}
	if len(obj.GroupParams) != 2 {
		return Header{}, nil, fmt.Errorf("%w: `group-params' should contain 2 elements", ErrFormat)
	}
	switch obj.BlockIndexSize {
	case 1, 2, 4:
	default:
		return Header{}, nil, fmt.Errorf("%w: `block-index-size' invalid", ErrFormat)
	}
	if obj.SliceSize < 1 {
		return Header{}, nil, fmt.Errorf("%w: `slice-size' invalid", ErrFormat)
	}

	params, err := group.ParamsFromBytes(obj.GroupParams)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if q := new(big.Int).Rsh(params.P, 1); obj.BytesPerBlock < 1 || q.BitLen() <= 8*obj.BytesPerBlock {
		return Header{}, nil, fmt.Errorf("%w: `bytes-per-block' larger than `group-params' allow", ErrFormat)
	}

	blocks := make([]blockstore.Block, len(obj.Blocks))
	for i, b := range obj.Blocks {
		if len(b) != blockstore.FieldsPerBlock {
			return Header{}, nil, fmt.Errorf("%w: block %d has %d fields", ErrFormat, i, len(b))
		}
		copy(blocks[i][:], b)
	}

	return Header{
		Primitives: primitives.Config{
			BlockCipher:   obj.BlockCipher,
			KeyStretching: obj.KeyStretching,
			KeyDerivation: obj.KeyDerivation,
			Envelope:      obj.Envelope,
		},
		BlockIndexSize: obj.BlockIndexSize,
		BytesPerBlock:  obj.BytesPerBlock,
		NBlocks:        obj.NBlocks,
		SliceSize:      obj.SliceSize,
		GroupParams:    params,
	}, blocks, nil
}

// WriteTo writes the safe as it is, without rerandomizing. Use Persist for
// anything that leaves the process.
func (s *Safe) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(w)
}

func (s *Safe) writeLocked(w io.Writer) (int64, error) {
	blocks := s.blocks.Blocks()
	obj := fileObject{
		Type:           TypeElGamal,
		BlockCipher:    s.header.Primitives.BlockCipher,
		KeyStretching:  s.header.Primitives.KeyStretching,
		KeyDerivation:  s.header.Primitives.KeyDerivation,
		Envelope:       s.header.Primitives.Envelope,
		BlockIndexSize: s.header.BlockIndexSize,
		BytesPerBlock:  s.header.BytesPerBlock,
		NBlocks:        s.header.NBlocks,
		SliceSize:      s.header.SliceSize,
		GroupParams:    s.header.GroupParams.Bytes(),
		Blocks:         make([][][]byte, len(blocks)),
	}
	for i, b := range blocks {
		obj.Blocks[i] = b[:]
	}

	var buf bytes.Buffer
	buf.Write(Magic)
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&obj); err != nil {
		return 0, fmt.Errorf("encode safe: %w", err)
	}
	return buf.WriteTo(w)
}
