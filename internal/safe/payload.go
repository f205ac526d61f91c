// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safe

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MKhiriev/go-pol-safe/models"
)

// accessPayload is the content of an access slice. Fields a role does not
// carry are nil.
type accessPayload struct {
	_msgpack struct{} `msgpack:",as_array"`

	Role         models.Capability
	Secret       []byte
	Main         []byte
	Locator      []byte
	Append       []byte
	AppendPublic []byte

	// Reserved lists the access blocks of the container in ascending order,
	// indexWidth bytes each. It holds a run for every role, so its length
	// does not depend on which roles the container has. Runs of missing
	// roles are decoys.
	Reserved []byte

	// Live marks the entries of Reserved that are real access blocks, one
	// bit each. Only the master payload carries it.
	Live []byte
}

// mainPayload is the content of the main slice.
type mainPayload struct {
	_msgpack struct{} `msgpack:",as_array"`

	Entries []storedEntry
}

// storedEntry is an entry whose secret is encrypted under the secret key.
type storedEntry struct {
	_msgpack struct{} `msgpack:",as_array"`

	Key    string
	Note   string
	Nonce  []byte
	Secret []byte
}

// appendPayload is the content of the append slice: entries sealed to the
// container's append public key.
type appendPayload struct {
	_msgpack struct{} `msgpack:",as_array"`

	Sealed [][]byte
}

// indexWidth is the number of bytes an index of a safe of n blocks takes.
func indexWidth(n int) int {
	w := 1
	for w < 4 && n-1 >= 1<<(8*w) {
		w++
	}
	return w
}

func encodeIndices(indices []int, width int) []byte {
	var word [4]byte
	out := make([]byte, 0, width*len(indices))
	for _, idx := range indices {
		binary.BigEndian.PutUint32(word[:], uint32(idx))
		out = append(out, word[4-width:]...)
	}
	return out
}

func decodeIndices(raw []byte, width, n int) ([]int, error) {
	if len(raw)%width != 0 {
		return nil, fmt.Errorf("reserved indices: %d bytes", len(raw))
	}
	out := make([]int, len(raw)/width)
	for i := range out {
		var word [4]byte
		copy(word[4-width:], raw[i*width:(i+1)*width])
		idx := int(binary.BigEndian.Uint32(word[:]))
		if idx >= n {
			return nil, fmt.Errorf("reserved index %d out of range", idx)
		}
		out[i] = idx
	}
	return out, nil
}

// liveMask sets bit i when reserved[i] is in live.
func liveMask(reserved, live []int) []byte {
	mask := make([]byte, (len(reserved)+7)/8)
	for i, idx := range reserved {
		if slices.Contains(live, idx) {
			mask[i/8] |= 1 << (i % 8)
		}
	}
	return mask
}

func liveIndices(reserved []int, mask []byte) []int {
	var out []int
	for i, idx := range reserved {
		if i/8 < len(mask) && mask[i/8]&(1<<(i%8)) != 0 {
			out = append(out, idx)
		}
	}
	return out
}

func marshal(v any) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return b, nil
}
