// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safe

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MKhiriev/go-pol-safe/internal/primitives"
	"github.com/MKhiriev/go-pol-safe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSafe(t *testing.T, s *Safe) []byte {
	t.Helper()
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestWriteTo_Layout(t *testing.T) {
	s := newTestSafe(t, 4)
	raw := writeSafe(t, s)

	require.True(t, bytes.HasPrefix(raw, Magic))

	var obj map[string]any
	require.NoError(t, msgpack.Unmarshal(raw[len(Magic):], &obj))
	for _, attr := range requiredAttrs {
		assert.Contains(t, obj, attr)
	}
	assert.Equal(t, TypeElGamal, obj["type"])

	blocks, ok := obj["blocks"].([]any)
	require.True(t, ok)
	require.Len(t, blocks, 4)
	fields, ok := blocks[0].([]any)
	require.True(t, ok)
	assert.Len(t, fields, 4)
	assert.Len(t, fields[0], testBytesPerBlock+1)
}

func TestLoad_RoundTripWithoutRerandomize(t *testing.T) {
	s := newTestSafe(t, 8)
	raw := writeSafe(t, s)

	back, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, s.Blocks(), back.Blocks())
	assert.Equal(t, s.Header().NBlocks, back.Header().NBlocks)
	assert.Equal(t, 0, s.Header().GroupParams.P.Cmp(back.Header().GroupParams.P))
	assert.Equal(t, raw, writeSafe(t, back))
}

func mutateObject(t *testing.T, raw []byte, fn func(obj map[string]any)) []byte {
	t.Helper()
	var obj map[string]any
	require.NoError(t, msgpack.Unmarshal(raw[len(Magic):], &obj))
	fn(obj)
	body, err := msgpack.Marshal(obj)
	require.NoError(t, err)
	return append(append([]byte{}, Magic...), body...)
}

func TestLoad_Rejects(t *testing.T) {
	s := newTestSafe(t, 4)
	raw := writeSafe(t, s)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "bad magic", data: append([]byte("nope"), raw[4:]...)},
		{name: "garbage body", data: append(append([]byte{}, Magic...), 0xc1)},
		{name: "missing blocks", data: mutateObject(t, raw, func(o map[string]any) { delete(o, "blocks") })},
		{name: "wrong type", data: mutateObject(t, raw, func(o map[string]any) { o["type"] = "rsa" })},
		{name: "block count", data: mutateObject(t, raw, func(o map[string]any) { o["n-blocks"] = 5 })},
		{name: "index size", data: mutateObject(t, raw, func(o map[string]any) { o["block-index-size"] = 3 })},
		{name: "slice size", data: mutateObject(t, raw, func(o map[string]any) { o["slice-size"] = 0 })},
		{name: "bytes per block", data: mutateObject(t, raw, func(o map[string]any) { o["bytes-per-block"] = 64 })},
		{name: "one group param", data: mutateObject(t, raw, func(o map[string]any) {
			o["group-params"] = o["group-params"].([]any)[:1]
		})},
		{name: "n-blocks not int", data: mutateObject(t, raw, func(o map[string]any) { o["n-blocks"] = "four" })},
		{name: "short field", data: mutateObject(t, raw, func(o map[string]any) {
			o["blocks"].([]any)[0].([]any)[1] = []byte{1, 2}
		})},
		{name: "zero field", data: mutateObject(t, raw, func(o map[string]any) {
			o["blocks"].([]any)[0].([]any)[1] = make([]byte, testBytesPerBlock+1)
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestLoad_UnknownPrimitive(t *testing.T) {
	s := newTestSafe(t, 2)
	raw := mutateObject(t, writeSafe(t, s), func(o map[string]any) {
		o["block-cipher"] = map[string]any{"type": "rot13"}
	})

	_, err := Load(bytes.NewReader(raw))
	assert.ErrorIs(t, err, primitives.ErrConfig)
}

func TestRerandomize_ChangesBytesKeepsMeaning(t *testing.T) {
	ctx := context.Background()
	s := newTestSafe(t, 32)

	c, err := s.NewContainer(ctx, "pw")
	require.NoError(t, err)
	require.NoError(t, c.AddEntry(models.Entry{Key: "k", Note: "n", Secret: "v"}))

	before := s.Blocks()
	require.NoError(t, s.Rerandomize(ctx))
	after := s.Blocks()

	for i := range before {
		for f := range before[i] {
			assert.NotEqual(t, before[i][f], after[i][f], "block %d field %d kept its bytes", i, f)
		}
	}

	c, err = s.Open(ctx, "pw")
	require.NoError(t, err)
	secret, err := c.ReadSecret("k")
	require.NoError(t, err)
	assert.Equal(t, "v", secret)
}

func TestRerandomize_Progress(t *testing.T) {
	var (
		mu          sync.Mutex
		last, total int
	)
	s, err := Generate(context.Background(), testGenerateOptions(t, 40), WithWorkers(3),
		WithProgress(func(done, n int) {
			mu.Lock()
			defer mu.Unlock()
			last, total = max(last, done), n
		}))
	require.NoError(t, err)

	require.NoError(t, s.Rerandomize(context.Background()))
	assert.Equal(t, 40, total)
	assert.Equal(t, 40, last)
}

func TestRerandomize_Cancelled(t *testing.T) {
	s := newTestSafe(t, 64)
	before := s.Blocks()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Rerandomize(ctx), context.Canceled)
	assert.Equal(t, before, s.Blocks())
}

// byteHistogram counts the bytes of every block field, skipping the top
// byte, which only carries the two high bits of the modulus.
func byteHistogram(s *Safe) [256]float64 {
	var h [256]float64
	for _, b := range s.Blocks() {
		for _, f := range b {
			for _, x := range f[1:] {
				h[x]++
			}
		}
	}
	return h
}

func TestIndistinguishable_ByteDistribution(t *testing.T) {
	ctx := context.Background()
	const n = 96

	empty := reload(t, newTestSafe(t, n))

	populated := newTestSafe(t, n)
	for i, pw := range []string{"one", "two", "three"} {
		c, err := populated.NewContainer(ctx, pw)
		require.NoError(t, err)
		for j := range 3 {
			require.NoError(t, c.AddEntry(models.Entry{
				Key:    pw + string(rune('a'+j)),
				Note:   "note",
				Secret: string(bytes.Repeat([]byte{byte('A' + i)}, 20)),
			}))
		}
	}
	populated = reload(t, populated)

	he, hp := byteHistogram(empty), byteHistogram(populated)

	// two sample chi-square over 256 bins, 255 degrees of freedom; 360 is
	// far beyond the 0.1% critical value
	var chi2 float64
	for i := range he {
		if sum := he[i] + hp[i]; sum > 0 {
			d := he[i] - hp[i]
			chi2 += d * d / sum
		}
	}
	assert.Less(t, chi2, 360.0)
}
