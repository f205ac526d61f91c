// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Run_AllIndicesVisitedOnce(t *testing.T) {
	const n = 1000
	var seen [n]atomic.Int32

	p := NewPool(4, WithChunkSize(7))
	err := p.Run(context.Background(), n, func(_ context.Context, i int) error {
		seen[i].Add(1)
		return nil
	})
	require.NoError(t, err)

	for i := range seen {
		assert.Equal(t, int32(1), seen[i].Load(), "index %d", i)
	}
}

func TestPool_Run_Empty(t *testing.T) {
	p := NewPool(2)

	// should not call fn at all
	err := p.Run(context.Background(), 0, func(context.Context, int) error {
		t.Fatal("unexpected call")
		return nil
	})
	require.NoError(t, err)
}

func TestPool_Run_ErrorStops(t *testing.T) {
	boom := errors.New("boom")
	p := NewPool(2, WithChunkSize(1))

	err := p.Run(context.Background(), 100, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestPool_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := NewPool(2).Run(ctx, 100, func(context.Context, int) error {
		calls.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestPool_Run_Progress(t *testing.T) {
	var (
		mu   sync.Mutex
		last int
	)
	p := NewPool(3, WithChunkSize(10), WithProgress(func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 95, total)
		last = max(last, done)
	}))

	require.NoError(t, p.Run(context.Background(), 95, func(context.Context, int) error { return nil }))
	assert.Equal(t, 95, last)
}

func TestNewPool_DefaultSize(t *testing.T) {
	assert.Positive(t, NewPool(0).Size())
	assert.Equal(t, 5, NewPool(5).Size())
}
