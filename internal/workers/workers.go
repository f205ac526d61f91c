// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers fans CPU-bound work out over a bounded set of goroutines.
//
// The safe uses it for the expensive modular exponentiations: rerandomizing
// every block before persisting and searching for safe primes. Work is
// addressed by index so callers can precompute any randomness sequentially
// and keep results reproducible.
package workers

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of indices handed to a goroutine at once.
const DefaultChunkSize = 16

// Pool runs indexed jobs on at most Size goroutines.
type Pool struct {
	size      int
	chunkSize int
	progress  func(done, total int)
}

// Option configures a [Pool].
type Option func(*Pool)

// WithChunkSize sets how many consecutive indices one task processes.
func WithChunkSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.chunkSize = n
		}
	}
}

// WithProgress registers a callback invoked after every finished chunk.
// It may be called concurrently.
func WithProgress(fn func(done, total int)) Option {
	return func(p *Pool) {
		p.progress = fn
	}
}

// NewPool returns a pool of size goroutines; size < 1 means runtime.NumCPU().
func NewPool(size int, opts ...Option) *Pool {
	if size < 1 {
		size = runtime.NumCPU()
	}
	p := &Pool{size: size, chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Size returns the goroutine limit.
func (p *Pool) Size() int { return p.size }

// Run calls fn for every index in [0, n). The first error cancels the
// remaining chunks and is returned. Run also stops early when ctx is done.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	var done atomic.Int64
	for start := 0; start < n; start += p.chunkSize {
		end := min(start+p.chunkSize, n)
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(gctx, i); err != nil {
					return err
				}
			}
			if p.progress != nil {
				p.progress(int(done.Add(int64(end-start))), n)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
