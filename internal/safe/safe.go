// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package safe implements the deniable secret store.
//
// A safe is a fixed array of blocks. Containers live inside it without any
// record of their existence: a password opens a container only because the
// blocks its derived keys point to happen to decode. Every other block is
// junk that looks exactly like payload to anyone without a key, and every
// persist rerandomizes all blocks so saved copies never repeat bytes.
//
// A container owns up to five slices:
//
//	access-master   container secret C
//	access-list     main key and locator key
//	access-append   append key, append public key and locator key
//	main            entries; secrets encrypted under a key only C yields
//	append          sealed entries waiting for a master holder
//
// Access slices are placed by the capability keys. Main and append share
// one walk of the locator key that skips the container's access blocks:
// main takes even walk positions and append odd ones.
package safe

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/MKhiriev/go-pol-safe/internal/blockstore"
	"github.com/MKhiriev/go-pol-safe/internal/group"
	"github.com/MKhiriev/go-pol-safe/internal/keys"
	"github.com/MKhiriev/go-pol-safe/internal/locator"
	"github.com/MKhiriev/go-pol-safe/internal/logger"
	"github.com/MKhiriev/go-pol-safe/internal/primitives"
	"github.com/MKhiriev/go-pol-safe/internal/randsrc"
	"github.com/MKhiriev/go-pol-safe/internal/slice"
	"github.com/MKhiriev/go-pol-safe/internal/workers"
)

type options struct {
	rand     io.Reader
	log      *logger.Logger
	workers  int
	progress func(done, total int)
}

// Option configures a Safe.
type Option func(*options)

// WithRand sets the randomness source for junk, exponents, container
// secrets and envelope sealing. The default is the system CSPRNG.
func WithRand(r io.Reader) Option {
	return func(o *options) { o.rand = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithWorkers sets the number of goroutines used for rerandomization and
// the prime search. Zero or less means one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithProgress sets a callback for rerandomization progress.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) { o.progress = fn }
}

func newOptions(opts []Option) options {
	o := options{rand: randsrc.System(), log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Safe is an in-memory safe. All methods are safe for concurrent use;
// mutations are serialized.
type Safe struct {
	mu sync.Mutex

	header  Header
	suite   *primitives.Suite
	group   *group.Group
	blocks  *blockstore.Store
	codec   *slice.Codec
	locator *locator.Locator
	deriver *keys.Deriver
	pool    *workers.Pool
	rand    io.Reader
	log     *logger.Logger
}

// GenerateOptions describe a new safe.
type GenerateOptions struct {
	NBlocks        int
	BytesPerBlock  int
	BlockIndexSize int
	SliceSize      int

	// GroupParams skips the safe prime search when set.
	GroupParams *group.Params

	Primitives primitives.Options
}

// DefaultGenerateOptions returns the defaults of a new safe.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		NBlocks:        1024,
		BytesPerBlock:  128,
		BlockIndexSize: 2,
		SliceSize:      1,
		Primitives:     primitives.DefaultOptions(),
	}
}

// Generate creates a safe of junk blocks.
func Generate(ctx context.Context, g GenerateOptions, opts ...Option) (*Safe, error) {
	o := newOptions(opts)
	if g.NBlocks < 0 {
		return nil, fmt.Errorf("%w: negative block count %d", ErrFormat, g.NBlocks)
	}

	var params group.Params
	if g.GroupParams != nil {
		params = *g.GroupParams
	} else {
		start := time.Now()
		var err error
		params, err = group.GenerateParams(ctx, group.BitsFor(g.BytesPerBlock), o.rand, o.workers)
		if err != nil {
			return nil, fmt.Errorf("generate group parameters: %w", err)
		}
		o.log.Debug().Int("bits", params.P.BitLen()).Dur("elapsed", time.Since(start)).
			Msg("group parameters generated")
	}

	cfg, err := primitives.NewConfig(o.rand, g.Primitives)
	if err != nil {
		return nil, err
	}

	hdr := Header{
		Primitives:     cfg,
		BlockIndexSize: g.BlockIndexSize,
		BytesPerBlock:  g.BytesPerBlock,
		NBlocks:        g.NBlocks,
		SliceSize:      g.SliceSize,
		GroupParams:    params,
	}

	gr, err := group.New(params, g.BytesPerBlock, o.rand)
	if err != nil {
		return nil, err
	}
	blocks, err := blockstore.NewRandom(g.NBlocks, gr.Width(), gr)
	if err != nil {
		return nil, err
	}

	s, err := build(hdr, gr, blocks, o)
	if err != nil {
		return nil, err
	}
	o.log.Info().Int("n_blocks", hdr.NBlocks).Int("bytes_per_block", hdr.BytesPerBlock).Msg("safe generated")
	return s, nil
}

// open builds a safe from a parsed file.
func open(hdr Header, raw []blockstore.Block, o options) (*Safe, error) {
	gr, err := group.New(hdr.GroupParams, hdr.BytesPerBlock, o.rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	blocks, err := blockstore.FromBlocks(gr.Width(), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	for i, b := range raw {
		if _, err = gr.FromBlock(b); err != nil {
			return nil, fmt.Errorf("%w: block %d: %w", ErrFormat, i, err)
		}
	}
	return build(hdr, gr, blocks, o)
}

func build(hdr Header, gr *group.Group, blocks *blockstore.Store, o options) (*Safe, error) {
	suite, err := primitives.NewSuite(hdr.Primitives)
	if err != nil {
		return nil, err
	}
	codec, err := slice.NewCodec(gr, suite.Cipher, suite.Deriver, blocks, hdr.BlockIndexSize, hdr.SliceSize)
	if err != nil {
		return nil, err
	}

	var poolOpts []workers.Option
	if o.progress != nil {
		poolOpts = append(poolOpts, workers.WithProgress(o.progress))
	}

	return &Safe{
		header:  hdr,
		suite:   suite,
		group:   gr,
		blocks:  blocks,
		codec:   codec,
		locator: locator.New(suite.Deriver, hdr.NBlocks),
		deriver: keys.NewDeriver(suite.Stretcher, suite.Deriver, suite.Salt(), suite.Cost()),
		pool:    workers.NewPool(o.workers, poolOpts...),
		rand:    o.rand,
		log:     o.log,
	}, nil
}

// Header returns the safe's plaintext configuration.
func (s *Safe) Header() Header { return s.header }

// Len returns the number of blocks.
func (s *Safe) Len() int { return s.blocks.Len() }

// Blocks returns a copy of all blocks.
func (s *Safe) Blocks() []blockstore.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.blocks.Blocks()
}

// Probes returns the number of block decode attempts made so far.
func (s *Safe) Probes() uint64 { return s.codec.Probes() }

// DeriveCapabilities returns the three capability keys of password. Their
// EncodeKey form can be handed to delegates of a container created with
// WithDerivedDelegates.
func (s *Safe) DeriveCapabilities(ctx context.Context, password string) (keys.Capabilities, error) {
	return s.deriver.DeriveCapabilities(ctx, password)
}

// Rerandomize re-blinds every block. Contents decode as before under the
// same keys, but no block keeps its bytes.
func (s *Safe) Rerandomize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rerandomizeLocked(ctx)
}

// Persist rerandomizes and writes the safe in one step.
func (s *Safe) Persist(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rerandomizeLocked(ctx); err != nil {
		return err
	}
	_, err := s.writeLocked(w)
	return err
}

func (s *Safe) rerandomizeLocked(ctx context.Context) error {
	n := s.blocks.Len()
	start := time.Now()
	s.log.Debug().Int("blocks", n).Int("workers", s.pool.Size()).Msg("rerandomizing blocks")

	// exponents are drawn up front so a seeded source gives the same result
	// regardless of scheduling
	exps := make([][2]*big.Int, n)
	for i := range exps {
		for j := range exps[i] {
			e, err := s.group.RandomExponent()
			if err != nil {
				return err
			}
			exps[i][j] = e
		}
	}

	in := s.blocks.Blocks()
	out := make([]blockstore.Block, n)
	err := s.pool.Run(ctx, n, func(_ context.Context, i int) error {
		ct, err := s.group.FromBlock(in[i])
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		out[i] = s.group.ToBlock(s.group.RerandomizeWith(ct, exps[i][0], exps[i][1]))
		return nil
	})
	if err != nil {
		return fmt.Errorf("rerandomize: %w", err)
	}

	for i, b := range out {
		if err = s.blocks.Set(i, b); err != nil {
			return err
		}
	}

	secs := time.Since(start).Seconds()
	ev := s.log.Debug().Dur("elapsed", time.Since(start))
	if secs > 0 {
		ev = ev.Float64("kbps", float64(n*s.group.Width()*blockstore.FieldsPerBlock)/1024/secs)
	}
	ev.Msg("rerandomized blocks")
	return nil
}

// snapshot and restore undo a mutation that failed halfway.
func (s *Safe) snapshot() []blockstore.Block {
	return s.blocks.Blocks()
}

func (s *Safe) restore(blocks []blockstore.Block) {
	for i, b := range blocks {
		// cannot fail: same store, same shape
		_ = s.blocks.Set(i, b)
	}
}
