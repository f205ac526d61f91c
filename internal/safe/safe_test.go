// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safe

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-pol-safe/internal/group"
	"github.com/MKhiriev/go-pol-safe/internal/primitives"
	"github.com/MKhiriev/go-pol-safe/internal/randsrc"
	"github.com/stretchr/testify/require"
)

const testBytesPerBlock = 32

var (
	paramsOnce sync.Once
	testParams group.Params
	paramsErr  error
)

func testGroupParams(t *testing.T) *group.Params {
	t.Helper()
	paramsOnce.Do(func() {
		testParams, paramsErr = group.GenerateParams(context.Background(),
			group.BitsFor(testBytesPerBlock), randsrc.System(), 0)
	})
	require.NoError(t, paramsErr)
	return &testParams
}

func testGenerateOptions(t *testing.T, nBlocks int) GenerateOptions {
	t.Helper()
	return GenerateOptions{
		NBlocks:        nBlocks,
		BytesPerBlock:  testBytesPerBlock,
		BlockIndexSize: 2,
		SliceSize:      1,
		GroupParams:    testGroupParams(t),
		Primitives: primitives.Options{
			BlockCipher:   primitives.CipherAESCTR,
			KeyStretching: primitives.StretchPBKDF2,
			KeyDerivation: primitives.DeriveHKDFSHA256,
			Envelope:      primitives.EnvelopeNaClBox,
			Cost:          16,
		},
	}
}

// newTestSafe returns a safe whose layout is reproducible for the test.
func newTestSafe(t *testing.T, nBlocks int) *Safe {
	t.Helper()
	s, err := Generate(context.Background(), testGenerateOptions(t, nBlocks),
		WithRand(randsrc.NewSeeded([]byte(t.Name()))), WithWorkers(2))
	require.NoError(t, err)
	return s
}

// reload persists s and loads it back.
func reload(t *testing.T, s *Safe) *Safe {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Persist(context.Background(), &buf))

	back, err := Load(&buf, WithRand(randsrc.NewSeeded([]byte(t.Name()+"/reload"))))
	require.NoError(t, err)
	return back
}
