// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pol-safe/internal/logger"
	"github.com/MKhiriev/go-pol-safe/internal/safe"
	"github.com/MKhiriev/go-pol-safe/internal/utils"
)

// safeFileStorage is the default implementation of [SafeStorage]. The safe
// lives in a single file; a save writes a sibling temp file and renames it
// over the old one, so readers see either the old or the new safe.
type safeFileStorage struct {
	path   string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewSafeFileStorage returns a [SafeStorage] backed by the file at path.
func NewSafeFileStorage(path string, logger *logger.Logger) SafeStorage {
	return &safeFileStorage{
		path:   path,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (f *safeFileStorage) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

func (f *safeFileStorage) Create(ctx context.Context, s *safe.Safe) error {
	if f.Exists() {
		return fmt.Errorf("%w: %s", ErrSafeExists, f.path)
	}
	return f.Save(ctx, s)
}

func (f *safeFileStorage) Save(ctx context.Context, s *safe.Safe) error {
	log := logger.FromContext(ctx)

	tmp := filepath.Join(filepath.Dir(f.path), "."+filepath.Base(f.path)+"."+f.ids.Generate()+".tmp")
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		log.Err(err).
			Str("func", "safeFileStorage.Save").
			Str("path", tmp).
			Msg("failed to create temp file")
		return fmt.Errorf("%w: %w", ErrSafeNotSaved, err)
	}

	if err = writeSafe(ctx, file, s); err != nil {
		log.Err(err).
			Str("func", "safeFileStorage.Save").
			Str("path", tmp).
			Msg("failed to write safe")
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrSafeNotSaved, err)
	}

	if err = os.Rename(tmp, f.path); err != nil {
		log.Err(err).
			Str("func", "safeFileStorage.Save").
			Str("path", f.path).
			Msg("failed to replace safe file")
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrSafeNotSaved, err)
	}

	log.Debug().Str("path", f.path).Int("blocks", s.Len()).Msg("safe saved")
	return nil
}

// writeSafe persists s into file and closes it.
func writeSafe(ctx context.Context, file *os.File, s *safe.Safe) error {
	bw := bufio.NewWriter(file)
	err := s.Persist(ctx, bw)
	if err == nil {
		err = bw.Flush()
	}
	if err == nil {
		err = file.Sync()
	}
	return errors.Join(err, file.Close())
}

func (f *safeFileStorage) Load(ctx context.Context, opts ...safe.Option) (*safe.Safe, error) {
	log := logger.FromContext(ctx)

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSafeNotFound, f.path)
	}
	if err != nil {
		log.Err(err).
			Str("func", "safeFileStorage.Load").
			Str("path", f.path).
			Msg("failed to open safe file")
		return nil, fmt.Errorf("failed to open safe file: %w", err)
	}
	defer file.Close()

	s, err := safe.Load(bufio.NewReader(file), opts...)
	if err != nil {
		log.Err(err).
			Str("func", "safeFileStorage.Load").
			Str("path", f.path).
			Msg("failed to decode safe file")
		return nil, err
	}

	log.Debug().Str("path", f.path).Int("blocks", s.Len()).Msg("safe loaded")
	return s, nil
}
