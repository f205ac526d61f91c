// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pol-safe/internal/keys"
	"github.com/MKhiriev/go-pol-safe/internal/logger"
	"github.com/MKhiriev/go-pol-safe/internal/safe"
	"github.com/MKhiriev/go-pol-safe/internal/store"
	"github.com/MKhiriev/go-pol-safe/internal/validators"
	"github.com/MKhiriev/go-pol-safe/models"
)

type safeService struct {
	storage   store.SafeStorage
	validator validators.Validator
	opts      []safe.Option
}

// NewSafeService returns a [SafeService] working on the safe kept in
// storage. opts are applied to every loaded or generated safe.
func NewSafeService(storage store.SafeStorage, opts ...safe.Option) SafeService {
	return &safeService{
		storage:   storage,
		validator: validators.NewEntryValidator(),
		opts:      opts,
	}
}

func (s *safeService) Init(ctx context.Context, opts safe.GenerateOptions) error {
	log := logger.FromContext(ctx)

	if s.storage.Exists() {
		return fmt.Errorf("init safe: %w", store.ErrSafeExists)
	}

	generated, err := safe.Generate(ctx, opts, s.opts...)
	if err != nil {
		return fmt.Errorf("generate safe: %w", err)
	}
	if err = s.storage.Create(ctx, generated); err != nil {
		return fmt.Errorf("store new safe: %w", err)
	}

	log.Info().Int("blocks", generated.Len()).Msg("safe initialized")
	return nil
}

func (s *safeService) NewContainer(ctx context.Context, password string, opts ...safe.ContainerOption) error {
	if password == "" {
		return validators.ErrNoCredentials
	}

	loaded, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, err = loaded.NewContainer(ctx, password, opts...); err != nil {
		return fmt.Errorf("create container: %w", err)
	}
	return s.save(ctx, loaded)
}

func (s *safeService) List(ctx context.Context, cred models.Credentials) ([]models.EntryInfo, error) {
	_, c, err := s.open(ctx, cred)
	if err != nil {
		return nil, err
	}

	entries, err := c.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *safeService) Get(ctx context.Context, cred models.Credentials, key string) (string, error) {
	_, c, err := s.open(ctx, cred)
	if err != nil {
		return "", err
	}

	secret, err := c.ReadSecret(key)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return secret, nil
}

func (s *safeService) Add(ctx context.Context, cred models.Credentials, e models.Entry) error {
	if err := s.validator.Validate(ctx, e); err != nil {
		return fmt.Errorf("validate entry: %w", err)
	}

	loaded, c, err := s.open(ctx, cred)
	if err != nil {
		return err
	}
	if err = c.AddEntry(e); err != nil {
		return fmt.Errorf("add entry: %w", err)
	}
	return s.save(ctx, loaded)
}

func (s *safeService) Append(ctx context.Context, cred models.Credentials, e models.Entry) error {
	if err := s.validator.Validate(ctx, e); err != nil {
		return fmt.Errorf("validate entry: %w", err)
	}

	loaded, c, err := s.open(ctx, cred)
	if err != nil {
		return err
	}
	if err = c.AppendEntry(e); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return s.save(ctx, loaded)
}

func (s *safeService) Merge(ctx context.Context, cred models.Credentials) error {
	loaded, c, err := s.open(ctx, cred)
	if err != nil {
		return err
	}
	if err = c.Merge(); err != nil {
		return fmt.Errorf("merge appended entries: %w", err)
	}
	return s.save(ctx, loaded)
}

func (s *safeService) Keys(ctx context.Context, password string) (map[models.Capability]string, error) {
	if password == "" {
		return nil, validators.ErrNoCredentials
	}

	loaded, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	caps, err := loaded.DeriveCapabilities(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("derive capability keys: %w", err)
	}
	defer caps.Wipe()

	encoded := make(map[models.Capability]string, len(models.Capabilities))
	for _, role := range models.Capabilities {
		encoded[role] = keys.EncodeKey(role, caps.Key(role))
	}
	return encoded, nil
}

func (s *safeService) load(ctx context.Context) (*safe.Safe, error) {
	loaded, err := s.storage.Load(ctx, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("load safe: %w", err)
	}
	return loaded, nil
}

func (s *safeService) save(ctx context.Context, saved *safe.Safe) error {
	if err := s.storage.Save(ctx, saved); err != nil {
		return fmt.Errorf("save safe: %w", err)
	}
	return nil
}

// open loads the safe and opens the container cred unlocks.
func (s *safeService) open(ctx context.Context, cred models.Credentials) (*safe.Safe, *safe.Container, error) {
	if err := s.validator.Validate(ctx, cred); err != nil {
		return nil, nil, err
	}

	loaded, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	var c *safe.Container
	if cred.Key != "" {
		caps, decodeErr := keys.DecodeKey(cred.Key)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("decode capability key: %w", decodeErr)
		}
		c, err = loaded.OpenWithKeys(ctx, caps)
		caps.Wipe()
	} else {
		c, err = loaded.Open(ctx, cred.Password)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open container: %w", err)
	}
	return loaded, c, nil
}
