// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keys turns passwords into capability keys.
//
// A password is stretched once with the safe's salt and cost, and three
// role keys are derived from the result with tagged derivation:
//
//	base   = stretch(password, salt, cost)
//	master = derive(["master", hex(base)], salt)
//	list   = derive(["list",   hex(base)], salt)
//	append = derive(["append", hex(base)], salt)
//
// Knowing list or append does not give master or each other. A delegated
// list/append password goes through exactly the same steps, so every
// password yields the same three-key record shape.
package keys

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pol-safe/internal/primitives"
	"github.com/MKhiriev/go-pol-safe/models"
)

// KeyLen is the length of every capability key.
const KeyLen = 32

// ErrKeyFormat is returned for a malformed hex capability key.
var ErrKeyFormat = errors.New("malformed capability key")

// Capabilities holds the three role keys derived from one password. A
// missing key is nil.
type Capabilities struct {
	Master []byte
	List   []byte
	Append []byte
}

// Key returns the key for role c.
func (c Capabilities) Key(role models.Capability) []byte {
	switch role {
	case models.Master:
		return c.Master
	case models.List:
		return c.List
	case models.Append:
		return c.Append
	default:
		return nil
	}
}

// Only returns a record holding just the key for role.
func (c Capabilities) Only(role models.Capability) Capabilities {
	var out Capabilities
	switch role {
	case models.Master:
		out.Master = c.Master
	case models.List:
		out.List = c.List
	case models.Append:
		out.Append = c.Append
	}
	return out
}

// Wipe zeroes all keys.
func (c Capabilities) Wipe() {
	clear(c.Master)
	clear(c.List)
	clear(c.Append)
}

// EncodeKey formats a capability key for handing it to someone else.
func EncodeKey(role models.Capability, key []byte) string {
	return role.String() + ":" + hex.EncodeToString(key)
}

// DecodeKey parses a key produced by EncodeKey into a single-key record.
func DecodeKey(s string) (Capabilities, error) {
	for _, role := range models.Capabilities {
		prefix := role.String() + ":"
		if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
			continue
		}
		key, err := hex.DecodeString(s[len(prefix):])
		if err != nil || len(key) != KeyLen {
			return Capabilities{}, ErrKeyFormat
		}
		var c Capabilities
		switch role {
		case models.Master:
			c.Master = key
		case models.List:
			c.List = key
		case models.Append:
			c.Append = key
		}
		return c, nil
	}
	return Capabilities{}, ErrKeyFormat
}

// Deriver derives capability keys for one safe.
type Deriver struct {
	stretcher primitives.KeyStretcher
	kd        primitives.KeyDeriver
	salt      []byte
	cost      int
}

// NewDeriver returns a deriver using the safe's stretching salt and cost.
func NewDeriver(stretcher primitives.KeyStretcher, kd primitives.KeyDeriver, salt []byte, cost int) *Deriver {
	return &Deriver{stretcher: stretcher, kd: kd, salt: salt, cost: cost}
}

// Stretch runs the expensive stretching step on its own goroutine so a
// caller can abandon it through ctx. The result is discarded in that case.
func (d *Deriver) Stretch(ctx context.Context, password string) ([]byte, error) {
	type result struct {
		key []byte
		err error
	}

	done := make(chan result, 1)
	go func() {
		key, err := d.stretcher.Stretch([]byte(password), d.salt, d.cost)
		done <- result{key: key, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("stretch password: %w", r.err)
		}
		return r.key, nil
	}
}

// DeriveCapabilities stretches password and derives all three role keys.
func (d *Deriver) DeriveCapabilities(ctx context.Context, password string) (Capabilities, error) {
	base, err := d.Stretch(ctx, password)
	if err != nil {
		return Capabilities{}, err
	}
	defer clear(base)

	return d.FromBase(base)
}

// FromBase derives the three role keys from an already stretched secret.
func (d *Deriver) FromBase(base []byte) (Capabilities, error) {
	var (
		c   Capabilities
		err error
	)
	if c.Master, err = d.roleKey(models.Master, base); err != nil {
		return Capabilities{}, err
	}
	if c.List, err = d.roleKey(models.List, base); err != nil {
		return Capabilities{}, err
	}
	if c.Append, err = d.roleKey(models.Append, base); err != nil {
		return Capabilities{}, err
	}
	return c, nil
}

// DeriveRoleKey returns only the key of role for password. It is what a
// delegated list or append password is turned into.
func (d *Deriver) DeriveRoleKey(ctx context.Context, password string, role models.Capability) ([]byte, error) {
	base, err := d.Stretch(ctx, password)
	if err != nil {
		return nil, err
	}
	defer clear(base)

	return d.roleKey(role, base)
}

func (d *Deriver) roleKey(role models.Capability, base []byte) ([]byte, error) {
	key, err := d.kd.Derive([][]byte{[]byte(role.String()), []byte(hex.EncodeToString(base))}, d.salt, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("derive %s key: %w", role, err)
	}
	return key, nil
}
