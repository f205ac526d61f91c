// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MKhiriev/go-pol-safe/internal/keys"
	"github.com/MKhiriev/go-pol-safe/internal/locator"
	"github.com/MKhiriev/go-pol-safe/internal/slice"
	"github.com/MKhiriev/go-pol-safe/models"
)

// containerKeys are the keys a container secret expands to. A container
// opened with a delegated capability only knows some of them.
type containerKeys struct {
	main          []byte
	secret        []byte
	append        []byte
	locator       []byte
	appendPublic  []byte
	appendPrivate []byte
}

func (k containerKeys) wipe() {
	for _, b := range [][]byte{k.main, k.secret, k.append, k.locator, k.appendPrivate} {
		clear(b)
	}
}

func (s *Safe) expandSecret(secret []byte) (containerKeys, error) {
	derive := func(tag string, n int) ([]byte, error) {
		k, err := s.suite.Deriver.Derive([][]byte{[]byte(tag)}, secret, n)
		if err != nil {
			return nil, fmt.Errorf("derive %s key: %w", tag, err)
		}
		return k, nil
	}

	var (
		k   containerKeys
		err error
	)
	if k.main, err = derive("main", keys.KeyLen); err != nil {
		return containerKeys{}, err
	}
	if k.secret, err = derive("secret", s.suite.Cipher.KeySize()); err != nil {
		return containerKeys{}, err
	}
	if k.append, err = derive("append", keys.KeyLen); err != nil {
		return containerKeys{}, err
	}
	if k.locator, err = derive("locator", keys.KeyLen); err != nil {
		return containerKeys{}, err
	}

	seed, err := derive("envelope", 64)
	if err != nil {
		return containerKeys{}, err
	}
	if k.appendPublic, k.appendPrivate, err = s.suite.Envelope.KeyGen(bytes.NewReader(seed)); err != nil {
		return containerKeys{}, fmt.Errorf("derive append key pair: %w", err)
	}
	return k, nil
}

type containerOptions struct {
	listPassword   string
	appendPassword string
	derived        bool
}

// ContainerOption configures NewContainer.
type ContainerOption func(*containerOptions)

// WithListPassword gives the container a list-only password unrelated to
// the master password.
func WithListPassword(password string) ContainerOption {
	return func(o *containerOptions) { o.listPassword = password }
}

// WithAppendPassword gives the container an append-only password unrelated
// to the master password.
func WithAppendPassword(password string) ContainerOption {
	return func(o *containerOptions) { o.appendPassword = password }
}

// WithDerivedDelegates makes the list and append keys derived from the
// master password open the container, so they can be handed out with
// keys.EncodeKey. Explicit list or append passwords take precedence.
func WithDerivedDelegates() ContainerOption {
	return func(o *containerOptions) { o.derived = true }
}

// NewContainer creates a container opened by password and returns it with
// master capability. An older container of the same password is
// overwritten. The safe must be persisted afterwards.
func (s *Safe) NewContainer(ctx context.Context, password string, opts ...ContainerOption) (*Container, error) {
	var o containerOptions
	for _, opt := range opts {
		opt(&o)
	}

	caps, err := s.deriver.DeriveCapabilities(ctx, password)
	if err != nil {
		return nil, err
	}
	access := map[models.Capability][]byte{models.Master: caps.Master}
	if o.derived {
		access[models.List] = caps.List
		access[models.Append] = caps.Append
	}
	if o.listPassword != "" {
		if access[models.List], err = s.deriver.DeriveRoleKey(ctx, o.listPassword, models.List); err != nil {
			return nil, err
		}
	}
	if o.appendPassword != "" {
		if access[models.Append], err = s.deriver.DeriveRoleKey(ctx, o.appendPassword, models.Append); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blocks.Len() == 0 {
		return nil, fmt.Errorf("%w: %w", slice.ErrSafeFull, locator.ErrNoCapacity)
	}

	secret := make([]byte, keys.KeyLen)
	if _, err = io.ReadFull(s.rand, secret); err != nil {
		return nil, fmt.Errorf("draw container secret: %w", err)
	}
	ck, err := s.expandSecret(secret)
	if err != nil {
		return nil, err
	}

	payloads, reserved, live, err := s.placeAccess(access, secret, ck)
	if err != nil {
		return nil, err
	}

	c := &Container{safe: s, role: models.Master, keys: ck, reserved: reserved, live: live}
	c.walk = s.locator.Walk(ck.locator, models.Main, reserved)

	snap := s.snapshot()
	if err = c.writeMainLocked(nil); err != nil {
		s.restore(snap)
		return nil, err
	}
	if err = c.writeAppendLocked(nil); err != nil {
		s.restore(snap)
		return nil, err
	}
	for _, role := range models.Capabilities {
		key, ok := access[role]
		if !ok {
			continue
		}
		if _, err = s.codec.Store(key, payloads[role], s.accessPlacement(key, role)); err != nil {
			s.restore(snap)
			return nil, err
		}
	}

	s.log.Debug().Int("access_slices", len(access)).Msg("container created")
	return c, nil
}

// accessRuns returns how many blocks the access slice of every role takes.
// The payloads embed the reserved list, whose length is the sum of the
// runs, so this iterates until the sum settles.
func (s *Safe) accessRuns(secret []byte, ck containerKeys) (map[models.Capability]int, int, error) {
	width := indexWidth(s.blocks.Len())
	runs := make(map[models.Capability]int, len(models.Capabilities))
	total := 0
	for {
		next := 0
		for _, role := range models.Capabilities {
			raw, err := marshal(accessPayloadFor(role, secret, ck,
				make([]byte, total*width), make([]byte, (total+7)/8)))
			if err != nil {
				return nil, 0, err
			}
			runs[role] = s.codec.ChunkCount(len(raw))
			next += runs[role]
		}
		if next == total {
			return runs, total, nil
		}
		if next > s.blocks.Len() {
			return nil, 0, fmt.Errorf("%w: %w", slice.ErrSafeFull, locator.ErrNoCapacity)
		}
		total = next
	}
}

// placeAccess encodes the access payloads and finds their blocks. Every
// role gets a run of blocks; roles the container does not have get a decoy
// run walked from the container secret, so the reserved list looks the same
// whichever roles exist.
func (s *Safe) placeAccess(access map[models.Capability][]byte, secret []byte, ck containerKeys) (
	payloads map[models.Capability][]byte, reserved, live []int, err error) {
	runs, total, err := s.accessRuns(secret, ck)
	if err != nil {
		return nil, nil, nil, err
	}

	owner := make(map[int]models.Capability, total)
	for _, role := range models.Capabilities {
		key, ok := access[role]
		if !ok {
			continue
		}
		indices, err := s.locator.Walk(key, models.AccessKind(role), nil).Prefix(runs[role])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: %w", slice.ErrSafeFull, err)
		}
		for _, idx := range indices {
			if other, taken := owner[idx]; taken {
				return nil, nil, nil, fmt.Errorf("%w: %s and %s", ErrAccessCollision, other, role)
			}
			owner[idx] = role
		}
		live = append(live, indices...)
	}

	reserved = slices.Clone(live)
	for _, role := range models.Capabilities {
		if _, ok := access[role]; ok {
			continue
		}
		decoy, err := s.suite.Deriver.Derive([][]byte{[]byte("decoy"), []byte(role.String())}, secret, keys.KeyLen)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("derive decoy key: %w", err)
		}
		indices, err := s.locator.Walk(decoy, models.AccessKind(role), reserved).Prefix(runs[role])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: %w", slice.ErrSafeFull, err)
		}
		reserved = append(reserved, indices...)
	}
	slices.Sort(reserved)

	width := indexWidth(s.blocks.Len())
	encoded, mask := encodeIndices(reserved, width), liveMask(reserved, live)
	payloads = make(map[models.Capability][]byte, len(access))
	for role := range access {
		if payloads[role], err = marshal(accessPayloadFor(role, secret, ck, encoded, mask)); err != nil {
			return nil, nil, nil, err
		}
	}
	return payloads, reserved, live, nil
}

func accessPayloadFor(role models.Capability, secret []byte, ck containerKeys, reserved, live []byte) accessPayload {
	p := accessPayload{Role: role, Reserved: reserved}
	switch role {
	case models.Master:
		p.Secret = secret
		p.Live = live
	case models.List:
		p.Main = ck.main
		p.Locator = ck.locator
	case models.Append:
		p.Append = ck.append
		p.AppendPublic = ck.appendPublic
		p.Locator = ck.locator
	}
	return p
}

func (s *Safe) accessPlacement(key []byte, role models.Capability) slice.Placement {
	return s.locator.Walk(key, models.AccessKind(role), nil).At
}

// Open returns the container password opens, with the strongest capability
// the password grants. Every failure to find a container is
// ErrWrongPassword.
func (s *Safe) Open(ctx context.Context, password string) (*Container, error) {
	caps, err := s.deriver.DeriveCapabilities(ctx, password)
	if err != nil {
		return nil, err
	}
	defer caps.Wipe()

	return s.OpenWithKeys(ctx, caps)
}

// OpenWithKeys is Open for capability keys obtained without a password,
// e.g. from keys.DecodeKey. Missing keys are skipped.
func (s *Safe) OpenWithKeys(ctx context.Context, caps keys.Capabilities) (*Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blocks.Len() == 0 {
		return nil, locator.ErrNoCapacity
	}

	start, before := time.Now(), s.codec.Probes()
	defer func() {
		s.log.Debug().Uint64("probes", s.codec.Probes()-before).Dur("elapsed", time.Since(start)).
			Msg("container open attempt finished")
	}()

	// the first block of every access slice is probed before anything is
	// decoded further, so the probe pattern does not depend on which
	// capability matched
	hits := make([]bool, len(models.Capabilities))
	for i, role := range models.Capabilities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if key := caps.Key(role); key != nil {
			hits[i] = s.codec.Probe(key, s.accessPlacement(key, role))
		}
	}

	for i, role := range models.Capabilities {
		if !hits[i] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c, err := s.loadContainer(role, caps.Key(role)); err == nil {
			return c, nil
		}
	}
	return nil, ErrWrongPassword
}

func (s *Safe) loadContainer(role models.Capability, key []byte) (*Container, error) {
	raw, _, err := s.codec.Load(key, s.accessPlacement(key, role))
	if err != nil {
		return nil, err
	}

	var p accessPayload
	if err = msgpack.Unmarshal(raw, &p); err != nil || p.Role != role {
		return nil, slice.ErrSliceAbsent
	}
	reserved, err := decodeIndices(p.Reserved, indexWidth(s.blocks.Len()), s.blocks.Len())
	if err != nil {
		return nil, slice.ErrSliceAbsent
	}

	c := &Container{safe: s, role: role, reserved: reserved}
	switch role {
	case models.Master:
		if len(p.Secret) != keys.KeyLen {
			return nil, slice.ErrSliceAbsent
		}
		c.live = liveIndices(reserved, p.Live)
		if c.keys, err = s.expandSecret(p.Secret); err != nil {
			return nil, err
		}
	case models.List:
		c.keys = containerKeys{main: p.Main, locator: p.Locator}
	case models.Append:
		c.keys = containerKeys{append: p.Append, appendPublic: p.AppendPublic, locator: p.Locator}
	}
	if len(c.keys.locator) == 0 {
		return nil, slice.ErrSliceAbsent
	}
	c.walk = s.locator.Walk(c.keys.locator, models.Main, reserved)

	if role.CanList() {
		if err = c.loadMainLocked(); err != nil {
			return nil, err
		}
	}
	if role == models.Master {
		if err = c.loadPendingLocked(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Container is an opened container. Its methods lock the owning safe.
type Container struct {
	safe *Safe
	role models.Capability
	keys containerKeys

	// reserved are the access blocks of the container, decoys included.
	// live are the real ones, known only with master capability.
	reserved []int
	live     []int
	walk     *locator.Walk

	mainBlocks   []int
	appendBlocks []int

	entries []storedEntry
	pending []models.Entry

	destroyed bool
}

// Capability returns the capability the container was opened with.
func (c *Container) Capability() models.Capability { return c.role }

func (c *Container) allow(ok bool) error {
	if c.destroyed {
		return fmt.Errorf("%w: container destroyed", ErrCapability)
	}
	if !ok {
		// a withheld key looks like a wrong password
		return fmt.Errorf("%w: %w: opened as %s", ErrWrongPassword, ErrCapability, c.role)
	}
	return nil
}

// ListEntries returns keys and notes. A master holder also sees appended
// entries that were not merged yet.
func (c *Container) ListEntries() ([]models.EntryInfo, error) {
	c.safe.mu.Lock()
	defer c.safe.mu.Unlock()

	if err := c.allow(c.role.CanList()); err != nil {
		return nil, err
	}

	out := make([]models.EntryInfo, 0, len(c.entries)+len(c.pending))
	for _, e := range c.entries {
		out = append(out, models.EntryInfo{Key: e.Key, Note: e.Note})
	}
	for _, e := range c.pending {
		info := e.Info()
		info.Pending = true
		out = append(out, info)
	}
	return out, nil
}

// ReadSecret returns the secret of the entry with key. A pending entry
// shadows a merged one of the same key.
func (c *Container) ReadSecret(key string) (string, error) {
	c.safe.mu.Lock()
	defer c.safe.mu.Unlock()

	if err := c.allow(c.role == models.Master); err != nil {
		return "", err
	}

	for i := len(c.pending) - 1; i >= 0; i-- {
		if c.pending[i].Key == key {
			return c.pending[i].Secret, nil
		}
	}
	for _, e := range c.entries {
		if e.Key == key {
			secret, err := c.safe.suite.Cipher.Decrypt(c.keys.secret, e.Nonce, e.Secret)
			if err != nil {
				return "", fmt.Errorf("decrypt secret: %w", err)
			}
			return string(secret), nil
		}
	}
	return "", ErrEntryNotFound
}

// AddEntry rewrites the main slice with e added.
func (c *Container) AddEntry(e models.Entry) error {
	c.safe.mu.Lock()
	defer c.safe.mu.Unlock()

	if err := c.allow(c.role == models.Master); err != nil {
		return err
	}
	if c.hasKey(e.Key) {
		return fmt.Errorf("%w: %q", ErrDuplicateEntry, e.Key)
	}

	se, err := c.encryptEntry(e)
	if err != nil {
		return err
	}

	snap := c.safe.snapshot()
	entries := append(slices.Clone(c.entries), se)
	if err = c.writeMainLocked(entries); err != nil {
		c.safe.restore(snap)
		return err
	}
	c.entries = entries
	return nil
}

// AppendEntry seals e to the container's append public key and adds it to
// the append slice. It never reads the main slice, and an append-only
// holder cannot read what was appended before.
func (c *Container) AppendEntry(e models.Entry) error {
	c.safe.mu.Lock()
	defer c.safe.mu.Unlock()

	if err := c.allow(c.role.CanAppend()); err != nil {
		return err
	}

	sealed, err := c.readAppendLocked()
	if err != nil {
		return err
	}
	msg, err := marshal(e)
	if err != nil {
		return err
	}
	box, err := c.safe.suite.Envelope.Seal(c.safe.rand, c.keys.appendPublic, msg)
	if err != nil {
		return err
	}

	snap := c.safe.snapshot()
	if err = c.writeAppendLocked(append(sealed, box)); err != nil {
		c.safe.restore(snap)
		return err
	}
	if c.role == models.Master {
		c.pending = append(c.pending, e)
	}
	return nil
}

// Merge moves appended entries into the main slice. An appended entry
// replaces a merged one with the same key.
func (c *Container) Merge() error {
	c.safe.mu.Lock()
	defer c.safe.mu.Unlock()

	if err := c.allow(c.role == models.Master); err != nil {
		return err
	}
	if err := c.loadPendingLocked(); err != nil {
		return err
	}
	if len(c.pending) == 0 {
		return nil
	}

	entries := slices.Clone(c.entries)
	for _, e := range c.pending {
		se, err := c.encryptEntry(e)
		if err != nil {
			return err
		}
		if i := slices.IndexFunc(entries, func(x storedEntry) bool { return x.Key == e.Key }); i >= 0 {
			entries[i] = se
		} else {
			entries = append(entries, se)
		}
	}

	snap := c.safe.snapshot()
	if err := c.writeMainLocked(entries); err != nil {
		c.safe.restore(snap)
		return err
	}
	if err := c.writeAppendLocked(nil); err != nil {
		c.safe.restore(snap)
		return err
	}

	c.safe.log.Debug().Int("merged", len(c.pending)).Msg("append slice merged")
	c.entries = entries
	c.pending = nil
	return nil
}

// Destroy overwrites every block of the container with junk. Decoy access
// blocks are left alone. The container cannot be used afterwards.
func (c *Container) Destroy() error {
	c.safe.mu.Lock()
	defer c.safe.mu.Unlock()

	if err := c.allow(c.role == models.Master); err != nil {
		return err
	}

	all := slices.Concat(c.live, c.mainBlocks, c.appendBlocks)
	if err := c.safe.codec.Trash(all); err != nil {
		return err
	}

	c.keys.wipe()
	c.entries, c.pending = nil, nil
	c.destroyed = true
	return nil
}

func (c *Container) hasKey(key string) bool {
	for _, e := range c.entries {
		if e.Key == key {
			return true
		}
	}
	for _, e := range c.pending {
		if e.Key == key {
			return true
		}
	}
	return false
}

func (c *Container) encryptEntry(e models.Entry) (storedEntry, error) {
	cipher := c.safe.suite.Cipher
	nonce := make([]byte, cipher.NonceSize())
	if _, err := io.ReadFull(c.safe.rand, nonce); err != nil {
		return storedEntry{}, fmt.Errorf("draw entry nonce: %w", err)
	}
	ct, err := cipher.Encrypt(c.keys.secret, nonce, []byte(e.Secret))
	if err != nil {
		return storedEntry{}, fmt.Errorf("encrypt secret: %w", err)
	}
	return storedEntry{Key: e.Key, Note: e.Note, Nonce: nonce, Secret: ct}, nil
}

func (c *Container) mainPlacement(i int) (int, error) {
	return c.walk.At(2 * i)
}

func (c *Container) appendPlacement(i int) (int, error) {
	return c.walk.At(2*i + 1)
}

// loadMainLocked reads the entries. A main slice overwritten by another
// container reads as empty.
func (c *Container) loadMainLocked() error {
	raw, indices, err := c.safe.codec.Load(c.keys.main, c.mainPlacement)
	if errors.Is(err, slice.ErrSliceAbsent) {
		c.entries, c.mainBlocks = nil, nil
		return nil
	}
	if err != nil {
		return err
	}

	var p mainPayload
	if err = msgpack.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode main slice: %w", err)
	}
	c.entries, c.mainBlocks = p.Entries, indices
	return nil
}

func (c *Container) writeMainLocked(entries []storedEntry) error {
	raw, err := marshal(mainPayload{Entries: entries})
	if err != nil {
		return err
	}
	written, err := c.safe.codec.Store(c.keys.main, raw, c.mainPlacement)
	if err != nil {
		return err
	}
	if len(c.mainBlocks) > len(written) {
		if err = c.safe.codec.Trash(c.mainBlocks[len(written):]); err != nil {
			return err
		}
	}
	c.mainBlocks = written
	return nil
}

// readAppendLocked returns the sealed entries. A lost append slice reads
// as empty.
func (c *Container) readAppendLocked() ([][]byte, error) {
	raw, indices, err := c.safe.codec.Load(c.keys.append, c.appendPlacement)
	if errors.Is(err, slice.ErrSliceAbsent) {
		c.appendBlocks = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p appendPayload
	if err = msgpack.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode append slice: %w", err)
	}
	c.appendBlocks = indices
	return p.Sealed, nil
}

func (c *Container) writeAppendLocked(sealed [][]byte) error {
	raw, err := marshal(appendPayload{Sealed: sealed})
	if err != nil {
		return err
	}
	written, err := c.safe.codec.Store(c.keys.append, raw, c.appendPlacement)
	if err != nil {
		return err
	}
	if len(c.appendBlocks) > len(written) {
		if err = c.safe.codec.Trash(c.appendBlocks[len(written):]); err != nil {
			return err
		}
	}
	c.appendBlocks = written
	return nil
}

// loadPendingLocked unseals the append slice. Boxes that do not open are
// skipped like junk.
func (c *Container) loadPendingLocked() error {
	sealed, err := c.readAppendLocked()
	if err != nil {
		return err
	}

	c.pending = c.pending[:0]
	for _, box := range sealed {
		msg, err := c.safe.suite.Envelope.Unseal(c.keys.appendPrivate, box)
		if err != nil {
			continue
		}
		var e models.Entry
		if err = msgpack.Unmarshal(msg, &e); err != nil {
			continue
		}
		c.pending = append(c.pending, e)
	}
	return nil
}
