package group

import "errors"

var (
	// ErrNotThisKey means a block was not produced under the given key.
	// To anyone but the key holder this is the same as the block being junk.
	ErrNotThisKey = errors.New("block does not decode under this key")

	// ErrInvalidParams is returned for group parameters that are not a safe
	// prime with a generator of its quadratic residue subgroup, or that are
	// too small for the requested plaintext capacity.
	ErrInvalidParams = errors.New("invalid group parameters")

	// ErrPlaintextSize is returned when a plaintext does not have exactly
	// the group's per-block capacity.
	ErrPlaintextSize = errors.New("plaintext size does not match block capacity")
)
