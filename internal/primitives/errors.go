package primitives

import "errors"

var (
	// ErrConfig indicates a malformed or unsupported primitive configuration.
	// It is fatal and surfaced when a safe is loaded.
	ErrConfig = errors.New("invalid primitive configuration")

	// ErrPrimitive indicates that a primitive rejected its inputs, for
	// example a key of the wrong length. It points to a config/key mismatch.
	ErrPrimitive = errors.New("primitive rejected input")

	// ErrAuthenticationFailed is returned by Envelope.Unseal when the sealed
	// message does not belong to the given private key or was corrupted.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")
)
