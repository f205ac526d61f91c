// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages printed by the pol command.
//
// All Msg* constants are written to stderr when a command fails. Keeping
// them in one place keeps the wording consistent across commands and makes
// sure that a failed open never says more than the safe itself reveals.
package app

const (
	// MsgWrongPassword is printed when no container opens with the given
	// password or key. It does not say whether a container exists.
	MsgWrongPassword = "wrong password"

	// MsgNoCredentials is printed when neither -password, POL_PASSWORD nor
	// -key was provided.
	MsgNoCredentials = "no password or key provided"

	// MsgBadKey is printed when a -key value is not a capability key.
	MsgBadKey = "malformed capability key"

	// MsgSafeNotFound is printed when the safe file does not exist. Run
	// `pol init` first.
	MsgSafeNotFound = "safe file not found, run `pol init` first"

	// MsgSafeExists is printed when `pol init` would overwrite a safe.
	MsgSafeExists = "safe file already exists"

	// MsgSafeCorrupt is printed when the safe file cannot be parsed.
	MsgSafeCorrupt = "safe file is corrupt or not a safe"

	// MsgSafeFull is printed when the container does not fit into the safe.
	MsgSafeFull = "not enough free blocks in the safe"

	// MsgNoBlocks is printed when the safe has no blocks at all.
	MsgNoBlocks = "the safe has no blocks"

	// MsgEntryNotFound is printed when `pol get` names an unknown entry.
	MsgEntryNotFound = "entry not found"

	// MsgDuplicateEntry is printed when `pol add` reuses an entry key.
	MsgDuplicateEntry = "an entry with this key already exists"

	// MsgEmptyEntryKey is printed when an entry is added without a key.
	MsgEmptyEntryKey = "entry key is empty"

	// MsgInvalidEntry is printed when an entry key has control characters
	// or a field exceeds its length limit.
	MsgInvalidEntry = "invalid entry: keys must be printable and fields short enough"

	// MsgAccessDenied is printed when the password grants a weaker
	// capability than the command needs.
	MsgAccessDenied = "access denied for this password"

	// MsgAccessCollision is printed when the passwords of a new container
	// land on the same blocks. Another password has to be chosen.
	MsgAccessCollision = "passwords collide in this safe, choose another one"

	// MsgSaveFailed is printed when the safe could not be written. The safe
	// file on disk is unchanged.
	MsgSaveFailed = "saving the safe failed, the safe file is unchanged"

	// MsgInvalidConfig is printed when the configuration is invalid.
	MsgInvalidConfig = "invalid configuration"

	// MsgUnknownCommand is printed for an unknown subcommand.
	MsgUnknownCommand = "unknown command"

	// MsgInternalError is printed for any other failure.
	MsgInternalError = "internal error"
)
