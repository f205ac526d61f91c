// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is a single secret stored in a container.
// Key identifies the entry inside its container, Note is free-form text that
// is visible to list-only holders, Secret is only readable with full access.
type Entry struct {
	Key    string `msgpack:"key"`
	Note   string `msgpack:"note"`
	Secret string `msgpack:"secret"`
}

// EntryInfo is the part of an [Entry] that a list-only holder may see.
type EntryInfo struct {
	Key  string
	Note string

	// Pending is true for entries that were appended by an append-only
	// holder and have not been merged into the main slice yet.
	Pending bool
}

// Info strips the secret from e.
func (e Entry) Info() EntryInfo {
	return EntryInfo{Key: e.Key, Note: e.Note}
}
