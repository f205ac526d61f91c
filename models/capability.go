// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Capability is the access level a password grants on a container.
//
// Master implies List and Append. List and Append are independent: neither
// key can be derived from the other.
type Capability uint8

const (
	// Master grants full access: list, read secrets, add, append and merge.
	Master Capability = iota

	// List grants read access to entry keys and notes only.
	List

	// Append grants write-only access to the append slice.
	Append
)

// Capabilities lists all capabilities in open preference order.
var Capabilities = []Capability{Master, List, Append}

// String returns the role tag used for key derivation.
func (c Capability) String() string {
	switch c {
	case Master:
		return "master"
	case List:
		return "list"
	case Append:
		return "append"
	default:
		return "unknown"
	}
}

// CanList reports whether entry keys and notes are readable.
func (c Capability) CanList() bool { return c == Master || c == List }

// CanAppend reports whether new entries may be appended.
func (c Capability) CanAppend() bool { return c == Master || c == Append }

// SliceKind identifies one of the five slices a container may own.
type SliceKind uint8

const (
	AccessMaster SliceKind = iota
	AccessList
	AccessAppend
	Main
	AppendQueue
)

// String returns the tag mixed into block placement derivation.
func (k SliceKind) String() string {
	switch k {
	case AccessMaster:
		return "access-master"
	case AccessList:
		return "access-list"
	case AccessAppend:
		return "access-append"
	case Main:
		return "main"
	case AppendQueue:
		return "append"
	default:
		return "unknown"
	}
}

// AccessKind returns the access slice kind unlocked by capability c.
func AccessKind(c Capability) SliceKind {
	switch c {
	case List:
		return AccessList
	case Append:
		return AccessAppend
	default:
		return AccessMaster
	}
}
