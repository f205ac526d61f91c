// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials open a container: either a password or an encoded capability
// key handed out by a container owner. Key wins when both are set.
type Credentials struct {
	Password string
	Key      string
}

// Empty reports whether neither a password nor a key is set.
func (c Credentials) Empty() bool {
	return c.Password == "" && c.Key == ""
}
