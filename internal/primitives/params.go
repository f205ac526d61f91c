// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package primitives

import (
	"fmt"
	"maps"
)

// Params is the configuration sub-mapping of one primitive as it is stored
// in the safe header, e.g. {"type": "argon2", "salt": ..., "cost": 1}.
//
// Values come either from Go code or from the msgpack decoder, so numeric
// accessors accept every integer width the decoder may produce.
type Params map[string]any

// Type returns the "type" discriminator.
func (p Params) Type() (string, error) {
	return p.String("type")
}

// String returns the string value under key.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: missing `%s' attribute", ErrConfig, key)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("%w: `%s' should be a string", ErrConfig, key)
	}
}

// Bytes returns the byte string value under key.
func (p Params) Bytes(key string) ([]byte, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing `%s' attribute", ErrConfig, key)
	}
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, fmt.Errorf("%w: `%s' should be a byte string", ErrConfig, key)
	}
}

// Int returns the integer value under key.
func (p Params) Int(key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing `%s' attribute", ErrConfig, key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%w: `%s' should be an integer", ErrConfig, key)
	}
	return n, nil
}

// IntOr returns the integer under key, or def when the key is absent.
func (p Params) IntOr(key string, def int) (int, error) {
	if _, ok := p[key]; !ok {
		return def, nil
	}
	return p.Int(key)
}

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	return maps.Clone(p)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}
