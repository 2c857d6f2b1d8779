// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package props

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Typed accessors coerce scalars to the requested type. The parameter store
// returns every value as a string and the local JSON file yields json.Number,
// bool and string, so all three representations are accepted. def is returned
// when the path is missing, holds no scalar, or cannot be converted.

// String returns the scalar at path formatted as a string.
func (t *Tree) String(path, def string) string {
	v, ok := t.scalar(path)
	if !ok || v == nil {
		return def
	}

	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// Int returns the scalar at path as an int.
func (t *Tree) Int(path string, def int) int {
	v, ok := t.scalar(path)
	if !ok {
		return def
	}

	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return def
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return def
		}
		return i
	default:
		return def
	}
}

// Bool returns the scalar at path as a bool.
func (t *Tree) Bool(path string, def bool) bool {
	v, ok := t.scalar(path)
	if !ok {
		return def
	}

	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

// Duration returns the scalar at path as a time.Duration. Strings are parsed
// with time.ParseDuration ("30s", "1m"); bare numbers are taken as seconds.
func (t *Tree) Duration(path string, def time.Duration) time.Duration {
	v, ok := t.scalar(path)
	if !ok {
		return def
	}

	if s, isString := v.(string); isString {
		s = strings.TrimSpace(s)
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(s); err == nil {
			return time.Duration(secs) * time.Second
		}
		return def
	}

	secs := t.Int(path, -1)
	if secs < 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}

func (t *Tree) scalar(path string) (any, bool) {
	node, ok := t.Sub(path)
	if !ok || !node.hasValue {
		return nil, false
	}
	return node.value, true
}
