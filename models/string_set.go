// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// StringSet is an unordered set of strings. It is encoded to JSON as a sorted
// array so responses stay stable.
type StringSet map[string]struct{}

// NewStringSet returns a set holding every non-empty item.
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		s[item] = struct{}{}
	}
	return s
}

// SplitStringSet splits raw on single spaces and collects the parts into a
// set. Empty parts produced by repeated spaces are dropped.
func SplitStringSet(raw string) StringSet {
	if raw == "" {
		return StringSet{}
	}
	return NewStringSet(strings.Split(raw, " ")...)
}

// Has reports whether item is in the set.
func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Slice returns the items in lexical order.
func (s StringSet) Slice() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *StringSet) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}
