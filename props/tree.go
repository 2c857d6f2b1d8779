// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package props implements the nested configuration tree that the starter
// assembles from flat key/value sources (the SSM parameter store or the local
// JSON config file).
//
// Keys are dotted paths: inserting "sys.registry.url" creates the nodes
// "sys" → "registry" → "url". A node may hold a scalar value and children at
// the same time; merging overwrites scalars and accumulates children, so a
// key that first arrives as a scalar and later as a subtree (or the other way
// round) never produces an error.
//
// A Tree is built during the single-threaded startup phase and must be
// treated as read-only once the server starts accepting traffic. It is not
// safe for concurrent mutation.
package props

import (
	"encoding/json"
	"sort"
	"strings"
)

const (
	// separator splits a dotted key into path segments.
	separator = "."

	// ValueKey is the key under which a node's own scalar is exported when the
	// node also has children.
	ValueKey = "_value"
)

// Tree is a node of the configuration tree.
type Tree struct {
	value    any
	hasValue bool
	children map[string]*Tree
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{children: make(map[string]*Tree)}
}

func newLeaf(value any) *Tree {
	t := New()
	t.assign(value)
	return t
}

// FromFlatMap builds a tree from a flat map whose keys are dotted paths.
//
// Keys are inserted in lexical order so that the result does not depend on map
// iteration order. Values of type map[string]any are expanded into subtrees.
// Empty keys and keys containing empty segments ("a..b", ".a") are skipped.
func FromFlatMap(entries map[string]any) *Tree {
	t := New()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		t.Set(k, entries[k])
	}

	return t
}

// Set inserts value at the dotted key, creating intermediate nodes as needed.
// Setting a scalar on a node keeps its children; setting a map merges it into
// the node's children.
func (t *Tree) Set(key string, value any) {
	segments, ok := splitKey(key)
	if !ok {
		return
	}

	node := t
	for _, segment := range segments {
		node = node.child(segment)
	}
	node.assign(value)
}

// Merge deep-unions other into t and returns t for chaining.
//
// For every path present in both trees the scalar of other wins; children are
// unioned recursively. Nodes of other are cloned, so the two trees never share
// state afterwards. A nil or empty other is a no-op.
func (t *Tree) Merge(other *Tree) *Tree {
	if other == nil {
		return t
	}

	if other.hasValue {
		t.value = other.value
		t.hasValue = true
	}

	for key, src := range other.children {
		if dst, ok := t.children[key]; ok {
			dst.Merge(src)
			continue
		}
		if t.children == nil {
			t.children = make(map[string]*Tree)
		}
		t.children[key] = src.clone()
	}

	return t
}

// Get looks up a dotted path and returns the node's scalar, or the nested map
// export of the node when it holds no scalar. def is returned when any segment
// of the path is missing.
func (t *Tree) Get(path string, def any) any {
	node, ok := t.Sub(path)
	if !ok {
		return def
	}
	if node.hasValue {
		return node.value
	}
	return node.ToNestedMap()
}

// Sub returns the node at the dotted path.
func (t *Tree) Sub(path string) (*Tree, bool) {
	segments, ok := splitKey(path)
	if !ok {
		return nil, false
	}

	node := t
	for _, segment := range segments {
		next, found := node.children[segment]
		if !found {
			return nil, false
		}
		node = next
	}

	return node, true
}

// Has reports whether the dotted path exists.
func (t *Tree) Has(path string) bool {
	_, ok := t.Sub(path)
	return ok
}

// Pop removes the direct child named key and returns it.
//
// When there is no such child, the receiver is left untouched and Pop returns
// a tree built from def: FromFlatMap(def) for a map[string]any, a copy of def
// for a *Tree, a leaf holding def for any other non-nil value, and an empty
// tree for nil.
func (t *Tree) Pop(key string, def any) *Tree {
	if child, ok := t.children[key]; ok {
		delete(t.children, key)
		return child
	}

	switch d := def.(type) {
	case nil:
		return New()
	case map[string]any:
		return FromFlatMap(d)
	case *Tree:
		return d.clone()
	default:
		return newLeaf(d)
	}
}

// Value returns the node's own scalar.
func (t *Tree) Value() (any, bool) {
	return t.value, t.hasValue
}

// Keys returns the names of the direct children in lexical order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, len(t.children))
	for k := range t.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of direct children.
func (t *Tree) Len() int {
	return len(t.children)
}

// IsEmpty reports whether the node holds neither a scalar nor children.
func (t *Tree) IsEmpty() bool {
	return !t.hasValue && len(t.children) == 0
}

// ToNestedMap exports the tree as plain nested maps with undotted keys.
// Leaves become their scalar; a node holding both a scalar and children keeps
// the scalar under [ValueKey].
func (t *Tree) ToNestedMap() map[string]any {
	out := make(map[string]any, len(t.children)+1)
	for k, child := range t.children {
		out[k] = child.export()
	}
	if t.hasValue {
		out[ValueKey] = t.value
	}
	return out
}

// ToFlatMap exports the tree as a flat map of dotted keys, the inverse of
// [FromFlatMap]. Branches without a scalar produce no entry of their own.
func (t *Tree) ToFlatMap() map[string]any {
	out := make(map[string]any)
	if t.hasValue {
		out[ValueKey] = t.value
	}
	for k, child := range t.children {
		child.flatten(k, out)
	}
	return out
}

// MarshalJSON encodes the nested map export, which keeps zerolog's Any and
// fmt-free debugging readable.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToNestedMap())
}

func (t *Tree) export() any {
	if len(t.children) == 0 {
		if t.hasValue {
			return t.value
		}
		return map[string]any{}
	}
	return t.ToNestedMap()
}

func (t *Tree) flatten(prefix string, out map[string]any) {
	if t.hasValue {
		out[prefix] = t.value
	}
	for k, child := range t.children {
		child.flatten(prefix+separator+k, out)
	}
}

func (t *Tree) assign(value any) {
	switch v := value.(type) {
	case map[string]any:
		t.Merge(FromFlatMap(v))
	case *Tree:
		t.Merge(v)
	default:
		t.value = v
		t.hasValue = true
	}
}

func (t *Tree) child(key string) *Tree {
	if t.children == nil {
		t.children = make(map[string]*Tree)
	}
	node, ok := t.children[key]
	if !ok {
		node = New()
		t.children[key] = node
	}
	return node
}

func (t *Tree) clone() *Tree {
	c := &Tree{
		value:    t.value,
		hasValue: t.hasValue,
		children: make(map[string]*Tree, len(t.children)),
	}
	for k, child := range t.children {
		c.children[k] = child.clone()
	}
	return c
}

func splitKey(key string) ([]string, bool) {
	if key == "" {
		return nil, false
	}
	segments := strings.Split(key, separator)
	for _, s := range segments {
		if s == "" {
			return nil, false
		}
	}
	return segments, true
}
