// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redblack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jba/redblack/fault"
	"github.com/jba/redblack/rbtree"
)

// A Map is a map[K]V ordered by a comparator.
// The zero Map has no comparator and must not be used; call [NewMap].
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V]
}

// NewMap returns an empty Map ordered by cmp.
func NewMap[K, V any](cmp Comparator[K]) *Map[K, V] {
	return &Map[K, V]{tree: rbtree.New[K, V](cmp)}
}

// FromPairs returns a Map ordered by cmp holding the pairs of seq.
// When a key repeats, the last value wins.
func FromPairs[K, V any](cmp Comparator[K], seq iter.Seq2[K, V]) (*Map[K, V], error) {
	m := NewMap[K, V](cmp)
	if err := m.Update(seq); err != nil {
		return nil, err
	}
	return m, nil
}

// Len returns the number of keys in m.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether m has no keys.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.Len() == 0 }

// Set sets m[key] = val.
// If the key was present, Set returns the old value and false.
// Otherwise it returns the zero value and true.
func (m *Map[K, V]) Set(key K, val V) (old V, added bool, err error) {
	x, added, err := m.tree.Put(key)
	if err != nil {
		return old, false, err
	}
	old = x.Value()
	x.SetValue(val)
	return old, added, nil
}

// Get returns the value of m[key].
// It fails with fault.KeyNotFound if key is not present.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	x, err := m.tree.Find(key)
	if err != nil {
		return zero, err
	}
	if x == nil {
		return zero, fault.NewError(fault.KeyNotFound, "key %v not found", key)
	}
	return x.Value(), nil
}

// GetOrDefault returns m[key], or def if key is not present.
func (m *Map[K, V]) GetOrDefault(key K, def V) (V, error) {
	x, err := m.tree.Find(key)
	if err != nil {
		return def, err
	}
	if x == nil {
		return def, nil
	}
	return x.Value(), nil
}

// Contains reports whether key is present in m.
func (m *Map[K, V]) Contains(key K) (bool, error) {
	x, err := m.tree.Find(key)
	return x != nil, err
}

// Remove deletes m[key] and returns its value.
// It fails with fault.KeyNotFound if key is not present.
func (m *Map[K, V]) Remove(key K) (V, error) {
	val, ok, err := m.tree.Delete(key)
	if err != nil {
		return val, err
	}
	if !ok {
		return val, fault.NewError(fault.KeyNotFound, "key %v not found", key)
	}
	return val, nil
}

// RemoveOrDefault deletes m[key] and returns its value,
// or returns def if key is not present.
func (m *Map[K, V]) RemoveOrDefault(key K, def V) (V, error) {
	val, ok, err := m.tree.Delete(key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return val, nil
}

// PopMin removes the smallest key from m and returns it with its value.
// It fails with fault.EmptyContainer if m is empty.
func (m *Map[K, V]) PopMin() (K, V, error) {
	x := m.tree.Min()
	if x == nil {
		var (
			k K
			v V
		)
		return k, v, fault.NewError(fault.EmptyContainer, "pop from an empty map")
	}
	k, v := m.tree.DeleteNode(x)
	return k, v, nil
}

// PopMax removes the largest key from m and returns it with its value.
// It fails with fault.EmptyContainer if m is empty.
func (m *Map[K, V]) PopMax() (K, V, error) {
	x := m.tree.Max()
	if x == nil {
		var (
			k K
			v V
		)
		return k, v, fault.NewError(fault.EmptyContainer, "pop from an empty map")
	}
	k, v := m.tree.DeleteNode(x)
	return k, v, nil
}

// Min returns the smallest key in m and its value.
// If m is empty, ok is false.
func (m *Map[K, V]) Min() (k K, v V, ok bool) {
	if x := m.tree.Min(); x != nil {
		return x.Key(), x.Value(), true
	}
	return k, v, false
}

// Max returns the largest key in m and its value.
// If m is empty, ok is false.
func (m *Map[K, V]) Max() (k K, v V, ok bool) {
	if x := m.tree.Max(); x != nil {
		return x.Key(), x.Value(), true
	}
	return k, v, false
}

// All returns an iterator over the keys and values of m
// from smallest to largest key.
// Each call returns a fresh, independent iterator.
// m must not be modified while the iterator is in use.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.tree.All() }

// Backward returns an iterator over the keys and values of m
// from largest to smallest key.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] { return m.tree.Backward() }

// Keys returns an iterator over the keys of m in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of m in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.tree.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Cursor returns a cursor over m in ascending key order.
func (m *Map[K, V]) Cursor() *rbtree.Cursor[K, V] { return m.tree.Cursor() }

// Update sets m[k] = v for each pair of seq, in order.
// It stops at the first key that cannot be ordered; the pairs before
// it remain in m.
func (m *Map[K, V]) Update(seq iter.Seq2[K, V]) error {
	for k, v := range seq {
		if _, _, err := m.tree.Insert(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Clear deletes all entries from m.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// Clone returns a copy of m with the same comparator.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Check validates m's underlying tree; see [rbtree.Tree.Check].
func (m *Map[K, V]) Check() error { return m.tree.Check() }

// String formats m as {k1: v1, k2: v2} in ascending key order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	for k, v := range m.tree.All() {
		fmt.Fprintf(&b, "%s%v: %v", sep, k, v)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}
