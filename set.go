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

// A Set is a set of keys ordered by a comparator.
// The zero Set has no comparator and must not be used; call [NewSet].
type Set[K any] struct {
	tree *rbtree.Tree[K, struct{}]
}

// NewSet returns an empty Set ordered by cmp.
func NewSet[K any](cmp Comparator[K]) *Set[K] {
	return &Set[K]{tree: rbtree.New[K, struct{}](cmp)}
}

// FromKeys returns a Set ordered by cmp holding the keys of seq.
func FromKeys[K any](cmp Comparator[K], seq iter.Seq[K]) (*Set[K], error) {
	s := NewSet(cmp)
	if err := s.Update(seq); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of keys in s.
func (s *Set[K]) Len() int { return s.tree.Len() }

// IsEmpty reports whether s has no keys.
func (s *Set[K]) IsEmpty() bool { return s.tree.Len() == 0 }

// Add adds key to s and reports whether it was absent.
// Adding a key that is already present leaves s unchanged.
func (s *Set[K]) Add(key K) (bool, error) {
	_, added, err := s.tree.Put(key)
	return added, err
}

// Discard removes key from s if it is present and reports whether it was.
func (s *Set[K]) Discard(key K) (bool, error) {
	_, ok, err := s.tree.Delete(key)
	return ok, err
}

// Remove removes key from s.
// It fails with fault.KeyNotFound if key is not present.
func (s *Set[K]) Remove(key K) error {
	ok, err := s.Discard(key)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NewError(fault.KeyNotFound, "key %v not found", key)
	}
	return nil
}

// Contains reports whether key is in s.
func (s *Set[K]) Contains(key K) (bool, error) {
	x, err := s.tree.Find(key)
	return x != nil, err
}

// Update adds every key of seq to s.
// It stops at the first key that cannot be ordered; the keys before
// it remain in s.
func (s *Set[K]) Update(seq iter.Seq[K]) error {
	for k := range seq {
		if _, _, err := s.tree.Put(k); err != nil {
			return err
		}
	}
	return nil
}

// PopMin removes and returns the smallest key in s.
// It fails with fault.EmptyContainer if s is empty.
func (s *Set[K]) PopMin() (K, error) {
	x := s.tree.Min()
	if x == nil {
		var zero K
		return zero, fault.NewError(fault.EmptyContainer, "pop from an empty set")
	}
	k, _ := s.tree.DeleteNode(x)
	return k, nil
}

// Min returns the smallest key in s. If s is empty, ok is false.
func (s *Set[K]) Min() (k K, ok bool) {
	if x := s.tree.Min(); x != nil {
		return x.Key(), true
	}
	return k, false
}

// Max returns the largest key in s. If s is empty, ok is false.
func (s *Set[K]) Max() (k K, ok bool) {
	if x := s.tree.Max(); x != nil {
		return x.Key(), true
	}
	return k, false
}

// All returns an iterator over the keys of s in ascending order.
// s must not be modified while the iterator is in use.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Backward returns an iterator over the keys of s in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clear removes all keys from s.
func (s *Set[K]) Clear() { s.tree.Clear() }

// Clone returns a copy of s with the same comparator.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// Check validates s's underlying tree; see [rbtree.Tree.Check].
func (s *Set[K]) Check() error { return s.tree.Check() }

// String formats s as {k1, k2} in ascending order.
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	for k := range s.tree.All() {
		fmt.Fprintf(&b, "%s%v", sep, k)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}
