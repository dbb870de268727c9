// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package redblack implements in-memory ordered maps and sets.
//
// [Map][K, V] and [Set][K] iterate in ascending key order and perform every
// single-key operation in O(log n) worst-case time. Both are backed by the
// red-black tree in package [github.com/jba/redblack/rbtree].
//
// Every Map and Set is ordered by an explicitly supplied [Comparator]; there
// is no default order. A comparator may refuse to order two keys, in which
// case the operation fails with a fault.InvalidKey error and the container is
// left unchanged.
//
// Maps and sets are not safe for concurrent use. Modifying a Map or Set while
// iterating over it is a contract violation: the iteration may skip or repeat
// keys, or panic.
package redblack

import (
	"cmp"

	"github.com/jba/redblack/rbtree"
)

// A Comparator orders keys; see [rbtree.Comparator].
type Comparator[K any] = rbtree.Comparator[K]

// CompareFunc returns a Comparator from a three-way comparison function.
func CompareFunc[K any](f func(a, b K) int) Comparator[K] { return rbtree.Compare(f) }

// LessFunc returns a Comparator from a strict weak ordering.
func LessFunc[K any](less func(a, b K) bool) Comparator[K] { return rbtree.Less(less) }

// Ordered returns a Comparator for K's standard Go ordering.
func Ordered[K cmp.Ordered]() Comparator[K] { return rbtree.Ordered[K]() }

// CompareAny orders dynamically typed keys; see [rbtree.CompareAny].
func CompareAny(a, b any) (int, error) { return rbtree.CompareAny(a, b) }
