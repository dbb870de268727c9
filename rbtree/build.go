// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"math/bits"

	"github.com/jba/redblack/logger"
)

// Build returns a tree ordered by cmp holding keys[i] with value vals[i].
// keys must be in strictly ascending order under cmp; Build does not call cmp
// and does not check. vals may be nil, in which case every value is the zero V;
// otherwise it must be as long as keys.
//
// Build runs in O(len(keys)) time.
func Build[K, V any](cmp Comparator[K], keys []K, vals []V) *Tree[K, V] {
	t := New[K, V](cmp)
	if vals != nil && len(vals) != len(keys) {
		panic("rbtree: Build with mismatched keys and values")
	}
	n := len(keys)
	if n == 0 {
		return t
	}
	// Splitting at the midpoint keeps the two subtrees of every node within
	// one node of each other in size, so every missing child sits at depth
	// redDepth or redDepth+1. Coloring exactly the nodes at depth redDepth
	// red gives every path redDepth black nodes.
	redDepth := bits.Len(uint(n+1)) - 1

	var build func(lo, hi, depth int, parent *Node[K, V]) *Node[K, V]
	build = func(lo, hi, depth int, parent *Node[K, V]) *Node[K, V] {
		if lo >= hi {
			return nil
		}
		mid := int(uint(lo+hi) >> 1)
		x := &Node[K, V]{key: keys[mid], parent: parent, color: black}
		if vals != nil {
			x.val = vals[mid]
		}
		if depth == redDepth {
			x.color = red
		}
		x.left = build(lo, mid, depth+1, x)
		x.right = build(mid+1, hi, depth+1, x)
		return x
	}
	t.root = build(0, n, 0, nil)
	t.size = n
	if logger.TraceEnabled("rbtree") {
		logger.Tracef("built tree of %d nodes, black-height %d", n, redDepth)
	}
	return t
}
