// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"strings"

	"github.com/jba/redblack/fault"
	"github.com/jba/redblack/logger"
)

// Check validates the structural invariants of t: parent links, the root's
// color, the absence of red-red parent/child pairs, uniform black-height,
// strictly ascending key order and the node count.
// A violation is reported as a fault.CorruptTree error.
func (t *Tree[K, V]) Check() error {
	err := t.check()
	if err != nil {
		logger.ErrorfWithError(err, "tree failed its invariant check")
	}
	return err
}

func (t *Tree[K, V]) check() error {
	if t.root == nil {
		if t.size != 0 {
			return fault.NewError(fault.CorruptTree, "rbtree: empty tree has size %d", t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fault.NewError(fault.CorruptTree, "rbtree: root %v has a parent", t.root.key)
	}
	if t.root.color != black {
		return fault.NewError(fault.CorruptTree, "rbtree: root %v is red", t.root.key)
	}
	count, _, err := checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fault.NewError(fault.CorruptTree, "rbtree: size is %d but %d nodes are reachable", t.size, count)
	}

	// In-order keys strictly ascending is equivalent to the search-tree order.
	prev := t.root.minNode()
	for x := prev.Next(); x != nil; prev, x = x, x.Next() {
		c, err := t.Compare(prev.key, x.key)
		if err != nil {
			return err
		}
		if c >= 0 {
			return fault.NewError(fault.CorruptTree, "rbtree: key %v is followed by %v", prev.key, x.key)
		}
	}
	return nil
}

// checkNode returns the number of nodes under x and x's black-height,
// counting x itself but not missing children.
func checkNode[K, V any](x *Node[K, V]) (count, blackHeight int, err error) {
	if x == nil {
		return 0, 0, nil
	}
	for _, c := range []*Node[K, V]{x.left, x.right} {
		if c == nil {
			continue
		}
		if c.parent != x {
			return 0, 0, fault.NewError(fault.CorruptTree, "rbtree: node %v has wrong parent link", c.key)
		}
		if x.color == red && c.color == red {
			return 0, 0, fault.NewError(fault.CorruptTree, "rbtree: red node %v has red child %v", x.key, c.key)
		}
	}
	lc, lh, err := checkNode(x.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := checkNode(x.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fault.NewError(fault.CorruptTree, "rbtree: node %v has black-heights %d and %d", x.key, lh, rh)
	}
	if x.color == black {
		lh++
	}
	return lc + rc + 1, lh, nil
}

// String returns the structure of t for debugging, as nested
// "(key color left right)" lists with "nil" for missing children.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	var walk func(*Node[K, V])
	walk = func(x *Node[K, V]) {
		if x == nil {
			b.WriteString("nil")
			return
		}
		fmt.Fprintf(&b, "(%v %s ", x.key, x.color)
		walk(x.left)
		b.WriteByte(' ')
		walk(x.right)
		b.WriteByte(')')
	}
	walk(t.root)
	return b.String()
}
