// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import "iter"

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *Node[K, V]) minNode() *Node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *Node[K, V]) maxNode() *Node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Next returns the in-order successor of x, or nil if x holds the largest key.
func (x *Node[K, V]) Next() *Node[K, V] {
	if x.right == nil {
		for x.parent != nil && x.parent.right == x {
			x = x.parent
		}
		return x.parent
	}
	return x.right.minNode()
}

// Prev returns the in-order predecessor of x, or nil if x holds the smallest key.
func (x *Node[K, V]) Prev() *Node[K, V] {
	if x.left == nil {
		for x.parent != nil && x.parent.left == x {
			x = x.parent
		}
		return x.parent
	}
	return x.left.maxNode()
}

// A Cursor walks the nodes of a tree in key order, one node per call to Next.
// A Cursor is not restartable; make a new one to walk the tree again.
//
//	c := t.Cursor()
//	for c.Next() {
//		use(c.Key(), c.Value())
//	}
//
// Inserting into or deleting from the tree invalidates its cursors.
type Cursor[K, V any] struct {
	cur      *Node[K, V]
	next     *Node[K, V]
	backward bool
}

// Cursor returns a cursor over t in ascending key order.
func (t *Tree[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{next: t.Min()}
}

// ReverseCursor returns a cursor over t in descending key order.
func (t *Tree[K, V]) ReverseCursor() *Cursor[K, V] {
	return &Cursor[K, V]{next: t.Max(), backward: true}
}

// Next advances c to the following node and reports whether there is one.
func (c *Cursor[K, V]) Next() bool {
	c.cur = c.next
	if c.cur == nil {
		return false
	}
	if c.backward {
		c.next = c.cur.Prev()
	} else {
		c.next = c.cur.Next()
	}
	return true
}

// Node returns the current node, or nil before the first call to Next
// and after Next has returned false.
func (c *Cursor[K, V]) Node() *Node[K, V] { return c.cur }

// Key returns the current node's key. Next must have returned true.
func (c *Cursor[K, V]) Key() K { return c.cur.key }

// Value returns the current node's value. Next must have returned true.
func (c *Cursor[K, V]) Value() V { return c.cur.val }

// All returns an iterator over t from smallest to largest key.
// The tree must not be modified during the iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := t.Min(); x != nil && yield(x.key, x.val); x = x.Next() {
		}
	}
}

// Backward returns an iterator over t from largest to smallest key.
// The tree must not be modified during the iteration.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := t.Max(); x != nil && yield(x.key, x.val); x = x.Prev() {
		}
	}
}
