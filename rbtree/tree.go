// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rbtree implements a red-black tree ordered by a caller-supplied
// [Comparator].
//
// A [Tree] keeps these invariants between calls:
//   - every key in a node's left subtree is less than the node's key and every
//     key in its right subtree is greater; no two nodes hold equal keys;
//   - the root is black, a red node has no red child, and every path from a
//     node down to a missing child passes the same number of black nodes;
//   - Len equals the number of nodes reachable from the root.
//
// Trees are not safe for concurrent use. A [Cursor] or [Node] obtained from a
// tree is invalidated by any Insert, Put or Delete on that tree; using it
// afterwards is a contract violation with unspecified results.
package rbtree

// The insert and delete fixups follow Cormen, Leiserson, Rivest and Stein,
// Introduction to Algorithms, chapter 13, with nil standing in for the
// sentinel leaf.

import (
	"github.com/jba/redblack/fault"
	"github.com/jba/redblack/logger"
)

type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == black {
		return "B"
	}
	return "R"
}

// A Node is a node in a Tree.
type Node[K, V any] struct {
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	key    K
	val    V
	color  color
}

// Key returns the node's key.
func (x *Node[K, V]) Key() K { return x.key }

// Value returns the value associated with the node's key.
func (x *Node[K, V]) Value() V { return x.val }

// SetValue replaces the value associated with the node's key.
func (x *Node[K, V]) SetValue(v V) { x.val = v }

// A Tree is a red-black tree of keys of type K with associated values of type V.
// The zero Tree has no comparator; use [New].
type Tree[K, V any] struct {
	root *Node[K, V]
	size int
	cmp  Comparator[K]
}

// New returns an empty tree ordered by cmp.
func New[K, V any](cmp Comparator[K]) *Tree[K, V] {
	if cmp == nil {
		panic("rbtree: nil comparator")
	}
	return &Tree[K, V]{cmp: cmp}
}

// Len returns the number of nodes in t.
func (t *Tree[K, V]) Len() int { return t.size }

// Comparator returns the comparator that orders t.
func (t *Tree[K, V]) Comparator() Comparator[K] { return t.cmp }

// Compare orders a and b with t's comparator.
// A comparator failure is reported as a fault.InvalidKey error.
func (t *Tree[K, V]) Compare(a, b K) (int, error) {
	c, err := t.cmp(a, b)
	if err != nil {
		logger.TracefWithError(err, "keys %v and %v are not mutually orderable", a, b)
		return 0, fault.AddError(err, fault.InvalidKey)
	}
	return c, nil
}

// find reports where a node with the key would be: at *pos.
// If *pos != nil, then key is present in the tree;
// otherwise *pos is where a new node with the key should be attached.
//
// If parent != nil, then pos is either &parent.left or &parent.right
// depending on how parent.key compares with key.
// If parent == nil, then pos is &t.root.
//
// find does not modify t, even when it fails.
func (t *Tree[K, V]) find(key K) (pos **Node[K, V], parent *Node[K, V], err error) {
	pos = &t.root
	for x := *pos; x != nil; x = *pos {
		c, err := t.Compare(x.key, key)
		if err != nil {
			return nil, nil, err
		}
		if c == 0 {
			break
		}
		parent = x
		if c > 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent, nil
}

// Find returns the node holding key, or nil if there is none.
func (t *Tree[K, V]) Find(key K) (*Node[K, V], error) {
	pos, _, err := t.find(key)
	if err != nil {
		return nil, err
	}
	return *pos, nil
}

// Put returns the node holding key, creating it with the zero value if it
// does not exist. It reports whether the node was created.
// An existing node's value is left untouched.
func (t *Tree[K, V]) Put(key K) (x *Node[K, V], added bool, err error) {
	pos, parent, err := t.find(key)
	if err != nil {
		return nil, false, err
	}
	if x := *pos; x != nil {
		return x, false, nil
	}
	x = &Node[K, V]{key: key, parent: parent, color: red}
	*pos = x
	t.size++
	t.insertFixup(x)
	return x, true, nil
}

// Insert sets the value of key to val, adding key if it is absent.
// It returns the key's node and reports whether the key was added.
func (t *Tree[K, V]) Insert(key K, val V) (*Node[K, V], bool, error) {
	x, added, err := t.Put(key)
	if err != nil {
		return nil, false, err
	}
	x.val = val
	return x, added, nil
}

func isRed[K, V any](x *Node[K, V]) bool {
	return x != nil && x.color == red
}

// insertFixup restores the color invariants after x was attached as a red leaf.
func (t *Tree[K, V]) insertFixup(x *Node[K, V]) {
	for p := x.parent; isRed(p); p = x.parent {
		// p is red, so it is not the root and g exists.
		g := p.parent
		if p == g.left {
			if u := g.right; isRed(u) {
				p.color, u.color, g.color = black, black, red
				x = g
				continue
			}
			if x == p.right {
				// Inner grandchild: rotate into the outer position.
				x = p
				t.rotateLeft(x)
				p = x.parent
			}
			p.color, g.color = black, red
			t.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.color, u.color, g.color = black, black, red
				x = g
				continue
			}
			if x == p.left {
				x = p
				t.rotateRight(x)
				p = x.parent
			}
			p.color, g.color = black, red
			t.rotateLeft(g)
		}
	}
	t.root.color = black
}

// Delete removes key from t, returning its value and reporting whether it was present.
// If key is absent, t is unchanged.
func (t *Tree[K, V]) Delete(key K) (val V, ok bool, err error) {
	pos, _, err := t.find(key)
	if err != nil {
		return val, false, err
	}
	if *pos == nil {
		return val, false, nil
	}
	_, val = t.DeleteNode(*pos)
	return val, true, nil
}

// DeleteNode removes x from t and returns the key and value it held.
// x must be a node of t.
//
// When x has two children, its key and value are replaced by those of its
// in-order successor and the successor's node is removed instead, so other
// Node handles into t must be considered invalid afterwards.
func (t *Tree[K, V]) DeleteNode(x *Node[K, V]) (K, V) {
	key, val := x.key, x.val
	if x.left != nil && x.right != nil {
		y := x.right.minNode()
		x.key, x.val = y.key, y.val
		x = y
	}

	// x has at most one child.
	child := x.left
	if child == nil {
		child = x.right
	}
	parent := x.parent
	if child != nil {
		child.parent = parent
	}
	t.replaceChild(parent, x, child)
	t.size--
	if x.color == black {
		t.deleteFixup(child, parent)
	}

	var zk K
	var zv V
	x.parent, x.left, x.right, x.key, x.val = nil, nil, nil, zk, zv
	return key, val
}

// replaceChild puts new where old was under parent.
func (t *Tree[K, V]) replaceChild(parent, old, new *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = new
	case parent.left == old:
		parent.left = new
	case parent.right == old:
		parent.right = new
	default:
		panic("rbtree: corrupt tree")
	}
}

// deleteFixup restores black-height uniformity after a black node was removed
// from under parent and x (possibly nil) took its place. x carries the
// missing black.
func (t *Tree[K, V]) deleteFixup(x, parent *Node[K, V]) {
	for x != t.root && !isRed(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.color, parent.color = black, red
				t.rotateLeft(parent)
				w = parent.right
			}
			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if !isRed(w.right) {
				// Near child red, far child black.
				w.left.color, w.color = black, red
				t.rotateRight(w)
				w = parent.right
			}
			w.color, parent.color, w.right.color = parent.color, black, black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			if isRed(w) {
				w.color, parent.color = black, red
				t.rotateRight(parent)
				w = parent.left
			}
			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if !isRed(w.left) {
				w.right.color, w.color = black, red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color, parent.color, w.left.color = parent.color, black, black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != nil {
		x.color = black
	}
}

// rotateLeft rotates the subtree rooted at node x.
// turning (x a (y b c)) into (y (x a b) c).
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	// p -> (x a (y b c))
	p := x.parent
	y := x.right
	b := y.left

	y.left = x
	x.parent = y
	x.right = b
	if b != nil {
		b.parent = x
	}

	y.parent = p
	t.replaceChild(p, x, y)
}

// rotateRight rotates the subtree rooted at node y.
// turning (y (x a b) c) into (x a (y b c)).
func (t *Tree[K, V]) rotateRight(y *Node[K, V]) {
	// p -> (y (x a b) c)
	p := y.parent
	x := y.left
	b := x.right

	x.right = y
	y.parent = x
	y.left = b
	if b != nil {
		b.parent = y
	}

	x.parent = p
	t.replaceChild(p, y, x)
}

// Min returns the node with the smallest key, or nil if t is empty.
func (t *Tree[K, V]) Min() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.minNode()
}

// Max returns the node with the largest key, or nil if t is empty.
func (t *Tree[K, V]) Max() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.maxNode()
}

// Clear removes all nodes from t.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Clone returns a copy of t with the same comparator.
// Keys and values are copied by assignment.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{root: t.root.clone(nil), size: t.size, cmp: t.cmp}
}

func (x *Node[K, V]) clone(parent *Node[K, V]) *Node[K, V] {
	if x == nil {
		return nil
	}
	c := *x
	x2 := &c
	x2.left = x.left.clone(x2)
	x2.right = x.right.clone(x2)
	x2.parent = parent
	return x2
}
