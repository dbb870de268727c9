// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/jba/redblack/logger"
	"github.com/jba/redblack/rbtree"
)

// The algebra below walks both operands in ascending order at once,
// advancing whichever cursor holds the smaller key (or both on a tie).
// Keys are compared with the receiver's comparator; both sets must be
// ordered the same way.

// which keys of a merge survive into the result
type keep struct {
	onlyS, onlyO, both bool
}

func (s *Set[K]) merge(op string, o *Set[K], want keep) (*Set[K], error) {
	var keys []K
	a, b := s.tree.Cursor(), o.tree.Cursor()
	okA, okB := a.Next(), b.Next()
	for okA && okB {
		c, err := s.tree.Compare(a.Key(), b.Key())
		if err != nil {
			return nil, err
		}
		switch {
		case c < 0:
			if want.onlyS {
				keys = append(keys, a.Key())
			}
			okA = a.Next()
		case c > 0:
			if want.onlyO {
				keys = append(keys, b.Key())
			}
			okB = b.Next()
		default:
			if want.both {
				keys = append(keys, a.Key())
			}
			okA, okB = a.Next(), b.Next()
		}
	}
	for ; okA && want.onlyS; okA = a.Next() {
		keys = append(keys, a.Key())
	}
	for ; okB && want.onlyO; okB = b.Next() {
		keys = append(keys, b.Key())
	}
	if logger.TraceEnabled("redblack") {
		logger.Tracef("%s of %d and %d keys has %d keys", op, s.Len(), o.Len(), len(keys))
	}
	return &Set[K]{tree: rbtree.Build[K, struct{}](s.tree.Comparator(), keys, nil)}, nil
}

// Union returns a new set with the keys in s, o or both.
func (s *Set[K]) Union(o *Set[K]) (*Set[K], error) {
	return s.merge("union", o, keep{onlyS: true, onlyO: true, both: true})
}

// Intersection returns a new set with the keys in both s and o.
func (s *Set[K]) Intersection(o *Set[K]) (*Set[K], error) {
	return s.merge("intersection", o, keep{both: true})
}

// Difference returns a new set with the keys of s that are not in o.
func (s *Set[K]) Difference(o *Set[K]) (*Set[K], error) {
	return s.merge("difference", o, keep{onlyS: true})
}

// SymmetricDifference returns a new set with the keys in exactly one of s and o.
func (s *Set[K]) SymmetricDifference(o *Set[K]) (*Set[K], error) {
	return s.merge("symmetric difference", o, keep{onlyS: true, onlyO: true})
}

// IsDisjoint reports whether s and o have no key in common.
func (s *Set[K]) IsDisjoint(o *Set[K]) (bool, error) {
	a, b := s.tree.Cursor(), o.tree.Cursor()
	okA, okB := a.Next(), b.Next()
	for okA && okB {
		c, err := s.tree.Compare(a.Key(), b.Key())
		if err != nil {
			return false, err
		}
		switch {
		case c < 0:
			okA = a.Next()
		case c > 0:
			okB = b.Next()
		default:
			return false, nil
		}
	}
	return true, nil
}

// subset reports whether every key of sub is in super,
// comparing keys with cmp.
func subset[K any](sub, super *Set[K], cmp func(a, b K) (int, error)) (bool, error) {
	if sub.Len() > super.Len() {
		return false, nil
	}
	a, b := sub.tree.Cursor(), super.tree.Cursor()
	okA, okB := a.Next(), b.Next()
	for okA {
		if !okB {
			return false, nil
		}
		c, err := cmp(a.Key(), b.Key())
		if err != nil {
			return false, err
		}
		switch {
		case c < 0:
			// a.Key() is smaller than everything left in super.
			return false, nil
		case c > 0:
			okB = b.Next()
		default:
			okA, okB = a.Next(), b.Next()
		}
	}
	return true, nil
}

// IsSubset reports whether every key of s is in o (s <= o).
func (s *Set[K]) IsSubset(o *Set[K]) (bool, error) {
	return subset(s, o, s.tree.Compare)
}

// IsProperSubset reports whether s is a subset of o and o has
// a key s lacks (s < o).
func (s *Set[K]) IsProperSubset(o *Set[K]) (bool, error) {
	if s.Len() >= o.Len() {
		return false, nil
	}
	return subset(s, o, s.tree.Compare)
}

// IsSuperset reports whether every key of o is in s (s >= o).
func (s *Set[K]) IsSuperset(o *Set[K]) (bool, error) {
	return subset(o, s, s.tree.Compare)
}

// IsProperSuperset reports whether s is a superset of o and s has
// a key o lacks (s > o).
func (s *Set[K]) IsProperSuperset(o *Set[K]) (bool, error) {
	if s.Len() <= o.Len() {
		return false, nil
	}
	return subset(o, s, s.tree.Compare)
}

// Equal reports whether s and o hold the same keys (s == o).
func (s *Set[K]) Equal(o *Set[K]) (bool, error) {
	if s.Len() != o.Len() {
		return false, nil
	}
	return subset(s, o, s.tree.Compare)
}
