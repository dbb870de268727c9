// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redblack

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jba/redblack/fault"
)

// pairShapes returns pairs of key lists of each shape the algebra must handle.
func pairShapes(n int) map[string][2][]int {
	var evens, odds, lo, hi, some []int
	for i := range 2 * n {
		if i%2 == 0 {
			evens = append(evens, i)
		} else {
			odds = append(odds, i)
		}
		if i < 3*n/2 {
			lo = append(lo, i)
		}
		if i >= n/2 {
			hi = append(hi, i)
		}
		if rand.IntN(2) == 0 {
			some = append(some, i)
		}
	}
	all := append(slices.Clone(evens), odds...)
	return map[string][2][]int{
		"disjoint":    {evens, odds},
		"overlapping": {lo, hi},
		"subset":      {some, all},
		"superset":    {all, some},
		"equal":       {some, slices.Clone(some)},
		"emptyLeft":   {nil, some},
		"emptyRight":  {some, nil},
	}
}

func members(keys []int) map[int]bool {
	m := map[int]bool{}
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// refKeys returns the sorted keys k of a and b for which keep(inA, inB) is true.
func refKeys(a, b []int, keep func(inA, inB bool) bool) []int {
	ma, mb := members(a), members(b)
	var r []int
	for k := range members(append(slices.Clone(a), b...)) {
		if keep(ma[k], mb[k]) {
			r = append(r, k)
		}
	}
	slices.Sort(r)
	return r
}

func refSubset(a, b []int) bool {
	mb := members(b)
	for _, k := range a {
		if !mb[k] {
			return false
		}
	}
	return true
}

func TestAlgebra(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 64, 301} {
		for name, p := range pairShapes(n) {
			a, b := intSet(t, p[0]...), intSet(t, p[1]...)
			for _, op := range []struct {
				name string
				f    func(*Set[int]) (*Set[int], error)
				keep func(inA, inB bool) bool
			}{
				{"Union", a.Union, func(x, y bool) bool { return x || y }},
				{"Intersection", a.Intersection, func(x, y bool) bool { return x && y }},
				{"Difference", a.Difference, func(x, y bool) bool { return x && !y }},
				{"SymmetricDifference", a.SymmetricDifference, func(x, y bool) bool { return x != y }},
			} {
				got, err := op.f(b)
				require.NoError(t, err)
				if err := got.Check(); err != nil {
					t.Fatalf("n=%d %s %s: %v", n, name, op.name, err)
				}
				want := refKeys(p[0], p[1], op.keep)
				if have := slices.Collect(got.All()); !slices.Equal(have, want) {
					t.Errorf("n=%d %s %s = %v, want %v", n, name, op.name, have, want)
				}
			}

			subAB, superAB := refSubset(p[0], p[1]), refSubset(p[1], p[0])
			equal := subAB && superAB
			disjoint := len(refKeys(p[0], p[1], func(x, y bool) bool { return x && y })) == 0
			for _, pred := range []struct {
				name string
				f    func(*Set[int]) (bool, error)
				want bool
			}{
				{"IsDisjoint", a.IsDisjoint, disjoint},
				{"IsSubset", a.IsSubset, subAB},
				{"IsProperSubset", a.IsProperSubset, subAB && !equal},
				{"Equal", a.Equal, equal},
				{"IsSuperset", a.IsSuperset, superAB},
				{"IsProperSuperset", a.IsProperSuperset, superAB && !equal},
			} {
				got, err := pred.f(b)
				require.NoError(t, err)
				if got != pred.want {
					t.Errorf("n=%d %s: %s = %t, want %t\nA: %v\nB: %v", n, name, pred.name, got, pred.want, a, b)
				}
			}

			// Operands are unchanged.
			assert.Equal(t, members(p[0]), members(slices.Collect(a.All())))
			assert.Equal(t, members(p[1]), members(slices.Collect(b.All())))
		}
	}
}

func TestAlgebraScenario(t *testing.T) {
	a := intSet(t, 1, 2, 3, 4)
	b := intSet(t, 3, 4, 5, 6)
	for _, tc := range []struct {
		f    func(*Set[int]) (*Set[int], error)
		want string
	}{
		{a.Difference, "{1, 2}"},
		{a.Intersection, "{3, 4}"},
		{a.Union, "{1, 2, 3, 4, 5, 6}"},
		{a.SymmetricDifference, "{1, 2, 5, 6}"},
	} {
		got, err := tc.f(b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String())
	}

	disjoint, err := a.IsDisjoint(b)
	require.NoError(t, err)
	assert.False(t, disjoint)
	eq, err := a.Equal(a.Clone())
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestAlgebraResultIsIndependent(t *testing.T) {
	a := intSet(t, 1, 2, 3)
	b := intSet(t, 2, 3, 4)
	u, err := a.Union(b)
	require.NoError(t, err)
	_, err = u.Add(10)
	require.NoError(t, err)
	_, err = u.Discard(1)
	require.NoError(t, err)
	require.NoError(t, u.Check())
	assert.Equal(t, "{2, 3, 4, 10}", u.String())
	assert.Equal(t, "{1, 2, 3}", a.String())
	assert.Equal(t, "{2, 3, 4}", b.String())
}

func TestAlgebraInvalidKey(t *testing.T) {
	a, err := FromKeys[any](CompareAny, func(yield func(any) bool) { _ = yield(1) && yield(2) })
	require.NoError(t, err)
	b, err := FromKeys[any](CompareAny, func(yield func(any) bool) { _ = yield("x") })
	require.NoError(t, err)

	_, err = a.Union(b)
	assert.True(t, fault.Is(err, fault.InvalidKey), "Union: %v", err)
	_, err = a.IsDisjoint(b)
	assert.True(t, fault.Is(err, fault.InvalidKey), "IsDisjoint: %v", err)
	// Sizes alone decide some predicates without comparing keys.
	ok, err := a.IsSubset(b)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = b.IsSubset(a)
	assert.True(t, fault.Is(err, fault.InvalidKey), "IsSubset: %v", err)
}
