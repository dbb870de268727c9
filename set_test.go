// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redblack

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jba/redblack/fault"
)

func intSet(t *testing.T, keys ...int) *Set[int] {
	t.Helper()
	s, err := FromKeys(Ordered[int](), slices.Values(keys))
	require.NoError(t, err)
	return s
}

func TestAdd(t *testing.T) {
	s := NewSet(Ordered[int]())
	for i, k := range []int{5, 3, 8, 3, 5, 1} {
		added, err := s.Add(k)
		require.NoError(t, err)
		assert.Equal(t, i < 3 || i == 5, added, "Add(%d)", k)
	}
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "{1, 3, 5, 8}", s.String())
	require.NoError(t, s.Check())
}

func TestSetOrder(t *testing.T) {
	for N := range 50 {
		s := NewSet(Ordered[int]())
		for _, k := range rand.Perm(N) {
			s.Add(k)
			s.Add(k)
		}
		require.NoError(t, s.Check())
		want := make([]int, N)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, slices.Collect(s.All()))
		slices.Reverse(want)
		assert.Equal(t, want, slices.Collect(s.Backward()))
		if N > 0 {
			lo, ok := s.Min()
			assert.True(t, ok)
			assert.Equal(t, 0, lo)
			hi, ok := s.Max()
			assert.True(t, ok)
			assert.Equal(t, N-1, hi)
		}
	}
}

func TestDiscardRemove(t *testing.T) {
	s := intSet(t, 1, 2, 3, 4, 5)

	ok, err := s.Discard(3)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Discard(3)
	require.NoError(t, err)
	assert.False(t, ok)

	before := slices.Collect(s.All())
	err = s.Remove(3)
	assert.True(t, fault.Is(err, fault.KeyNotFound), "got %v", err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, before, slices.Collect(s.All()))

	require.NoError(t, s.Remove(1))
	assert.Equal(t, "{2, 4, 5}", s.String())
	has, err := s.Contains(1)
	require.NoError(t, err)
	assert.False(t, has)
	has, err = s.Contains(4)
	require.NoError(t, err)
	assert.True(t, has)
	require.NoError(t, s.Check())
}

func TestSetPopMin(t *testing.T) {
	countries := []string{
		"Bulgaria", "Cyprus", "Germany", "Greenland", "Hungary",
		"Iceland", "Ireland", "Macedonia", "Portugal", "Sweden",
	}
	shuffled := slices.Clone(countries)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	s, err := FromKeys(CompareFunc(strings.Compare), slices.Values(shuffled))
	require.NoError(t, err)

	first, err := s.PopMin()
	require.NoError(t, err)
	assert.Equal(t, "Bulgaria", first)

	got := []string{first}
	for !s.IsEmpty() {
		k, err := s.PopMin()
		require.NoError(t, err)
		got = append(got, k)
		require.NoError(t, s.Check())
	}
	assert.Equal(t, countries, got)

	_, err = s.PopMin()
	assert.True(t, fault.Is(err, fault.EmptyContainer), "got %v", err)
}

func TestSetCloneClear(t *testing.T) {
	s := intSet(t, 4, 2, 6)
	c := s.Clone()
	c.Add(5)
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "{}", s.String())
	assert.Equal(t, "{2, 4, 5, 6}", c.String())
	_, ok := s.Min()
	assert.False(t, ok)
	_, ok = s.Max()
	assert.False(t, ok)
}

func TestSetInvalidKey(t *testing.T) {
	s := NewSet[any](CompareAny)
	_, err := s.Add("a")
	require.NoError(t, err)

	_, err = s.Add(1)
	assert.True(t, fault.Is(err, fault.InvalidKey), "Add: %v", err)
	_, err = s.Discard(1)
	assert.True(t, fault.Is(err, fault.InvalidKey), "Discard: %v", err)
	err = s.Remove(1)
	assert.True(t, fault.Is(err, fault.InvalidKey), "Remove: %v", err)
	_, err = FromKeys[any](CompareAny, slices.Values([]any{1, 2, "x"}))
	assert.True(t, fault.Is(err, fault.InvalidKey), "FromKeys: %v", err)
	assert.Equal(t, 1, s.Len())
	require.NoError(t, s.Check())
}
