// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	for n := range 300 {
		ks := make([]int, n)
		vs := make([]int, n)
		for i := range ks {
			ks[i] = 3 * i
			vs[i] = -i
		}
		tr := Build(Ordered[int](), ks, vs)
		if err := tr.Check(); err != nil {
			t.Fatalf("n=%d: %v\nT: %v", n, err, tr)
		}
		if !slices.Equal(keys(tr), ks) {
			t.Fatalf("n=%d: keys = %v", n, keys(tr))
		}
		for k, v := range tr.All() {
			if v != -k/3 {
				t.Fatalf("n=%d: value of %d is %d, want %d", n, k, v, -k/3)
			}
		}
	}
}

func TestBuildThenMutate(t *testing.T) {
	ks := make([]int, 1000)
	for i := range ks {
		ks[i] = 2 * i
	}
	tr := Build[int, int](Ordered[int](), ks, nil)
	for _, k := range rand.Perm(2000) {
		if k%3 == 0 {
			tr.Delete(k)
		} else {
			tr.Insert(k, k)
		}
	}
	require.NoError(t, tr.Check())
}

func TestBuildNilValues(t *testing.T) {
	tr := Build[string, struct{}](Compare(strings.Compare), []string{"a", "b", "c"}, nil)
	assert.Equal(t, "(b B (a B nil nil) (c B nil nil))", tr.String())
	assert.Equal(t, 3, tr.Len())
}

func TestBuildMismatch(t *testing.T) {
	assert.Panics(t, func() { Build(Ordered[int](), []int{1, 2}, []int{1}) })
}
