// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package redblack_test

import (
	"fmt"
	"strings"

	"github.com/jba/redblack"
	"github.com/jba/redblack/fault"
)

func ExampleMap_All() {
	m := redblack.NewMap[int, string](redblack.Ordered[int]())
	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleMap_PopMin() {
	m := redblack.NewMap[string, int](redblack.CompareFunc(strings.Compare))
	m.Set("Sweden", 1)
	m.Set("Bulgaria", 2)
	m.Set("Iceland", 3)

	for !m.IsEmpty() {
		k, v, _ := m.PopMin()
		fmt.Println(k, v)
	}
	_, _, err := m.PopMin()
	fmt.Println(fault.KindOf(err))

	// Output:
	// Bulgaria 2
	// Iceland 3
	// Sweden 1
	// empty container
}

func ExampleSet_Union() {
	a := redblack.NewSet(redblack.Ordered[int]())
	b := redblack.NewSet(redblack.Ordered[int]())
	for _, k := range []int{1, 2, 3, 4} {
		a.Add(k)
	}
	for _, k := range []int{3, 4, 5, 6} {
		b.Add(k)
	}

	u, _ := a.Union(b)
	i, _ := a.Intersection(b)
	d, _ := a.Difference(b)
	x, _ := a.SymmetricDifference(b)
	fmt.Println(u, i, d, x)

	// Output:
	// {1, 2, 3, 4, 5, 6} {3, 4} {1, 2} {1, 2, 5, 6}
}

func ExampleCompareAny() {
	s := redblack.NewSet[any](redblack.CompareAny)
	s.Add(2.5)
	s.Add(1)
	s.Add(uint8(3))

	_, err := s.Add("four")
	fmt.Println(s, fault.KindOf(err))

	// Output:
	// {1, 2.5, 3} invalid key
}
