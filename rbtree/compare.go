// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// A Comparator defines a total order on keys. It returns a negative number
// if a < b, zero if a == b and a positive number if a > b.
// It returns a non-nil error if a and b cannot be ordered with respect to
// each other; trees report that as a fault.InvalidKey error.
type Comparator[K any] func(a, b K) (int, error)

// Compare returns a Comparator that never fails, built from a three-way
// comparison function such as strings.Compare.
func Compare[K any](f func(a, b K) int) Comparator[K] {
	return func(a, b K) (int, error) { return f(a, b), nil }
}

// Less returns a Comparator built from a strict weak ordering.
// Keys for which neither less(a, b) nor less(b, a) holds are equal.
func Less[K any](less func(a, b K) bool) Comparator[K] {
	return func(a, b K) (int, error) {
		switch {
		case less(a, b):
			return -1, nil
		case less(b, a):
			return +1, nil
		}
		return 0, nil
	}
}

// Ordered returns a Comparator using cmp.Compare.
// NaNs compare less than all other floating-point values and equal to each other.
func Ordered[K cmp.Ordered]() Comparator[K] {
	return func(a, b K) (int, error) { return cmp.Compare(a, b), nil }
}

// CompareAny orders dynamically typed keys:
// all integer and floating-point kinds compare numerically with one another,
// strings with strings, []byte with []byte and bools with bools (false < true).
// Any other combination, and NaN, yields an error.
func CompareAny(a, b any) (int, error) {
	ka, kb := keyClass(a), keyClass(b)
	if ka == classNone || ka != kb {
		return 0, fmt.Errorf("cannot order %T and %T", a, b)
	}
	switch ka {
	case classNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case classString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()), nil
	case classBytes:
		return bytes.Compare(reflect.ValueOf(a).Bytes(), reflect.ValueOf(b).Bytes()), nil
	default: // classBool
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0, nil
		case y:
			return -1, nil
		}
		return +1, nil
	}
}

type class int

const (
	classNone class = iota
	classNumber
	classString
	classBytes
	classBool
)

func keyClass(k any) class {
	if k == nil {
		return classNone
	}
	v := reflect.ValueOf(k)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return classBytes
		}
	}
	return classNone
}

// compareNumbers compares two numeric values exactly, without rounding
// large integers through float64 unless one side is a float.
func compareNumbers(a, b reflect.Value) (int, error) {
	isFloat := func(v reflect.Value) bool { return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64 }
	if isFloat(a) || isFloat(b) {
		x, y := toFloat(a), toFloat(b)
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, fmt.Errorf("cannot order NaN")
		}
		return cmp.Compare(x, y), nil
	}
	an, aneg := toMagnitude(a)
	bn, bneg := toMagnitude(b)
	switch {
	case aneg && !bneg:
		return -1, nil
	case !aneg && bneg:
		return +1, nil
	case aneg:
		return cmp.Compare(bn, an), nil
	}
	return cmp.Compare(an, bn), nil
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	}
	return float64(v.Uint())
}

// toMagnitude returns |v| and whether v is negative.
func toMagnitude(v reflect.Value) (uint64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < 0 {
			return uint64(-(i + 1)) + 1, true
		}
		return uint64(i), false
	}
	return v.Uint(), false
}
