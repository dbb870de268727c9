// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fault provides the error kinds reported by ordered maps and sets.
//
// Errors are built on github.com/ansel1/merry, so every error created here
// carries a stack trace and a "kind" value. Callers classify an error with
// [Is] or [KindOf] rather than comparing error values:
//
//	v, err := m.Get(k)
//	if fault.Is(err, fault.KeyNotFound) {
//		...
//	}
package fault

import (
	"fmt"

	"github.com/ansel1/merry"
)

// Kind classifies an error.
type Kind int

const (
	// Success is the kind of a nil error.
	Success Kind = iota
	// KeyNotFound reports a lookup or removal of an absent key.
	KeyNotFound
	// EmptyContainer reports a pop from an empty map or set.
	EmptyContainer
	// InvalidKey reports two keys that the comparator could not order.
	InvalidKey
	// CorruptTree reports a violated structural invariant.
	CorruptTree
	// Unknown is the kind of a non-nil error that carries no kind.
	Unknown
)

const kindKey = "kind"

var kindNames = [...]string{
	Success:        "success",
	KeyNotFound:    "key not found",
	EmptyContainer: "empty container",
	InvalidKey:     "invalid key",
	CorruptTree:    "corrupt tree",
	Unknown:        "unknown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// NewError creates an error of the given kind using the format string and arguments.
func NewError(kind Kind, format string, a ...interface{}) error {
	return merry.WrapSkipping(fmt.Errorf(format, a...), 1).WithValue(kindKey, kind)
}

// AddError annotates e with kind, keeping e as the underlying error.
//
// A nil e still yields a non-nil error, since the caller plainly means to
// report a failure.
func AddError(e error, kind Kind) error {
	if e == nil {
		return merry.New(kind.String()).WithValue(kindKey, kind)
	}
	return merry.WrapSkipping(e, 1).WithValue(kindKey, kind)
}

// KindOf extracts the kind from e.
// A nil error is Success; an error without a kind is Unknown.
func KindOf(e error) Kind {
	if e == nil {
		return Success
	}
	if k, ok := merry.Value(e, kindKey).(Kind); ok {
		return k
	}
	return Unknown
}

// Is reports whether e is of the given kind.
func Is(e error, kind Kind) bool {
	return KindOf(e) == kind
}

// IsNot reports whether e is not of the given kind.
func IsNot(e error, kind Kind) bool {
	return KindOf(e) != kind
}

// Location returns the file and line number of the code that generated the error.
// Returns zero values if e has no stacktrace.
func Location(e error) (file string, line int) {
	return merry.Location(e)
}

// SourceLine returns the string representation of Location's result.
func SourceLine(e error) string {
	return merry.SourceLine(e)
}

// Details returns all error details including the stacktrace.
func Details(e error) string {
	return merry.Details(e)
}
