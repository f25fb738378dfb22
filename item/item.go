// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"strconv"
	"strings"

	"github.com/psht13/avl-tree/fault"
)

// Item - either an Integer or a Text
//
// Compare returns -1, 0, +1 for receiver less than, equal to or
// greater than the argument, or fault.ErrKeyTypeMismatch if the two
// items are of different cases.  Equal never fails: items of
// different cases are simply unequal.
//
// The interface is sealed so the union stays closed.
type Item interface {
	Compare(Item) (int, error)
	Equal(Item) bool
	String() string
	sealed()
}

// Integer - 64 bit signed integer item
type Integer int64

// Text - UTF-8 string item, ordered bytewise which is codepoint
// order for valid UTF-8
type Text string

// Compare - numeric ordering of two Integer items
func (i Integer) Compare(x Item) (int, error) {
	xi, ok := x.(Integer)
	if !ok {
		return 0, fault.ErrKeyTypeMismatch
	}
	switch {
	case i < xi:
		return -1, nil
	case i > xi:
		return +1, nil
	default:
		return 0, nil
	}
}

// Equal - true if x is an Integer with the same value
func (i Integer) Equal(x Item) bool {
	xi, ok := x.(Integer)
	return ok && i == xi
}

// String - decimal representation
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Integer) sealed() {}

// Compare - lexicographic ordering of two Text items
func (t Text) Compare(x Item) (int, error) {
	xt, ok := x.(Text)
	if !ok {
		return 0, fault.ErrKeyTypeMismatch
	}
	return strings.Compare(string(t), string(xt)), nil
}

// Equal - true if x is a Text with the same contents
func (t Text) Equal(x Item) bool {
	xt, ok := x.(Text)
	return ok && t == xt
}

// String - the underlying string
func (t Text) String() string {
	return string(t)
}

func (Text) sealed() {}
