// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"encoding/json"
	"iter"

	"github.com/psht13/avl-tree/item"
)

// Dump - all key/value pairs in ascending key order
//
// a pure read: repeated calls on an unchanged tree return identical
// content
func (tree *Tree) Dump() []Pair {
	pairs := make([]Pair, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		pairs = append(pairs, Pair{Key: p.key, Value: p.value})
	}
	return pairs
}

// All - iterate over all key/value pairs in ascending key order
//
// for use in a range-over-func loop; the tree must not be modified
// during the iteration
func (tree *Tree) All() iter.Seq2[item.Item, item.Item] {
	return func(yield func(item.Item, item.Item) bool) {
		for p := tree.First(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// MarshalJSON - render the tree as an ordered array of pair objects
func (tree *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(tree.Dump())
}
