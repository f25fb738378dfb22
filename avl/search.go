// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/psht13/avl-tree/item"
)

// Search - find a specific key
//
// returns the node and its zero based rank index, or nil and -1 when
// the key is not present; absence is not an error, only a key variant
// conflict is
func (tree *Tree) Search(key item.Item) (*Node, int, error) {
	return search(key, tree.root, 0)
}

func search(key item.Item, p *Node, index int) (*Node, int, error) {
	if nil == p {
		return nil, -1, nil
	}

	c, err := p.key.Compare(key)
	if nil != err {
		return nil, -1, err
	}
	switch c {
	case +1: // p.key > key
		return search(key, p.left, index)
	case -1: // p.key < key
		return search(key, p.right, index+p.leftNodes+1)
	default:
		return p, index + p.leftNodes, nil
	}
}

// Has - true if the key is present
func (tree *Tree) Has(key item.Item) (bool, error) {
	p, _, err := tree.Search(key)
	if nil != err {
		return false, err
	}
	return nil != p, nil
}

// Get - index to specific item
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, p *Node) *Node {
	if nil == p {
		return nil
	}

	nl := p.leftNodes

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
