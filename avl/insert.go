// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/psht13/avl-tree/item"
)

// Pair - one key/value element for bulk loading and dumping
type Pair struct {
	Key   item.Item `json:"key"`
	Value item.Item `json:"value"`
}

// Insert - insert a new node into the tree or overwrite the value of
// an existing node with an equal key
//
// returns true if a new node was added, false on overwrite; fails
// with fault.ErrKeyTypeMismatch if the key variant conflicts with the
// keys already stored, leaving the tree unchanged
func (tree *Tree) Insert(key item.Item, value item.Item) (bool, error) {
	root, added, err := insert(key, value, tree.root)
	if nil != err {
		return false, err
	}
	tree.root = root
	tree.root.up = nil
	if added {
		tree.count += 1
	}
	return added, nil
}

// BulkInsert - apply Insert to each pair in sequence order
//
// stops at the first failing pair; pairs before it stay applied
func (tree *Tree) BulkInsert(pairs []Pair) error {
	for _, pair := range pairs {
		_, err := tree.Insert(pair.Key, pair.Value)
		if nil != err {
			return err
		}
	}
	return nil
}

// internal routine for insert
//
// returns the possibly changed sub-tree root; all link and height
// modification happens on the unwind, so a comparison failure at any
// depth aborts with the tree untouched
func insert(key item.Item, value item.Item, p *Node) (*Node, bool, error) {
	if nil == p { // insert new leaf
		return newNode(key, value), true, nil
	}
	c, err := p.key.Compare(key)
	if nil != err {
		return p, false, err
	}
	switch c {
	case +1: // p.key > key
		l, added, err := insert(key, value, p.left)
		if nil != err {
			return p, false, err
		}
		p.left = l
		l.up = p
		if added {
			p.leftNodes += 1
		}
		return rebalance(p), added, nil
	case -1: // p.key < key
		r, added, err := insert(key, value, p.right)
		if nil != err {
			return p, false, err
		}
		p.right = r
		r.up = p
		if added {
			p.rightNodes += 1
		}
		return rebalance(p), added, nil
	default: // equal keys: overwrite in place
		p.value = value
		return p, false, nil
	}
}

// restore the AVL height bound at p after one of its sub-trees
// changed, refreshing the cached height
//
// the sign of the child's balance factor selects between the single
// and the double rotation; returns the new sub-tree root with its up
// pointer still referring to p's old parent, the caller relinks it
func rebalance(p *Node) *Node {
	p.setHeight()
	switch bf := balanceFactor(p); {
	case bf > 1: // left heavy
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case bf < -1: // right heavy
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	default:
		return p
	}
}

// single right rotation: p's left child becomes the sub-tree root
func rotateRight(p *Node) *Node {
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p.leftNodes = p1.rightNodes
	p.setHeight()

	p1.right = p
	p1.rightNodes = 1 + p.leftNodes + p.rightNodes
	p1.up = p.up
	p.up = p1
	p1.setHeight()

	return p1
}

// single left rotation: p's right child becomes the sub-tree root
func rotateLeft(p *Node) *Node {
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p.rightNodes = p1.leftNodes
	p.setHeight()

	p1.left = p
	p1.leftNodes = 1 + p.leftNodes + p.rightNodes
	p1.up = p.up
	p.up = p1
	p1.setHeight()

	return p1
}
