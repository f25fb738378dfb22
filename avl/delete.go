// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/psht13/avl-tree/item"
)

// Delete - remove a specific key from the tree
//
// returns the removed value and true, or a nil value and false when
// the key was not present; fails with fault.ErrKeyTypeMismatch on a
// key variant conflict, leaving the tree unchanged
//
// unlike insertion, which needs at most one rotation, a removal can
// require a rotation at every ancestor on the way back to the root
func (tree *Tree) Delete(key item.Item) (item.Item, bool, error) {
	root, value, removed, err := delete(key, tree.root)
	if nil != err {
		return nil, false, err
	}
	tree.root = root
	if nil != tree.root {
		tree.root.up = nil
	}
	if removed {
		tree.count -= 1
	}
	return value, removed, nil
}

// internal delete routine
func delete(key item.Item, p *Node) (*Node, item.Item, bool, error) {
	if nil == p { // key not in tree
		return nil, nil, false, nil
	}
	c, err := p.key.Compare(key)
	if nil != err {
		return p, nil, false, err
	}
	switch c {
	case +1: // p.key > key
		l, value, removed, err := delete(key, p.left)
		if nil != err {
			return p, nil, false, err
		}
		if !removed {
			return p, nil, false, nil
		}
		p.left = l
		if nil != l {
			l.up = p
		}
		p.leftNodes -= 1
		return rebalance(p), value, true, nil

	case -1: // p.key < key
		r, value, removed, err := delete(key, p.right)
		if nil != err {
			return p, nil, false, err
		}
		if !removed {
			return p, nil, false, nil
		}
		p.right = r
		if nil != r {
			r.up = p
		}
		p.rightNodes -= 1
		return rebalance(p), value, true, nil

	default: // found: delete p
		value := p.value
		if nil == p.left { // no children, or right child only
			r := p.right
			if nil != r {
				r.up = p.up
			}
			freeNode(p) // return deleted node to pool
			return r, value, true, nil
		}
		if nil == p.right { // left child only
			l := p.left
			l.up = p.up
			freeNode(p)
			return l, value, true, nil
		}
		// two children: move the in-order successor here, then
		// detach the successor node from the right sub-tree
		r, sk, sv := removeMin(p.right)
		p.key = sk
		p.value = sv
		p.right = r
		if nil != r {
			r.up = p
		}
		p.rightNodes -= 1
		return rebalance(p), value, true, nil
	}
}

// detach the node with the minimum key of a non-empty sub-tree
//
// returns the new sub-tree root and the detached key/value; every
// node on the descent path is rebalanced on the unwind
func removeMin(p *Node) (*Node, item.Item, item.Item) {
	if nil == p.left {
		r := p.right
		if nil != r {
			r.up = p.up
		}
		k := p.key
		v := p.value
		freeNode(p)
		return r, k, v
	}
	l, k, v := removeMin(p.left)
	p.left = l
	if nil != l {
		l.up = p
	}
	p.leftNodes -= 1
	return rebalance(p), k, v
}
