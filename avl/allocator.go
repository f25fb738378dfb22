// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/psht13/avl-tree/item"
)

// a node in the tree
//
// height is the cached height of the sub-tree rooted here: 1 for a
// leaf, 0 for a nil pointer.  leftNodes/rightNodes count the nodes in
// each sub-tree and drive the rank routines in search.go.
type Node struct {
	left       *Node     // left sub-tree
	right      *Node     // right sub-tree
	up         *Node     // points to parent node
	key        item.Item // key part for ordering
	value      item.Item // value part for data storage
	height     int       // 1 + max of child heights
	leftNodes  int       // nodes in left sub-tree
	rightNodes int       // nodes in right sub-tree
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key item.Item, value item.Item) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.value = value
	p.height = 1
	p.leftNodes = 0
	p.rightNodes = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.height = 0
	node.leftNodes = 0
	node.rightNodes = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}
