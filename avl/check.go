// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/psht13/avl-tree/item"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("up pointer fail at node: %v  actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckHeights - check every cached height against a recomputation
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkHeights(p.left)
	hr, okr := checkHeights(p.right)
	if !okl || !okr {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		fmt.Printf("height fail at node: %v  cached: %d  actual: %d\n", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalanced - check every balance factor is in {-1, 0, +1}
func (tree *Tree) CheckBalanced() bool {
	return checkBalanced(tree.root)
}

func checkBalanced(p *Node) bool {
	if nil == p {
		return true
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		fmt.Printf("balance fail at node: %v  factor: %d\n", p.key, bf)
		return false
	}
	return checkBalanced(p.left) && checkBalanced(p.right)
}

// CheckOrder - check the search tree ordering of all keys
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: every key must be inside the exclusive (low, high) bound
func checkOrder(p *Node, low item.Item, high item.Item) bool {
	if nil == p {
		return true
	}
	if nil != low {
		if c, err := low.Compare(p.key); nil != err || c != -1 {
			fmt.Printf("order fail at node: %v  bound: %v < key\n", p.key, low)
			return false
		}
	}
	if nil != high {
		if c, err := p.key.Compare(high); nil != err || c != -1 {
			fmt.Printf("order fail at node: %v  bound: key < %v\n", p.key, high)
			return false
		}
	}
	return checkOrder(p.left, low, p.key) && checkOrder(p.right, p.key, high)
}

// CheckCounts - check the node counters against the actual sub-tree
// sizes and the tree count against the reachable node total
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	if !ok {
		return false
	}
	if n != tree.count {
		fmt.Printf("count fail: counter: %d  actual: %d\n", tree.count, n)
		return false
	}
	return true
}

func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, okl := checkCounts(p.left)
	nr, okr := checkCounts(p.right)
	if !okl || !okr {
		return 0, false
	}
	if nl != p.leftNodes || nr != p.rightNodes {
		fmt.Printf("node count fail at node: %v  cached: [%d,%d]  actual: [%d,%d]\n",
			p.key, p.leftNodes, p.rightNodes, nl, nr)
		return 0, false
	}
	return 1 + nl + nr, true
}
