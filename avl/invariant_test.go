// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/psht13/avl-tree/avl"
	"github.com/psht13/avl-tree/item"
)

// node of a target tree shape used to drive worst case construction
type shape struct {
	left  *shape
	right *shape
	key   int
}

// maximally unbalanced AVL shape of the given height: the left
// sub-tree is always one level deeper than the right
func fibShape(h int) *shape {
	if h <= 0 {
		return nil
	}
	return &shape{
		left:  fibShape(h - 1),
		right: fibShape(h - 2),
	}
}

func (s *shape) number(next int) int {
	if nil == s {
		return next
	}
	next = s.left.number(next)
	s.key = next
	return s.right.number(next + 1)
}

// breadth first key order reproduces the shape without any rotation
func (s *shape) breadthFirst() []int {
	keys := []int{}
	queue := []*shape{s}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		keys = append(keys, p.key)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return keys
}

// deleting from the shallow side of a maximally unbalanced tree must
// rebalance at several ancestors on the way back to the root, the
// case where deletion differs from insertion's single rotation
func TestDeleteCascade(t *testing.T) {
	const h = 10

	s := fibShape(h)
	s.number(0)
	keys := s.breadthFirst()

	tree := avl.New()
	for _, k := range keys {
		tree.Insert(item.Integer(int64(k)), item.Integer(int64(k)))
	}
	audit(t, tree, "build")

	// the construction order must have produced the worst case shape
	if tree.Root().Height() != h {
		t.Fatalf("height: actual: %d  expected: %d", tree.Root().Height(), h)
	}

	// repeatedly delete the maximum: it always sits in the shallow
	// right spine, so its removal cascades
	for !tree.IsEmpty() {
		p := tree.Last()
		_, removed, err := tree.Delete(p.Key())
		if nil != err {
			t.Fatalf("delete: %v  error: %s", p.Key(), err)
		}
		if !removed {
			t.Fatalf("delete: %v  not removed", p.Key())
		}
		audit(t, tree, "cascade delete")
	}
}

// two children removal must hand the node the key and value of its
// in-order successor
func TestDeleteTwoChildren(t *testing.T) {
	tree := avl.New()
	for _, k := range []int64{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(item.Integer(k), item.Integer(k))
	}

	// 50 has two children, successor is 60
	value, removed, err := tree.Delete(item.Integer(50))
	if nil != err {
		t.Fatalf("delete error: %s", err)
	}
	if !removed {
		t.Fatal("not removed")
	}
	if !item.Integer(50).Equal(value) {
		t.Fatalf("wrong removed value: %v", value)
	}
	audit(t, tree, "delete")

	expected := []int64{20, 30, 40, 60, 70, 80}
	dump := tree.Dump()
	if len(dump) != len(expected) {
		t.Fatalf("dump length: actual: %d  expected: %d", len(dump), len(expected))
	}
	for i, pair := range dump {
		if !item.Integer(expected[i]).Equal(pair.Key) {
			t.Fatalf("dump[%d]: actual: %v  expected: %d", i, pair.Key, expected[i])
		}
	}
}

// random interleaving of inserts, overwrites and deletes checked
// against a shadow map, with a full consistency audit along the way
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(20260823))

	tree := avl.New()
	shadow := make(map[int64]int64)

	for i := 0; i < 20000; i += 1 {
		k := int64(rng.Intn(500))
		switch rng.Intn(3) {
		case 0, 1: // insert or overwrite
			v := rng.Int63()
			added, err := tree.Insert(item.Integer(k), item.Integer(v))
			if nil != err {
				t.Fatalf("insert error: %s", err)
			}
			_, present := shadow[k]
			if added == present {
				t.Fatalf("insert added: %v  but present: %v", added, present)
			}
			shadow[k] = v
		case 2: // delete
			value, removed, err := tree.Delete(item.Integer(k))
			if nil != err {
				t.Fatalf("delete error: %s", err)
			}
			v, present := shadow[k]
			if removed != present {
				t.Fatalf("delete removed: %v  but present: %v", removed, present)
			}
			if removed && !item.Integer(v).Equal(value) {
				t.Fatalf("delete value: %v  expected: %d", value, v)
			}
			delete(shadow, k)
		}

		if len(shadow) != tree.Count() {
			t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(shadow))
		}
		if 0 == i%500 {
			audit(t, tree, "interleave")
		}
	}
	audit(t, tree, "final")

	expected := make([]int64, 0, len(shadow))
	for k := range shadow {
		expected = append(expected, k)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

	dump := tree.Dump()
	if len(dump) != len(expected) {
		t.Fatalf("dump length: actual: %d  expected: %d", len(dump), len(expected))
	}
	for i, pair := range dump {
		if !item.Integer(expected[i]).Equal(pair.Key) {
			t.Fatalf("dump[%d]: actual: %v  expected: %d", i, pair.Key, expected[i])
		}
		if !item.Integer(shadow[expected[i]]).Equal(pair.Value) {
			t.Fatalf("dump[%d]: wrong value for key %d", i, expected[i])
		}
	}
}
