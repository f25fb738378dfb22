// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced key/value tree with the addition of
// parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs; this version caches
// the height of each sub-tree instead of an incremental balance
// factor, as deletion then rebalances every ancestor with the same
// routine insertion uses.
//
// Keys and values are item.Item variants.  All keys of one tree must
// be the same variant; an operation with a key of the other variant
// fails before any modification is made.  An insert with an equal key
// overwrites the stored value in place.
package avl
