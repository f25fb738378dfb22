// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - the key and value representation for the tree
//
// A closed two case union: Integer (64 bit signed) or Text (UTF-8
// string).  Ordering is only defined between items of the same case;
// comparing across cases is an explicit error, never a coercion, so a
// tree built from one case can never be corrupted by a key of the
// other.
package item
