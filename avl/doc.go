// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced (AVL) tree of int64 values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine, wrap it in a Locked or use a
//       mutex/rwmutex to restrict access.
//
// Each node stores its own height (a leaf is zero, a missing child
// counts as -1).  Insert and Remove descend from the root recording
// the path of visited nodes, change the tree at the bottom of the
// path and then replay the path upwards refreshing heights and
// rotating any node whose sub-trees differ in height by more than
// one.
//
// The logical root hangs from the left link of a permanent anchor
// node, so rotating the root is the same operation as rotating any
// other node and no key value is reserved to mark an empty tree.
//
// Duplicate values are allowed; a new value equal to an existing one
// is placed in the left sub-tree of the existing node.
//
// Building with the tag "avldebug" verifies every invariant after each
// Insert and Remove and panics if any is broken.
package avl
