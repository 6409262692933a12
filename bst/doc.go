// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree of int64 values
//
// Uses the same ordering rules as package avl (equal values go left)
// but never rotates, so its height depends on the insertion order.
// Traversals are provided both recursively and with an explicit
// stack.
package bst
