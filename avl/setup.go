// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
//
// the root is anchor.left; the anchor itself never holds a value
type Tree struct {
	anchor    Node
	count     int
	allocator allocator
	stats     rotationStats
}

// New - create an initially empty tree
func New() *Tree {
	return NewLimited(0)
}

// NewLimited - create an initially empty tree that will hold at most
// capacity nodes, zero means no limit
func NewLimited(capacity int) *Tree {
	if capacity < 0 {
		capacity = 0
	}
	return &Tree{
		allocator: allocator{
			limit: capacity,
		},
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.anchor.left
}

// Count - number of values currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Capacity - maximum number of values, zero if unlimited
func (tree *Tree) Capacity() int {
	return tree.allocator.limit
}

// Root - return the root node of the tree, nil if empty
func (tree *Tree) Root() *Node {
	return tree.anchor.left
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree) Height() int {
	return heightOf(tree.anchor.left)
}
