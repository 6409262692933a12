// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a node holding a specific value, nil if not present
func (tree *Tree) Search(value int64) *Node {
	p := tree.anchor.left
	for nil != p {
		switch {
		case p.value < value:
			p = p.right
		case p.value > value:
			p = p.left
		default:
			return p
		}
	}
	return nil
}

// Contains - true if the value is in the tree
func (tree *Tree) Contains(value int64) bool {
	return nil != tree.Search(value)
}

// First - the lowest value, ok is false for an empty tree
func (tree *Tree) First() (value int64, ok bool) {
	p := tree.anchor.left
	if nil == p {
		return 0, false
	}
	for nil != p.left {
		p = p.left
	}
	return p.value, true
}

// Last - the highest value, ok is false for an empty tree
func (tree *Tree) Last() (value int64, ok bool) {
	p := tree.anchor.left
	if nil == p {
		return 0, false
	}
	for nil != p.right {
		p = p.right
	}
	return p.value, true
}
