// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a value to the tree
//
// equal values are kept, each new one going to the left of any
// existing match.  Returns false only if the tree has reached its
// capacity, in which case the tree is unchanged.
func (tree *Tree) Insert(value int64) bool {
	n := tree.allocator.newNode(value)
	if nil == n {
		return false
	}
	tree.count += 1

	p := tree.anchor.left
	if nil == p {
		tree.anchor.left = n
		tree.verify("insert")
		return true
	}

	path := make([]*Node, 0, p.height+1)
descend:
	for {
		path = append(path, p)
		if value <= p.value {
			if nil == p.left {
				p.left = n
				break descend
			}
			p = p.left
		} else {
			if nil == p.right {
				p.right = n
				break descend
			}
			p = p.right
		}
	}

	tree.retrace(path)
	tree.verify("insert")
	return true
}
