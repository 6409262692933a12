// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - delete one occurrence of a value from the tree
//
// returns false if the value was not in the tree
func (tree *Tree) Remove(value int64) bool {
	p := tree.anchor.left
	if nil == p {
		return false
	}

	parent := &tree.anchor
	path := make([]*Node, 0, p.height+1)

search:
	for {
		path = append(path, p)
		if value == p.value {
			break search
		}
		parent = p
		if p.value < value {
			p = p.right
		} else {
			p = p.left
		}
		if nil == p {
			return false
		}
	}

	switch {
	case nil == p.left && nil == p.right:
		// leaf: detach it, the path no longer includes it
		parent.relink(p, nil)
		path = path[:len(path)-1]
		tree.allocator.freeNode(p)

	case nil == p.right:
		// only a left child: pull it up by copying
		l := p.left
		p.value = l.value
		p.left = l.left
		p.right = l.right
		tree.allocator.freeNode(l)

	default:
		// replace by the in-order successor and splice the
		// successor out of the right sub-tree
		successor := p.right
		successorParent := p
		for nil != successor.left {
			successorParent = successor
			path = append(path, successor)
			successor = successor.left
		}
		successorParent.relink(successor, successor.right)
		p.value = successor.value
		tree.allocator.freeNode(successor)
	}
	tree.count -= 1

	tree.retrace(path)
	tree.verify("remove")
	return true
}
