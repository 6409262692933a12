// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rebalance a node whose sub-tree heights differ by two
//
// parent is the anchor when p is the root
func (tree *Tree) balance(p *Node, parent *Node) {
	tree.stats.rebalances += 1

	if heightOf(p.left) > heightOf(p.right) {
		l := p.left
		if heightOf(l.left) >= heightOf(l.right) {
			// single LL rotation
			tree.rotateRight(p, parent)
		} else {
			// double LR rotation
			tree.rotateLeft(l, p)
			tree.rotateRight(p, parent)
		}
	} else {
		r := p.right
		if heightOf(r.right) >= heightOf(r.left) {
			// single RR rotation
			tree.rotateLeft(p, parent)
		} else {
			// double RL rotation
			tree.rotateRight(r, p)
			tree.rotateLeft(p, parent)
		}
	}
}

// walk back up a descent path, deepest node last in the slice,
// refreshing heights and rebalancing as required
//
// every entry is visited even after a rotation; once a sub-tree is
// balanced the remaining entries only have their heights refreshed
func (tree *Tree) retrace(path []*Node) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		p := path[i]
		parent := &tree.anchor
		if i > 0 {
			parent = path[i-1]
		}
		if p.unbalanced() {
			tree.balance(p, parent)
		} else {
			p.fixHeight()
		}
	}
}
