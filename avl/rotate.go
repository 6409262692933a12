// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// replace the child link of parent that points at old
func (p *Node) relink(old *Node, child *Node) {
	if p.left == old {
		p.left = child
	} else if p.right == old {
		p.right = child
	} else {
		fault.Panicf("avl: node %d is not a child of %d", old.value, p.value)
	}
}

// rotate left: the right child of p replaces p below parent
//
//	  p                r
//	 / \              / \
//	a   r     =>     p   c
//	   / \          / \
//	  b   c        a   b
func (tree *Tree) rotateLeft(p *Node, parent *Node) {
	r := p.right
	if nil == r {
		fault.Panicf("avl: rotate left: node %d has no right child", p.value)
	}

	parent.relink(p, r)
	p.right = r.left
	r.left = p

	p.fixHeight()
	r.fixHeight()
	parent.fixHeight()

	tree.stats.rotations += 1
}

// rotate right: the left child of p replaces p below parent
//
//	    p            l
//	   / \          / \
//	  l   c   =>   a   p
//	 / \              / \
//	a   b            b   c
func (tree *Tree) rotateRight(p *Node, parent *Node) {
	l := p.left
	if nil == l {
		fault.Panicf("avl: rotate right: node %d has no left child", p.value)
	}

	parent.relink(p, l)
	p.left = l.right
	l.right = p

	p.fixHeight()
	l.fixHeight()
	parent.fixHeight()

	tree.stats.rotations += 1
}
