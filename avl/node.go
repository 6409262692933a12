// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree, values <= value
	right  *Node // right sub-tree, values >= value
	value  int64 // ordering value
	height int   // 0 for a leaf
}

// height of a possibly missing sub-tree
func heightOf(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

// recompute the stored height from the children
func (p *Node) fixHeight() {
	p.height = 1 + max(heightOf(p.left), heightOf(p.right))
}

// left height minus right height
func (p *Node) balanceFactor() int {
	return heightOf(p.left) - heightOf(p.right)
}

// true if the sub-tree heights differ by more than one
func (p *Node) unbalanced() bool {
	bf := p.balanceFactor()
	return bf > 1 || bf < -1
}

// Value - read the value from a node
func (p *Node) Value() int64 {
	return p.value
}

// Height - stored height of a node, a leaf is zero
func (p *Node) Height() int {
	return p.height
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}
