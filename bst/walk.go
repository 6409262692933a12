// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/avl"
)

// Visit - called for each value, return false to stop the walk
type Visit func(value int64) bool

// Walk - recursive traversal in the given order
// returns false if the visitor stopped the walk early
func (tree *Tree) Walk(order avl.Order, visit Visit) bool {
	switch order {
	case avl.InOrder:
		return inOrder(tree.root, visit)
	case avl.PreOrder:
		return preOrder(tree.root, visit)
	case avl.PostOrder:
		return postOrder(tree.root, visit)
	}
	return true
}

func inOrder(p *node, visit Visit) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, visit) && visit(p.value) && inOrder(p.right, visit)
}

func preOrder(p *node, visit Visit) bool {
	if nil == p {
		return true
	}
	return visit(p.value) && preOrder(p.left, visit) && preOrder(p.right, visit)
}

func postOrder(p *node, visit Visit) bool {
	if nil == p {
		return true
	}
	return postOrder(p.left, visit) && postOrder(p.right, visit) && visit(p.value)
}

// WalkIterative - the same traversal as Walk using an explicit stack
func (tree *Tree) WalkIterative(order avl.Order, visit Visit) bool {
	if nil == tree.root {
		return true
	}
	stack := make([]*node, 0, 32)

	switch order {
	case avl.InOrder:
		p := tree.root
		for nil != p || 0 != len(stack) {
			for ; nil != p; p = p.left {
				stack = append(stack, p)
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !visit(p.value) {
				return false
			}
			p = p.right
		}

	case avl.PreOrder:
		stack = append(stack, tree.root)
		for 0 != len(stack) {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !visit(p.value) {
				return false
			}
			if nil != p.right {
				stack = append(stack, p.right)
			}
			if nil != p.left {
				stack = append(stack, p.left)
			}
		}

	case avl.PostOrder:
		// two stacks: the second receives nodes in reverse post-order
		output := make([]*node, 0, tree.count)
		stack = append(stack, tree.root)
		for 0 != len(stack) {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			output = append(output, p)
			if nil != p.left {
				stack = append(stack, p.left)
			}
			if nil != p.right {
				stack = append(stack, p.right)
			}
		}
		for i := len(output) - 1; i >= 0; i -= 1 {
			if !visit(output[i].value) {
				return false
			}
		}
	}
	return true
}

// Values - all values in the given order
func (tree *Tree) Values(order avl.Order) []int64 {
	values := make([]int64, 0, tree.count)
	tree.Walk(order, func(value int64) bool {
		values = append(values, value)
		return true
	})
	return values
}
