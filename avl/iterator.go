// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Order - sequence in which an Iterator visits the nodes
type Order int

// the traversal orders
const (
	InOrder   Order = iota // left, node, right: ascending values
	PreOrder  Order = iota // node, left, right
	PostOrder Order = iota // left, right, node
)

// String - name of the order
func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	default:
		return "unknown"
	}
}

// Iterator - lazy walk over the values of a tree
//
// the tree must not be modified while an iterator is in use, call
// Reset afterwards to start again from the current root
type Iterator struct {
	tree    *Tree
	order   Order
	stack   []*Node
	next    *Node // in-order/post-order: sub-tree still to descend
	last    *Node // post-order: most recently visited node
	current *Node
}

// Iterate - create an iterator positioned before the first value
func (tree *Tree) Iterate(order Order) *Iterator {
	it := &Iterator{
		tree:  tree,
		order: order,
	}
	it.Reset()
	return it
}

// Reset - restart the iteration from the beginning
func (it *Iterator) Reset() {
	root := it.tree.anchor.left
	it.stack = it.stack[:0]
	it.next = nil
	it.last = nil
	it.current = nil
	switch it.order {
	case PreOrder:
		if nil != root {
			it.stack = append(it.stack, root)
		}
	default:
		it.next = root
	}
}

// Next - advance to the next value, false when there are no more
func (it *Iterator) Next() bool {
	switch it.order {
	case InOrder:
		return it.nextInOrder()
	case PreOrder:
		return it.nextPreOrder()
	case PostOrder:
		return it.nextPostOrder()
	}
	it.current = nil
	return false
}

// Value - the value at the current position
func (it *Iterator) Value() int64 {
	if nil == it.current {
		return 0
	}
	return it.current.value
}

// Node - the node at the current position
func (it *Iterator) Node() *Node {
	return it.current
}

func (it *Iterator) push(p *Node) {
	it.stack = append(it.stack, p)
}

func (it *Iterator) pop() *Node {
	n := len(it.stack) - 1
	p := it.stack[n]
	it.stack[n] = nil
	it.stack = it.stack[:n]
	return p
}

func (it *Iterator) nextInOrder() bool {
	for p := it.next; nil != p; p = p.left {
		it.push(p)
	}
	if 0 == len(it.stack) {
		it.current = nil
		return false
	}
	it.current = it.pop()
	it.next = it.current.right
	return true
}

func (it *Iterator) nextPreOrder() bool {
	if 0 == len(it.stack) {
		it.current = nil
		return false
	}
	p := it.pop()
	if nil != p.right {
		it.push(p.right)
	}
	if nil != p.left {
		it.push(p.left)
	}
	it.current = p
	return true
}

func (it *Iterator) nextPostOrder() bool {
	for {
		for p := it.next; nil != p; p = p.left {
			it.push(p)
		}
		it.next = nil
		if 0 == len(it.stack) {
			it.current = nil
			return false
		}
		top := it.stack[len(it.stack)-1]
		if nil != top.right && it.last != top.right {
			it.next = top.right
			continue
		}
		it.pop()
		it.last = top
		it.current = top
		return true
	}
}

// Values - all values in ascending order
func (tree *Tree) Values() []int64 {
	values := make([]int64, 0, tree.count)
	it := tree.Iterate(InOrder)
	for it.Next() {
		values = append(values, it.Value())
	}
	return values
}
