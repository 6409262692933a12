// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

type node struct {
	left  *node
	right *node
	value int64
}

// Tree - an unbalanced tree
type Tree struct {
	root  *node
	count int
}

// New - create an empty tree
func New() *Tree {
	return &Tree{}
}

// Count - number of values in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// IsEmpty - true if the tree holds no values
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Height - number of links on the longest path, -1 if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *node) int {
	if nil == p {
		return -1
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Insert - add a value, equal values go to the left
func (tree *Tree) Insert(value int64) {
	n := &node{value: value}
	tree.count += 1

	link := &tree.root
	for nil != *link {
		if value <= (*link).value {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = n
}

// Remove - delete one occurrence of a value, false if not present
func (tree *Tree) Remove(value int64) bool {
	link := &tree.root
	for nil != *link && (*link).value != value {
		if (*link).value < value {
			link = &(*link).right
		} else {
			link = &(*link).left
		}
	}
	p := *link
	if nil == p {
		return false
	}

	switch {
	case nil == p.right:
		*link = p.left
	case nil == p.left:
		*link = p.right
	default:
		// copy the in-order successor and unlink it
		s := &p.right
		for nil != (*s).left {
			s = &(*s).left
		}
		p.value = (*s).value
		*s = (*s).right
	}
	tree.count -= 1
	return true
}

// Contains - true if the value is present
func (tree *Tree) Contains(value int64) bool {
	p := tree.root
	for nil != p {
		switch {
		case p.value < value:
			p = p.right
		case p.value > value:
			p = p.left
		default:
			return true
		}
	}
	return false
}
