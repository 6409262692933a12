// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Locked - a tree shared between go routines
//
// every operation holds a single exclusive lock for its whole
// duration, as the path replay after an insert or remove can touch
// every node from a leaf up to the root
type Locked struct {
	sync.Mutex
	tree *Tree
}

// NewLocked - wrap a tree, which must not be used directly afterwards
func NewLocked(tree *Tree) *Locked {
	return &Locked{
		tree: tree,
	}
}

// Insert - see Tree.Insert
func (l *Locked) Insert(value int64) bool {
	l.Lock()
	defer l.Unlock()
	return l.tree.Insert(value)
}

// Remove - see Tree.Remove
func (l *Locked) Remove(value int64) bool {
	l.Lock()
	defer l.Unlock()
	return l.tree.Remove(value)
}

// Contains - see Tree.Contains
func (l *Locked) Contains(value int64) bool {
	l.Lock()
	defer l.Unlock()
	return l.tree.Contains(value)
}

// Count - see Tree.Count
func (l *Locked) Count() int {
	l.Lock()
	defer l.Unlock()
	return l.tree.Count()
}

// Height - see Tree.Height
func (l *Locked) Height() int {
	l.Lock()
	defer l.Unlock()
	return l.tree.Height()
}

// Values - see Tree.Values
func (l *Locked) Values() []int64 {
	l.Lock()
	defer l.Unlock()
	return l.tree.Values()
}

// Check - see Tree.Check
func (l *Locked) Check() error {
	l.Lock()
	defer l.Unlock()
	return l.tree.Check()
}

// Do - run a function with exclusive access to the tree
func (l *Locked) Do(f func(tree *Tree)) {
	l.Lock()
	defer l.Unlock()
	f(l.tree)
}
