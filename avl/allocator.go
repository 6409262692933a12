// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// per-tree node allocator
//
// released nodes are kept on a free list linked through their left
// pointer and handed out again before any new node is created
type allocator struct {
	pool       *Node // linked list of reclaimed nodes
	limit      int   // maximum nodes in use, zero for no limit
	inUse      int   // nodes currently in the tree
	freeNodes  int   // number of nodes in the pool
	totalNodes int   // total nodes ever created
	released   int   // total release calls
}

// allocate a new node, reuses reclaimed nodes if any are available
// returns nil if the limit has been reached
func (a *allocator) newNode(value int64) *Node {
	if 0 != a.limit && a.inUse >= a.limit {
		return nil
	}
	a.inUse += 1

	if nil == a.pool {
		if 0 != a.freeNodes {
			fault.Panic("avl: node pool corrupt")
		}
		a.totalNodes += 1
		return &Node{
			value:  value,
			height: 0,
		}
	}
	p := a.pool
	a.pool = p.left
	a.freeNodes -= 1

	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.value = value
	p.height = 0
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator) freeNode(p *Node) {
	a.inUse -= 1
	a.released += 1

	p.right = nil
	p.value = 0
	p.height = 0

	p.left = a.pool // use as free list pointer
	a.pool = p
	a.freeNodes += 1
}

// counts of structural changes
type rotationStats struct {
	rotations  int
	rebalances int
}

// Statistics - allocation and rebalancing counts for a tree
type Statistics struct {
	Allocated  int // distinct nodes ever created
	InUse      int // nodes holding values
	Pooled     int // released nodes waiting for reuse
	Released   int // total node releases
	Rotations  int // single rotations performed
	Rebalances int // calls to the rebalance dispatcher
}

// Statistics - current counters for the tree
func (tree *Tree) Statistics() Statistics {
	return Statistics{
		Allocated:  tree.allocator.totalNodes,
		InUse:      tree.allocator.inUse,
		Pooled:     tree.allocator.freeNodes,
		Released:   tree.allocator.released,
		Rotations:  tree.stats.rotations,
		Rebalances: tree.stats.rebalances,
	}
}
