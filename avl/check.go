// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, stored heights, balance and the count
func (tree *Tree) Check() error {
	n, err := check(tree.anchor.left, math.MinInt64, math.MaxInt64)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, all values must be in [low, high]
// returns the number of nodes in the sub-tree
func check(p *Node, low int64, high int64) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.value < low || p.value > high {
		return 0, fault.ErrOrderingViolated
	}
	nl, err := check(p.left, low, p.value)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p.value, high)
	if nil != err {
		return 0, err
	}
	if p.height != 1+max(heightOf(p.left), heightOf(p.right)) {
		return 0, fault.ErrHeightIncorrect
	}
	if p.unbalanced() {
		return 0, fault.ErrTreeUnbalanced
	}
	return 1 + nl + nr, nil
}

// panic if a debug build finds the tree inconsistent
func (tree *Tree) verify(operation string) {
	if !debugChecks {
		return
	}
	fault.PanicIfError("avl: "+operation, tree.Check())
}
