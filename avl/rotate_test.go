// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build a node with an explicit height
func mk(value int64, height int, l *Node, r *Node) *Node {
	return &Node{
		left:   l,
		right:  r,
		value:  value,
		height: height,
	}
}

// attach a hand built tree to an empty tree
func plant(root *Node, count int) *Tree {
	tree := New()
	tree.anchor.left = root
	tree.count = count
	tree.allocator.inUse = count
	return tree
}

func requireShape(t *testing.T, tree *Tree, rootValue int64, leftValue int64, rightValue int64) {
	t.Helper()
	root := tree.Root()
	require.NotNil(t, root, "root")
	require.NotNil(t, root.left, "left child")
	require.NotNil(t, root.right, "right child")
	assert.Equal(t, rootValue, root.value, "root value")
	assert.Equal(t, 1, root.height, "root height")
	assert.Equal(t, leftValue, root.left.value, "left value")
	assert.Equal(t, 0, root.left.height, "left height")
	assert.Equal(t, rightValue, root.right.value, "right value")
	assert.Equal(t, 0, root.right.height, "right height")
	assert.True(t, root.left.IsLeaf())
	assert.True(t, root.right.IsLeaf())
}

func TestRotateLeftAtRoot(t *testing.T) {
	c := mk(30, 0, nil, nil)
	b := mk(20, 1, nil, c)
	a := mk(10, 2, nil, b)
	tree := plant(a, 3)

	tree.rotateLeft(a, &tree.anchor)

	requireShape(t, tree, 20, 10, 30)
	assert.Equal(t, 1, tree.Statistics().Rotations)
	assert.NoError(t, tree.Check())
}

func TestRotateRightBelowParent(t *testing.T) {
	a := mk(10, 0, nil, nil)
	b := mk(20, 1, a, nil)
	c := mk(30, 2, b, nil)
	top := mk(50, 3, c, mk(60, 0, nil, nil))
	tree := plant(top, 5)

	tree.rotateRight(c, top)

	assert.Equal(t, b, top.left, "promoted node not linked to parent")
	assert.Equal(t, a, b.left)
	assert.Equal(t, c, b.right)
	assert.Equal(t, 0, c.height)
	assert.Equal(t, 1, b.height)
	assert.Equal(t, 2, top.height, "parent height not refreshed")
	assert.NoError(t, tree.Check())
}

func TestRotateMovesInnerGrandchild(t *testing.T) {
	// 40 is the inner grandchild that must change sides
	p := mk(50, 2, mk(30, 1, mk(20, 0, nil, nil), mk(40, 0, nil, nil)), mk(60, 0, nil, nil))
	tree := plant(p, 5)

	tree.rotateRight(p, &tree.anchor)

	root := tree.Root()
	assert.Equal(t, int64(30), root.value)
	assert.Equal(t, int64(50), root.right.value)
	assert.Equal(t, int64(40), root.right.left.value)
	assert.Equal(t, []int64{20, 30, 40, 50, 60}, tree.Values())
	assert.NoError(t, tree.Check())
}

func TestRotateWithoutChildPanics(t *testing.T) {
	leaf := mk(1, 0, nil, nil)
	tree := plant(leaf, 1)
	assert.Panics(t, func() { tree.rotateLeft(leaf, &tree.anchor) })
	assert.Panics(t, func() { tree.rotateRight(leaf, &tree.anchor) })
}

// ascending inserts give a single rotation
func TestInsertAscendingRotatesOnce(t *testing.T) {
	tree := New()
	for _, v := range []int64{10, 20, 30} {
		require.True(t, tree.Insert(v))
	}
	requireShape(t, tree, 20, 10, 30)
	s := tree.Statistics()
	assert.Equal(t, 1, s.Rebalances)
	assert.Equal(t, 1, s.Rotations)
}

// a left-right shape needs a double rotation
func TestInsertDoubleRotation(t *testing.T) {
	tree := New()
	for _, v := range []int64{30, 10, 20} {
		require.True(t, tree.Insert(v))
	}
	requireShape(t, tree, 20, 10, 30)
	s := tree.Statistics()
	assert.Equal(t, 1, s.Rebalances)
	assert.Equal(t, 2, s.Rotations)
}

func TestInsertDescendingRotatesRight(t *testing.T) {
	tree := New()
	for _, v := range []int64{30, 20, 10} {
		require.True(t, tree.Insert(v))
	}
	requireShape(t, tree, 20, 10, 30)
	assert.Equal(t, 1, tree.Statistics().Rotations)
}

func TestInsertRightLeftRotation(t *testing.T) {
	tree := New()
	for _, v := range []int64{10, 30, 20} {
		require.True(t, tree.Insert(v))
	}
	requireShape(t, tree, 20, 10, 30)
	assert.Equal(t, 2, tree.Statistics().Rotations)
}

// removing a leaf from the three node tree
func TestRemoveLeafNoRotation(t *testing.T) {
	tree := New()
	for _, v := range []int64{10, 20, 30} {
		tree.Insert(v)
	}
	before := tree.Statistics().Rebalances

	require.True(t, tree.Remove(30))

	root := tree.Root()
	assert.Equal(t, int64(20), root.value)
	assert.Equal(t, 1, root.height)
	require.NotNil(t, root.left)
	assert.Equal(t, int64(10), root.left.value)
	assert.Equal(t, 0, root.left.height)
	assert.Nil(t, root.right)
	assert.Equal(t, before, tree.Statistics().Rebalances)
	assert.NoError(t, tree.Check())
}

// a removal on the short side of a minimal tree makes two nodes on
// the same path unbalanced, one after the other
func TestRemoveCascadingRebalance(t *testing.T) {
	left := mk(50, 3,
		mk(30, 2, mk(20, 1, mk(10, 0, nil, nil), nil), mk(40, 0, nil, nil)),
		mk(70, 1, mk(60, 0, nil, nil), nil),
	)
	right := mk(150, 2, mk(120, 1, mk(110, 0, nil, nil), nil), mk(160, 0, nil, nil))
	tree := plant(mk(100, 4, left, right), 12)
	require.NoError(t, tree.Check())

	require.True(t, tree.Remove(160))

	assert.Equal(t, 2, tree.Statistics().Rebalances)
	assert.NoError(t, tree.Check())
	assert.Equal(t, int64(50), tree.Root().value)
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, []int64{10, 20, 30, 40, 50, 60, 70, 100, 110, 120, 150}, tree.Values())
}

func TestRemoveOnlyLeftChildCopiesUp(t *testing.T) {
	tree := New()
	for _, v := range []int64{20, 10, 30, 5} {
		tree.Insert(v)
	}
	ten := tree.Search(10)
	require.NotNil(t, ten)

	require.True(t, tree.Remove(10))

	// the node object stays, it now holds the child's value
	assert.Equal(t, ten, tree.Root().left)
	assert.Equal(t, int64(5), ten.value)
	assert.True(t, ten.IsLeaf())
	assert.Equal(t, 1, tree.Statistics().Pooled)
	assert.NoError(t, tree.Check())
}

func TestRemoveSuccessorDeepInRightSubtree(t *testing.T) {
	tree := New()
	for _, v := range []int64{40, 20, 60, 10, 30, 50, 70, 45} {
		tree.Insert(v)
	}
	require.True(t, tree.Remove(40))

	assert.Equal(t, int64(45), tree.Root().value)
	assert.Equal(t, []int64{10, 20, 30, 45, 50, 60, 70}, tree.Values())
	assert.NoError(t, tree.Check())
}

func TestRemoveLastValueEmptiesTree(t *testing.T) {
	tree := New()
	require.True(t, tree.Insert(5))
	require.True(t, tree.Remove(5))

	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.anchor.left)
	assert.Equal(t, -1, tree.Height())

	// the released node is reused
	require.True(t, tree.Insert(5))
	s := tree.Statistics()
	assert.Equal(t, 1, s.Allocated)
	assert.Equal(t, 0, s.Pooled)
	assert.Equal(t, 1, s.InUse)
}
