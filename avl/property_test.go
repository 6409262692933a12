// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

// worst case AVL height for n values
func heightBound(n int) int {
	return int(math.Ceil(1.44*math.Log2(float64(n+2)))) - 1
}

// pre-order list of value/height pairs, equal for identical shapes
func shape(tree *avl.Tree) string {
	var b strings.Builder
	it := tree.Iterate(avl.PreOrder)
	for it.Next() {
		n := it.Node()
		l, r := "-", "-"
		if nil != n.Left() {
			l = fmt.Sprint(n.Left().Value())
		}
		if nil != n.Right() {
			r = fmt.Sprint(n.Right().Value())
		}
		fmt.Fprintf(&b, "%d:%d(%s,%s) ", n.Value(), n.Height(), l, r)
	}
	return b.String()
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tree := avl.New()
	reference := make(map[int64]int)

	for step := 0; step < 20000; step += 1 {
		value := r.Int63n(500)
		if r.Intn(3) > 0 {
			require.True(t, tree.Insert(value))
			reference[value] += 1
		} else {
			removed := tree.Remove(value)
			require.Equal(t, reference[value] > 0, removed, "step: %d remove: %d", step, value)
			if removed {
				reference[value] -= 1
			}
		}

		require.NoError(t, tree.Check(), "step: %d", step)
		if n := tree.Count(); n > 0 {
			require.True(t, tree.Height() <= heightBound(n), "step: %d height: %d count: %d", step, tree.Height(), n)
		}
	}

	total := 0
	for value, count := range reference {
		assert.Equal(t, count > 0, tree.Contains(value), "value: %d", value)
		total += count
	}
	assert.Equal(t, total, tree.Count())
}

func TestInsertNeedsAtMostOneRebalance(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	tree := avl.New()
	for i := 0; i < 5000; i += 1 {
		before := tree.Statistics().Rebalances
		tree.Insert(r.Int63n(1000))
		after := tree.Statistics().Rebalances
		require.True(t, after-before <= 1, "insert: %d rebalanced %d times", i, after-before)
	}
	require.NoError(t, tree.Check())
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tree := avl.New()
	for i := 0; i < 300; i += 1 {
		tree.Insert(2 * r.Int63n(5000)) // even values only
	}

	unchanged := 0
	for i := 0; i < 500; i += 1 {
		value := 2*r.Int63n(5000) + 1 // odd, so never present
		values := tree.Values()
		before := shape(tree)
		rotations := tree.Statistics().Rotations

		require.True(t, tree.Insert(value))
		rotated := tree.Statistics().Rotations != rotations
		require.True(t, tree.Remove(value))

		assert.Equal(t, values, tree.Values())
		if !rotated {
			assert.Equal(t, before, shape(tree), "value: %d", value)
			unchanged += 1
		}
	}
	assert.True(t, unchanged > 0, "every insert rotated")
}

func TestRemoveAbsentLeavesTreeUnchanged(t *testing.T) {
	tree := avl.New()
	for _, v := range []int64{50, 20, 80, 10, 30, 70, 90, 25} {
		tree.Insert(v)
	}
	before := shape(tree)
	stats := tree.Statistics()

	for _, v := range []int64{0, 15, 26, 55, 100} {
		assert.False(t, tree.Remove(v), "value: %d", v)
		assert.Equal(t, before, shape(tree))
		assert.Equal(t, stats, tree.Statistics())
	}
	assert.Equal(t, 8, tree.Count())
}

func TestDuplicatesGoLeft(t *testing.T) {
	tree := avl.New()
	tree.Insert(7)
	tree.Insert(7)

	root := tree.Root()
	require.NotNil(t, root.Left())
	assert.Nil(t, root.Right())
	assert.Equal(t, int64(7), root.Left().Value())

	tree.Insert(7)
	assert.Equal(t, []int64{7, 7, 7}, tree.Values())
	assert.NoError(t, tree.Check())

	for i := 0; i < 3; i += 1 {
		assert.True(t, tree.Remove(7))
	}
	assert.False(t, tree.Remove(7))
	assert.True(t, tree.IsEmpty())
}

func TestTraversalOrders(t *testing.T) {
	tree := avl.New()
	for _, v := range []int64{40, 20, 60, 10, 30, 50, 70} {
		tree.Insert(v)
	}

	collect := func(order avl.Order) []int64 {
		values := []int64{}
		it := tree.Iterate(order)
		for it.Next() {
			values = append(values, it.Value())
		}
		return values
	}

	assert.Equal(t, []int64{10, 20, 30, 40, 50, 60, 70}, collect(avl.InOrder))
	assert.Equal(t, []int64{40, 20, 10, 30, 60, 50, 70}, collect(avl.PreOrder))
	assert.Equal(t, []int64{10, 30, 20, 50, 70, 60, 40}, collect(avl.PostOrder))

	// restart part way through
	it := tree.Iterate(avl.PostOrder)
	require.True(t, it.Next())
	require.True(t, it.Next())
	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, int64(10), it.Value())

	assert.Equal(t, "preorder", avl.PreOrder.String())
}

func TestCapacityLimit(t *testing.T) {
	tree := avl.NewLimited(3)
	assert.Equal(t, 3, tree.Capacity())

	for _, v := range []int64{1, 2, 3} {
		require.True(t, tree.Insert(v))
	}
	before := shape(tree)
	assert.False(t, tree.Insert(4), "insert beyond capacity")
	assert.Equal(t, before, shape(tree))
	assert.Equal(t, 3, tree.Count())

	require.True(t, tree.Remove(2))
	require.True(t, tree.Insert(4))
	assert.Equal(t, []int64{1, 3, 4}, tree.Values())

	s := tree.Statistics()
	assert.Equal(t, 3, s.Allocated)
	assert.Equal(t, 3, s.InUse)
	assert.Equal(t, 1, s.Released)
	assert.NoError(t, tree.Check())
}

func TestPrint(t *testing.T) {
	tree := avl.New()
	var empty bytes.Buffer
	assert.Equal(t, 0, tree.Print(&empty))
	assert.Equal(t, "(empty)\n", empty.String())

	for _, v := range []int64{10, 20, 30} {
		tree.Insert(v)
	}
	var buffer bytes.Buffer
	depth := tree.Print(&buffer)
	assert.Equal(t, 2, depth)
	expected := "       /------+ 30 h:0 +0\n" +
		"|------+ 20 h:1 +0\n" +
		"       \\------+ 10 h:0 +0\n"
	assert.Equal(t, expected, buffer.String())
}

func TestLockedConcurrentInserts(t *testing.T) {
	locked := avl.NewLocked(avl.New())

	var wg sync.WaitGroup
	for g := 0; g < 8; g += 1 {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for i := int64(0); i < 250; i += 1 {
				locked.Insert(base*1000 + i)
			}
		}(int64(g))
	}
	wg.Wait()

	assert.Equal(t, 2000, locked.Count())
	assert.NoError(t, locked.Check())
	assert.True(t, locked.Contains(7249))
	assert.True(t, locked.Remove(7249))
	assert.False(t, locked.Contains(7249))

	locked.Do(func(tree *avl.Tree) {
		assert.Equal(t, 1999, tree.Count())
	})
}
