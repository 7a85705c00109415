package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gnode/bfs"
	"github.com/katalvlaran/gnode/node"
)

// BenchmarkCollect_BinaryTree runs collection on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkCollect_BinaryTree(b *testing.B) {
	const depth = 10
	root := binaryTree(depth)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Collect(root)
	}
}

// BenchmarkCollect_DiamondLadder compares the default unconditional enqueue
// with the visited guard on a ladder of L stacked diamonds (2^L routes).
func BenchmarkCollect_DiamondLadder(b *testing.B) {
	const levels = 12
	// top→{l0,r0}→m0→{l1,r1}→m1→…
	top := node.New("top")
	cur := top
	for i := 0; i < levels; i++ {
		m := node.New(fmt.Sprintf("m%d", i))
		cur.AddChild(node.New(fmt.Sprintf("l%d", i)).AddChild(m))
		cur.AddChild(node.New(fmt.Sprintf("r%d", i)).AddChild(m))
		cur = m
	}

	b.Run("Default", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.Collect(top)
		}
	})
	b.Run("SkipVisited", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.Collect(top, bfs.WithSkipVisited())
		}
	})
}
