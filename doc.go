// Package gnode is a small toolkit for named node hierarchies: trees, DAGs
// with shared sub-graphs, and the occasional graph with a back edge.
//
// 🚀 What is gnode?
//
//	A library built around one capability, a node that has a Name and a
//	list of Children, plus the traversals you need on top of it:
//		• node/    — the Node interface, the GNode implementation, Set and Path
//		• builder/ — fluent construction with WithChild / EndChild
//		• bfs/     — every distinct node reachable from an anchor
//		• dfs/     — every anchor-to-leaf path, and cycle detection
//		• decl/    — YAML declarations in and out; aliases become shared nodes
//
// Identity is the name. Two nodes with the same name are the same node as far
// as sets and cycle detection are concerned, even when they are different
// instances.
//
// The default traversals trust their input. On a graph with a back edge use
// the guards (bfs.WithSkipVisited, dfs.WithCycleGuard, WithMaxDepth) or ask
// dfs.DetectCycles first.
//
// Quick example:
//
//	    x
//	   / \
//	  y   z
//	   \ /
//	    b
//	   / \
//	  e   f
//
//	b := node.New("b").AddChild(node.New("e")).AddChild(node.New("f"))
//	x := node.New("x").
//		AddChild(node.New("y").AddChild(b)).
//		AddChild(node.New("z").AddChild(b))
//	paths, _ := dfs.FindAllPaths(x) // x->y->b->e, x->y->b->f, x->z->b->e, x->z->b->f
//
// The gnode command (cmd/gnode) runs the same traversals on a YAML file:
//
//	go install github.com/katalvlaran/gnode/cmd/gnode@latest
package gnode
