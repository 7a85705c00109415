package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gnode/builder"
	"github.com/katalvlaran/gnode/node"
)

// sampleGraph builds a→{b,c,d}, b→{e,f}, c→{g,h,i}, d→{j}.
func sampleGraph() *node.GNode {
	return builder.New("a").
		WithChild("b").
		WithChild("e").EndChild().
		WithChild("f").EndChild().
		EndChild().
		WithChild("c").
		WithChild("g").EndChild().
		WithChild("h").EndChild().
		WithChild("i").EndChild().
		EndChild().
		WithChild("d").
		WithChild("j").EndChild().
		EndChild().
		MustBuild()
}

// crossLinked builds x→{y,z}, then hangs the sample graph under y and the
// sample's b sub-graph, shared, under z.
func crossLinked() *node.GNode {
	a := sampleGraph()
	x := builder.New("x").
		WithChild("y").EndChild().
		WithChild("z").EndChild().
		MustBuild()

	kids := x.Children()
	y, z := kids[0].(*node.GNode), kids[1].(*node.GNode)
	y.AddChild(a)
	z.AddChild(a.Children()[0])

	return x
}

// countingNode is a node.Node that records every Children call per name.
type countingNode struct {
	name  string
	kids  []node.Node
	calls map[string]int
}

func (c *countingNode) Name() string { return c.name }

func (c *countingNode) Children() []node.Node {
	c.calls[c.name]++
	return c.kids
}

// diamond builds a→{b,c}, b→{d}, c→{d}, d→{e} with one shared d.
func diamond(calls map[string]int) *countingNode {
	mk := func(name string, kids ...node.Node) *countingNode {
		return &countingNode{name: name, kids: kids, calls: calls}
	}
	d := mk("d", mk("e"))

	return mk("a", mk("b", d), mk("c", d))
}

// binaryTree builds a complete binary tree of the given depth, IDs "T-1".."T-N".
func binaryTree(depth int) *node.GNode {
	maxN := (1 << depth) - 1
	nodes := make([]*node.GNode, maxN+1)
	for i := 1; i <= maxN; i++ {
		nodes[i] = node.New(fmt.Sprintf("T-%d", i))
		if i > 1 {
			nodes[i/2].AddChild(nodes[i])
		}
	}

	return nodes[1]
}

func names(ns []node.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Name()
	}

	return out
}

// panicError runs fn and returns the error it panicked with, or nil.
func panicError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()

	return nil
}
