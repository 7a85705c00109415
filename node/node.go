package node

import (
	"fmt"
	"io"
	"strings"
)

// Node is the capability every traversal operates on.
// Children returns the current children in insertion order; a leaf
// returns an empty slice.
type Node interface {
	Name() string
	Children() []Node
}

// Key returns the identity key of n, which is its name.
// Every deduplication in this module goes through Key.
func Key(n Node) string {
	return n.Name()
}

// Equal reports whether a and b denote the same node under the name rule.
// Two nil nodes are equal; a nil and a non-nil node are not.
func Equal(a, b Node) bool {
	an, bn := IsNil(a), IsNil(b)
	if an || bn {
		return an && bn
	}

	return Key(a) == Key(b)
}

// IsLeaf reports whether n has no children.
func IsLeaf(n Node) bool {
	return len(n.Children()) == 0
}

// IsNil reports whether n is a nil interface or wraps a nil *GNode.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	g, ok := n.(*GNode)

	return ok && g == nil
}

// GNode is the mutable Node implementation. The name is fixed at
// construction; the child list is owned by the node but the children
// themselves are shared references.
type GNode struct {
	name     string
	children []Node
}

// New returns a node called name with no children.
func New(name string) *GNode {
	return &GNode{name: name, children: make([]Node, 0)}
}

// Name returns the node's name.
func (g *GNode) Name() string { return g.name }

// Children returns a snapshot of the children in insertion order.
// Mutating the returned slice does not affect g.
func (g *GNode) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)

	return out
}

// Len returns the number of children.
func (g *GNode) Len() int { return len(g.children) }

// AddChild appends child to the end of the child list. Duplicates, including
// the very same instance, are kept in order. Returns g for chaining.
func (g *GNode) AddChild(child Node) *GNode {
	g.children = append(g.children, child)

	return g
}

// RemoveChild removes the first child Equal to child and reports whether
// anything was removed.
func (g *GNode) RemoveChild(child Node) bool {
	for i, c := range g.children {
		if Equal(c, child) {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return true
		}
	}

	return false
}

// String returns the node's name.
func (g *GNode) String() string { return g.name }

// Display writes the sub-graph anchored at g as indented text, two spaces
// per level, one line per node. Shared nodes are printed once per route.
// Diagnostic only; it recurses without a guard, so it must not be called on
// a cyclic graph.
func (g *GNode) Display(w io.Writer) error {
	return display(w, g, 0)
}

func display(w io.Writer, n Node, level int) error {
	if IsNil(n) {
		return fmt.Errorf("node: nil child at depth %d", level)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", level), n.Name()); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := display(w, c, level+1); err != nil {
			return err
		}
	}

	return nil
}
