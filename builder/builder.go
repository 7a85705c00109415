// SPDX-License-Identifier: MIT
// Package: gnode/builder
//
// builder.go — fluent construction of node hierarchies.
//
// Design contract:
//   - The builder owns an explicit stack of declarations; no builder object
//     points back at its parent.
//   - Stack depth equals declaration depth: WithChild pushes, EndChild pops.
//   - Build materializes one distinct *node.GNode per declaration. Sharing is
//     never introduced here; callers wire shared sub-graphs after Build.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gnode/node"
)

// decl is an in-progress node declaration.
type decl struct {
	name     string
	children []*decl
}

// Builder assembles a node hierarchy from nested declarations.
//
//	root, err := builder.New("a").
//		WithChild("b").
//			WithChild("e").EndChild().
//		EndChild().
//		WithChild("c").EndChild().
//		Build()
type Builder struct {
	stack []*decl
	err   error
}

// New starts a builder whose root declaration is called rootName.
func New(rootName string) *Builder {
	return &Builder{stack: []*decl{{name: rootName}}}
}

// WithChild declares a child called name under the current declaration and
// descends into it.
func (b *Builder) WithChild(name string) *Builder {
	cur := b.current()
	child := &decl{name: name}
	cur.children = append(cur.children, child)
	b.stack = append(b.stack, child)

	return b
}

// EndChild ascends to the parent declaration. At root level it records
// ErrUnbalanced, surfaced by Build, and leaves the stack as is.
func (b *Builder) EndChild() *Builder {
	if len(b.stack) == 1 {
		if b.err == nil {
			b.err = fmt.Errorf("EndChild after %q: %w", b.stack[0].name, ErrUnbalanced)
		}

		return b
	}
	b.stack = b.stack[:len(b.stack)-1]

	return b
}

// Depth returns the current declaration depth; the root is at 0.
func (b *Builder) Depth() int {
	return len(b.stack) - 1
}

// Build materializes the sub-hierarchy rooted at the current declaration,
// depth first with children in declared order.
func (b *Builder) Build() (*node.GNode, error) {
	if b.err != nil {
		return nil, b.err
	}

	return materialize(b.current()), nil
}

// MustBuild is like Build but panics on error. Intended for fixtures.
func (b *Builder) MustBuild() *node.GNode {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}

	return n
}

func (b *Builder) current() *decl {
	return b.stack[len(b.stack)-1]
}

func materialize(d *decl) *node.GNode {
	n := node.New(d.name)
	for _, c := range d.children {
		n.AddChild(materialize(c))
	}

	return n
}
