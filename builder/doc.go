// Package builder provides a fluent, stack-based way to declare node
// hierarchies and materialize them as *node.GNode trees.
//
// The fluent nesting mirrors the declared hierarchy one-to-one:
//
//	a := builder.New("a").
//		WithChild("b").
//			WithChild("e").EndChild().
//			WithChild("f").EndChild().
//		EndChild().
//		WithChild("d").
//			WithChild("j").EndChild().
//		EndChild().
//		MustBuild()
//
// Build materializes from the current declaration, so calling it before the
// chain has ascended back to the root returns the sub-tree under construction.
// Every declaration becomes its own GNode instance; shared sub-graphs and
// diamonds are created by the caller afterwards with GNode.AddChild.
//
// Errors:
//
//   - ErrUnbalanced if EndChild was called at root level.
package builder
