// Package node defines the Node capability traversed by bfs and dfs, the
// mutable GNode implementation, and the name-keyed identity rules shared by
// every algorithm in this module.
//
// What
//
//   - Node: anything exposing a Name and an ordered list of Children.
//   - GNode: a concrete node owning its name and a mutable child list.
//     A child reference is shared and non-owning, so the same *GNode may be
//     attached under several parents (shared sub-graph, diamond).
//   - Set: a collection of nodes keyed by Key (the node name).
//   - Path: an ordered anchor-to-leaf sequence of nodes.
//
// Identity
//
//	Key(n) == n.Name() is the sole identity of a node. Two distinct GNode
//	instances with the same name are Equal and collapse into one Set member,
//	whatever their children. This is a deliberate simplification of the
//	domain, not a general identity scheme: callers who need instance
//	identity must give their nodes unique names.
//
// Shapes
//
//	Graphs built from GNode are directed. Shared sub-graphs are supported by
//	every traversal. True cycles (a node reachable from one of its own
//	descendants) are not guarded against by the default algorithms; see the
//	opt-in guards in bfs and dfs.
//
// Concurrency
//
//	GNode performs no locking. Mutating a graph while a traversal is running
//	over it is a caller error.
package node
