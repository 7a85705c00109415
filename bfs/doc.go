// Package bfs provides breadth-first reachable-node collection over any
// node.Node graph.
//
// What
//
//   - Collect(anchor, opts...) returns the node.Set of every node reachable
//     from anchor through zero or more child edges, anchor included.
//   - Walk(anchor, opts...) returns the same nodes as a slice, in first-visit
//     order.
//   - CollectReachableNodes(anchor) is Collect with default options; it
//     panics on a nil child instead of returning an error.
//
// Algorithm
//
//	The queue is seeded with the anchor. Each round removes the front node,
//	inserts it into the result (by name, so re-insertion is idempotent) and
//	appends all of its children to the back of the queue without checking
//	whether they were already seen. Shared sub-graphs are therefore walked
//	once per route reaching them, and still collected once.
//
// Precondition
//
//	The default algorithm is valid for acyclic graphs, shared sub-graphs
//	included. A true cycle makes it run forever. WithSkipVisited (enqueue
//	each name at most once) and WithMaxDepth are opt-in guards for inputs
//	that may contain back edges.
//
// Identity
//
//	Membership uses node.Key: two distinct nodes with the same name collapse
//	into one member, the first one reached.
//
// Complexity
//
//   - Time:   O(R) where R is the number of (node, route) pairs; O(V + E)
//     with WithSkipVisited.
//   - Memory: O(V) for the result plus the queue.
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeue.
//   - WithMaxDepth(d):    stop descending below depth d (>0).
//   - WithSkipVisited():  enqueue each name at most once.
//   - WithOnVisit(fn):    hook on first collection; returning error aborts.
//
// Errors
//
//   - ErrNilChild         if a node lists a nil child.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
