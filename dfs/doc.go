// Package dfs implements depth-first root-to-leaf path enumeration and
// cycle inspection over node.Node graphs.
//
// Key features:
//   - FindAllPaths(anchor, opts...): every anchor-to-leaf path, in
//     left-to-right leaf discovery order
//   - Paths(anchor): FindAllPaths with default options, panicking on a
//     nil child
//   - DetectCycles(anchor) / HasCycle(anchor): back-edge inspection keyed by
//     node name, canonical minimal rotations, sorted output
//   - Hooks: OnPath per completed path, error aborts
//   - Opt-in guards: MaxDepth bound, on-path CycleGuard
//   - Cancellation via context.Context
//
// Path enumeration is classic backtracking: push the current node; at a leaf
// append a snapshot of the stack to the result; otherwise recurse into each
// child in declared order; pop before returning. A shared sub-graph is
// emitted once per route that reaches it, which is the intended result and
// not a duplicate. The default algorithm does not terminate on a true cycle;
// callers who cannot rule one out run DetectCycles first or pass
// WithCycleGuard.
//
// Complexity:
//
//   - Time:   O(Σ|p|) over all returned paths p, plus hook overhead.
//   - Memory: O(D) recursion for the deepest route D, plus the result.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithOnPath(fn)       hook per completed path; error aborts.
//   - WithMaxDepth(limit)  fail with ErrDepthExceeded below depth limit (>0).
//   - WithCycleGuard()     fail with ErrCycleDetected when a name repeats on a path.
//
// Errors:
//
//   - ErrNilChild          if a node lists a nil child.
//   - ErrCycleDetected     under WithCycleGuard.
//   - ErrDepthExceeded     under WithMaxDepth.
//   - ErrOptionViolation   for a negative MaxDepth.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnPath.
package dfs
