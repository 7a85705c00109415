// Package dfs enumerates every anchor-to-leaf path of a node.Node graph
// depth first, left to right.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gnode/node"
)

// pathWalker encapsulates state during path enumeration.
type pathWalker struct {
	opts   DFSOptions
	path   []node.Node    // current route, anchor first
	onPath map[string]int // name → occurrences on path, CycleGuard only
	paths  []node.Path
}

// FindAllPaths returns every path from anchor to a leaf, in the order the
// leaves are discovered by a depth-first, left-to-right walk. A nil anchor
// yields an empty slice; an anchor without children yields [[anchor]].
//
// A node reached through several routes is emitted once per route. With
// default options a true cycle recurses without bound; see WithCycleGuard
// and WithMaxDepth.
//
// On error the paths completed so far are returned alongside it.
func FindAllPaths(anchor node.Node, opts ...Option) ([]node.Path, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	w := &pathWalker{opts: o, paths: make([]node.Path, 0)}
	if o.err != nil {
		return w.paths, o.err
	}
	if node.IsNil(anchor) {
		return w.paths, nil
	}
	if o.CycleGuard {
		w.onPath = make(map[string]int)
	}

	if err := w.traverse(anchor, 0); err != nil {
		return w.paths, err
	}

	return w.paths, nil
}

// Paths is FindAllPaths with default options. It panics with an error
// wrapping ErrNilChild when a node lists a nil child.
func Paths(anchor node.Node) []node.Path {
	paths, err := FindAllPaths(anchor)
	if err != nil {
		panic(fmt.Errorf("dfs: Paths: %w", err))
	}

	return paths
}

// traverse pushes n, records a path at a leaf or recurses into each child,
// then pops n.
func (w *pathWalker) traverse(n node.Node, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Opt-in guards
	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return fmt.Errorf("%w: %s -> %s", ErrDepthExceeded, node.Path(w.path), n.Name())
	}
	if w.onPath != nil {
		if w.onPath[node.Key(n)] > 0 {
			return fmt.Errorf("%w: %s -> %s", ErrCycleDetected, node.Path(w.path), n.Name())
		}
		w.onPath[node.Key(n)]++
		defer func() { w.onPath[node.Key(n)]-- }()
	}

	// 3. Push
	w.path = append(w.path, n)
	defer func() { w.path = w.path[:len(w.path)-1] }()

	// 4. Leaf: record a snapshot of the route
	children := n.Children()
	if len(children) == 0 {
		p := make(node.Path, len(w.path))
		copy(p, w.path)
		w.paths = append(w.paths, p)
		if w.opts.OnPath != nil {
			if err := w.opts.OnPath(p); err != nil {
				return fmt.Errorf("dfs: OnPath hook for %q: %w", p.String(), err)
			}
		}

		return nil
	}

	// 5. Recurse in declared order
	for i, c := range children {
		if node.IsNil(c) {
			return fmt.Errorf("%w: child %d of %q", ErrNilChild, i, n.Name())
		}
		if err := w.traverse(c, depth+1); err != nil {
			return err
		}
	}

	return nil
}
