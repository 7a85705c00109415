// Package bfs collects every node reachable from an anchor node,
// breadth first, deduplicating by node name.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gnode/node"
)

// queueItem pairs a node with its distance from the anchor.
type queueItem struct {
	n     node.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	queue []queueItem
	res   node.Set
	order []node.Node
	seen  map[string]struct{} // names ever enqueued, SkipVisited only
}

// Collect returns the set of nodes reachable from anchor, the anchor
// included. A nil anchor yields an empty set and no error.
//
// With default options every dequeued node's children are enqueued
// unconditionally, so the run does not terminate on a cyclic graph; use
// WithSkipVisited or WithMaxDepth when the input may contain a back edge.
//
// On error the partially collected set is returned alongside it.
func Collect(anchor node.Node, opts ...Option) (node.Set, error) {
	w, err := run(anchor, opts)

	return w.res, err
}

// CollectReachableNodes is Collect with default options. Default options
// cannot fail on well-formed input, so a failure means the graph is broken:
// it panics with an error wrapping ErrNilChild when a node lists a nil child.
func CollectReachableNodes(anchor node.Node) node.Set {
	res, err := Collect(anchor)
	if err != nil {
		panic(fmt.Errorf("bfs: CollectReachableNodes: %w", err))
	}

	return res
}

// Walk returns the reachable nodes as a slice in first-visit order, one
// entry per distinct name.
func Walk(anchor node.Node, opts ...Option) ([]node.Node, error) {
	w, err := run(anchor, opts)

	return w.order, err
}

func run(anchor node.Node, opts []Option) (*walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &walker{opts: o, res: node.NewSet(), order: make([]node.Node, 0)}
	if o.err != nil {
		return w, o.err
	}
	if node.IsNil(anchor) {
		return w, nil
	}

	if o.SkipVisited {
		w.seen = map[string]struct{}{node.Key(anchor): {}}
	}
	w.queue = append(w.queue, queueItem{n: anchor})

	return w, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueChildren(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the front item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue[0] = queueItem{}
	w.queue = w.queue[1:]

	return item
}

// visit inserts the node into the result; re-inserting a known name is a
// no-op and does not fire OnVisit.
func (w *walker) visit(item queueItem) error {
	if !w.res.Add(item.n) {
		return nil
	}
	w.order = append(w.order, item.n)
	if err := w.opts.OnVisit(item.n, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.n.Name(), err)
	}

	return nil
}

// enqueueChildren appends the children of item to the back of the queue.
func (w *walker) enqueueChildren(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for i, c := range item.n.Children() {
		if node.IsNil(c) {
			return fmt.Errorf("%w: child %d of %q", ErrNilChild, i, item.n.Name())
		}
		if w.seen != nil {
			if _, ok := w.seen[node.Key(c)]; ok {
				continue
			}
			w.seen[node.Key(c)] = struct{}{}
		}
		w.queue = append(w.queue, queueItem{n: c, depth: next})
	}

	return nil
}
