// Package bfs provides tunable options and error definitions
// for reachable-node collection over a node.Node graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gnode/node"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilChild is returned when a node lists a nil child.
	ErrNilChild = errors.New("bfs: nil child")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Collect is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a collection run.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnVisit is called the first time a name is collected, with the depth
	// at which it was reached. If it returns an error, the run aborts.
	OnVisit func(n node.Node, depth int) error

	// MaxDepth, if > 0, stops enqueueing children deeper than this.
	// A value of 0 disables the limit.
	MaxDepth int

	// SkipVisited enqueues a child only if its name was never enqueued
	// before. Every name is then dequeued once, which makes collection
	// terminate on cyclic graphs. On acyclic graphs the collected set is
	// unchanged, unless distinct instances share a name but not their
	// children: only the first one enqueued is expanded.
	SkipVisited bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - unconditional child enqueue (SkipVisited == false)
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:         context.Background(),
		OnVisit:     func(node.Node, int) error { return nil },
		MaxDepth:    0,
		SkipVisited: false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run when a name is first collected;
// returning an error from it stops the run.
func WithOnVisit(fn func(n node.Node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds how far below the anchor the run descends.
//
//	d > 0: collect nodes at depth <= d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSkipVisited turns on the visited guard, see BFSOptions.SkipVisited.
func WithSkipVisited() Option {
	return func(o *BFSOptions) {
		o.SkipVisited = true
	}
}
