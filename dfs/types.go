// Package dfs defines types and options for depth-first path enumeration,
// including cancellation, a per-path hook, depth bounding and the
// on-path cycle guard.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gnode/node"
)

// VertexState represents the DFS visitation state of a node name during
// cycle inspection.
type VertexState int

const (
	White VertexState = iota // White: the name has not been visited yet.
	Gray         // Gray: the name is on the recursion stack (visiting).
	Black        // Black: the name and all its descendants are explored.
)

var (
	// ErrNilChild is returned when a node lists a nil child.
	ErrNilChild = errors.New("dfs: nil child")

	// ErrCycleDetected is returned by FindAllPaths under WithCycleGuard when
	// a name reappears on the current path.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrDepthExceeded is returned by FindAllPaths under WithMaxDepth when a
	// route goes deeper than the limit before reaching a leaf.
	ErrDepthExceeded = errors.New("dfs: max depth exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of path enumeration.
// Use with FindAllPaths(anchor, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for path enumeration.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked once per node entered.
	Ctx context.Context

	// OnPath, if non-nil, is invoked with each completed path right after it
	// is recorded. Returning an error aborts the enumeration.
	OnPath func(p node.Path) error

	// MaxDepth, if > 0, is the deepest allowed node (anchor at depth 0).
	// Going deeper fails with ErrDepthExceeded. 0 disables the bound.
	MaxDepth int

	// CycleGuard fails with ErrCycleDetected when a name already on the
	// current path is entered again. Shared sub-graphs are not affected:
	// they never repeat a name along one path.
	CycleGuard bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No OnPath hook
//   - No depth bound (MaxDepth = 0)
//   - No cycle guard
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		OnPath:     nil,
		MaxDepth:   0,
		CycleGuard: false,
	}
}

// WithContext returns an Option that sets the Context for the enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath returns an Option that installs fn as the per-path hook.
func WithOnPath(fn func(p node.Path) error) Option {
	return func(o *DFSOptions) {
		o.OnPath = fn
	}
}

// WithMaxDepth returns an Option that bounds the enumeration depth.
// A negative limit is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithCycleGuard returns an Option that enables the on-path cycle guard.
func WithCycleGuard() Option {
	return func(o *DFSOptions) {
		o.CycleGuard = true
	}
}
