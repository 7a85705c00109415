// Package dfs implements cycle inspection for node.Node graphs.
// DetectCycles walks every name reachable from an anchor with three-color
// marking and reports each back edge as a cycle, rotated to its canonical
// minimal form via Booth's algorithm in O(L) time. The cycle list is sorted
// for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#names, E=#child edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gnode/node"
)

// DetectCycles inspects the graph under anchor for cycles.
// Returns (true, cycles, nil) if any back edge is found, each cycle closed
// (first name repeated last); (false, nil, nil) if the graph is acyclic or
// anchor is nil; (false, nil, err) on a nil child.
//
// Names are identities here as everywhere else: two distinct instances
// sharing a name are one vertex, so a child carrying its parent's name is
// reported as a self-loop.
func DetectCycles(anchor node.Node) (bool, [][]string, error) {
	if node.IsNil(anchor) {
		return false, nil, nil
	}

	c := &cycleWalker{
		state: make(map[string]VertexState),
		seen:  make(map[string]struct{}),
	}
	if err := c.visit(anchor); err != nil {
		return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
	}

	if len(c.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(c.cycles, func(i, j int) bool {
		return JoinSig(c.cycles[i]) < JoinSig(c.cycles[j])
	})

	return true, c.cycles, nil
}

// HasCycle reports whether DetectCycles finds at least one cycle.
func HasCycle(anchor node.Node) (bool, error) {
	found, _, err := DetectCycles(anchor)

	return found, err
}

type cycleWalker struct {
	state  map[string]VertexState // White, Gray or Black per name
	path   []string               // current DFS stack of names
	seen   map[string]struct{}    // canonical signatures already recorded
	cycles [][]string
}

// visit marks n Gray, explores its children and marks it Black.
func (c *cycleWalker) visit(n node.Node) error {
	id := node.Key(n)
	c.state[id] = Gray
	c.path = append(c.path, id)

	for i, child := range n.Children() {
		if node.IsNil(child) {
			return fmt.Errorf("%w: child %d of %q", ErrNilChild, i, id)
		}
		switch c.state[node.Key(child)] {
		case White:
			if err := c.visit(child); err != nil {
				return err
			}
		case Gray:
			// back edge: the child is an ancestor on the current stack
			c.record(node.Key(child))
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black

	return nil
}

// record extracts the cycle that closes at start, canonicalizes it and
// keeps it unless an equal rotation was recorded before.
func (c *cycleWalker) record(start string) {
	idx := IndexOf(c.path, start)
	rot := MinimalRotation(c.path[idx:])
	closed := append(rot, rot[0])

	sig := JoinSig(closed)
	if _, ok := c.seen[sig]; ok {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, closed)
}
