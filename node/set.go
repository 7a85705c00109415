package node

import (
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Set is a collection of nodes keyed by Key. The zero value is an empty set
// ready to use.
type Set struct {
	byName map[string]Node
}

// NewSet returns a Set holding nodes, first instance per name wins.
func NewSet(nodes ...Node) Set {
	s := Set{byName: make(map[string]Node, len(nodes))}
	for _, n := range nodes {
		s.Add(n)
	}

	return s
}

// Add inserts n unless a node with the same name is already present.
// It reports whether n was inserted; nil is never inserted.
func (s *Set) Add(n Node) bool {
	if IsNil(n) {
		return false
	}
	if s.byName == nil {
		s.byName = make(map[string]Node)
	}
	k := Key(n)
	if _, ok := s.byName[k]; ok {
		return false
	}
	s.byName[k] = n

	return true
}

// Has reports whether a node Equal to n is in the set.
func (s Set) Has(n Node) bool {
	if IsNil(n) {
		return false
	}

	return s.HasName(Key(n))
}

// HasName reports whether a node called name is in the set.
func (s Set) HasName(name string) bool {
	_, ok := s.byName[name]

	return ok
}

// Get returns the member called name.
func (s Set) Get(name string) (Node, bool) {
	n, ok := s.byName[name]

	return n, ok
}

// Len returns the number of distinct names.
func (s Set) Len() int { return len(s.byName) }

// Names returns the member names.
func (s Set) Names() sets.Set[string] {
	out := sets.New[string]()
	for k := range s.byName {
		out.Insert(k)
	}

	return out
}

// Sorted returns the members ordered by name.
func (s Set) Sorted() []Node {
	names := sets.List(s.Names())
	out := make([]Node, 0, len(names))
	for _, k := range names {
		out = append(out, s.byName[k])
	}

	return out
}

// Path is an ordered anchor-to-leaf sequence of nodes.
type Path []Node

// Names returns the names along p.
func (p Path) Names() []string {
	out := make([]string, len(p))
	for i, n := range p {
		out[i] = n.Name()
	}

	return out
}

// String renders p as "a -> b -> c".
func (p Path) String() string {
	return strings.Join(p.Names(), " -> ")
}

// SortPaths orders paths lexicographically by their names, in place.
// Traversals already return a deterministic order; this is for callers that
// want a canonical one.
func SortPaths(paths []Path) {
	sort.SliceStable(paths, func(i, j int) bool {
		a, b := paths[i].Names(), paths[j].Names()
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})
}
