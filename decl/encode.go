package decl

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gnode/node"
)

// document is the tree form written by Encode.
type document struct {
	Name     string      `yaml:"name"`
	Children []*document `yaml:"children,omitempty"`
}

// Encode writes the graph under anchor as a YAML declaration. Shared
// sub-graphs are expanded once per route; a back edge fails with ErrCyclic.
func Encode(w io.Writer, anchor node.Node) error {
	if node.IsNil(anchor) {
		return fmt.Errorf("%w: nil anchor", ErrMalformed)
	}
	doc, err := toDocument(anchor, make(map[string]bool))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("decl: encode: %w", err)
	}

	return enc.Close()
}

func toDocument(n node.Node, onPath map[string]bool) (*document, error) {
	k := node.Key(n)
	if onPath[k] {
		return nil, fmt.Errorf("%w: %q repeats on its own path", ErrCyclic, k)
	}
	onPath[k] = true
	defer delete(onPath, k)

	d := &document{Name: n.Name()}
	for i, c := range n.Children() {
		if node.IsNil(c) {
			return nil, fmt.Errorf("%w: nil child %d of %q", ErrMalformed, i, k)
		}
		cd, err := toDocument(c, onPath)
		if err != nil {
			return nil, err
		}
		d.Children = append(d.Children, cd)
	}

	return d, nil
}
