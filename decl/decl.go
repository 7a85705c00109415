// Package decl loads node graphs from YAML declarations and writes them back.
//
// A declaration is a mapping with a name and an optional list of children.
// A child is either another mapping or a bare scalar, shorthand for a leaf:
//
//	name: x
//	children:
//	  - name: y
//	    children:
//	      - &a
//	        name: a
//	        children: [b, c]
//	  - name: z
//	    children: [*a]
//
// A YAML alias resolves to the very same *node.GNode as its anchor, which is
// how a file declares shared sub-graphs and diamonds. Without aliases every
// declaration becomes its own node, exactly as builder.Build does.
package decl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gnode/node"
)

var (
	// ErrMalformed is returned when the document is not a valid declaration.
	ErrMalformed = errors.New("decl: malformed declaration")

	// ErrMissingName is returned when a declaration has no name or an empty one.
	ErrMissingName = errors.New("decl: missing node name")

	// ErrCyclic is returned by Encode when the graph has a back edge, which
	// the tree form cannot express.
	ErrCyclic = errors.New("decl: cyclic graph cannot be encoded")
)

const (
	keyName     = "name"
	keyChildren = "children"
)

// loader resolves declarations, remembering anchored ones so aliases share
// the node built for their anchor.
type loader struct {
	anchored map[*yaml.Node]*node.GNode
}

// Load reads one YAML document from r and returns its root node.
func Load(r io.Reader) (*node.GNode, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		root = root.Content[0]
	}

	l := &loader{anchored: make(map[*yaml.Node]*node.GNode)}

	return l.declaration(root)
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (*node.GNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decl: open %s: %w", path, err)
	}
	defer f.Close()

	n, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

func (l *loader) declaration(y *yaml.Node) (*node.GNode, error) {
	switch y.Kind {
	case yaml.AliasNode:
		if n, ok := l.anchored[y.Alias]; ok {
			return n, nil
		}

		return l.declaration(y.Alias)
	case yaml.ScalarNode:
		if y.Value == "" {
			return nil, fmt.Errorf("%w: line %d col %d", ErrMissingName, y.Line, y.Column)
		}
		n := node.New(y.Value)
		l.remember(y, n)

		return n, nil
	case yaml.MappingNode:
		return l.mapping(y)
	default:
		return nil, fmt.Errorf("%w: line %d col %d: expected mapping or scalar, got %s",
			ErrMalformed, y.Line, y.Column, kindName(y.Kind))
	}
}

func (l *loader) mapping(y *yaml.Node) (*node.GNode, error) {
	var name string
	var children *yaml.Node
	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		switch k.Value {
		case keyName:
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d col %d: name must be a scalar", ErrMalformed, v.Line, v.Column)
			}
			name = v.Value
		case keyChildren:
			children = v
		default:
			return nil, fmt.Errorf("%w: line %d col %d: unknown key %q", ErrMalformed, k.Line, k.Column, k.Value)
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: line %d col %d", ErrMissingName, y.Line, y.Column)
	}

	// registered before the children so an alias below its own anchor
	// closes a real cycle
	n := node.New(name)
	l.remember(y, n)

	if children == nil {
		return n, nil
	}
	if children.Kind == yaml.ScalarNode && children.ShortTag() == "!!null" {
		return n, nil
	}
	if children.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d col %d: children must be a sequence", ErrMalformed, children.Line, children.Column)
	}
	for _, c := range children.Content {
		child, err := l.declaration(c)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}

	return n, nil
}

func (l *loader) remember(y *yaml.Node, n *node.GNode) {
	if y.Anchor != "" {
		l.anchored[y] = n
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}
