package node_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gnode/node"
)

// ExampleGNode_Display renders a small hierarchy, two spaces per level.
func ExampleGNode_Display() {
	a := node.New("a").
		AddChild(node.New("b").AddChild(node.New("e")).AddChild(node.New("f"))).
		AddChild(node.New("d").AddChild(node.New("j")))

	if err := a.Display(os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// a
	//   b
	//     e
	//     f
	//   d
	//     j
}

// ExampleSet shows that two instances sharing a name are one member.
func ExampleSet() {
	s := node.NewSet(node.New("x"), node.New("x"), node.New("y"))
	fmt.Println(s.Len(), s.HasName("x"), s.HasName("z"))
	// Output:
	// 2 true false
}
