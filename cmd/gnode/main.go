// Command gnode loads a YAML node graph and runs the traversals on it.
//
//	gnode reachable graph.yaml   # distinct reachable names, sorted
//	gnode paths graph.yaml       # every anchor-to-leaf path
//	gnode show graph.yaml        # indented rendering
//	gnode cycles graph.yaml      # back edges, if any
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gnode:", err)
		os.Exit(1)
	}
}

// run executes the command tree with args; split out of main for tests.
func run(out, errOut io.Writer, args []string) error {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)

	return root.Execute()
}
