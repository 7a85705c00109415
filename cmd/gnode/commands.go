package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gnode/bfs"
	"github.com/katalvlaran/gnode/decl"
	"github.com/katalvlaran/gnode/dfs"
	"github.com/katalvlaran/gnode/internal/logging"
	"github.com/katalvlaran/gnode/node"
)

// app carries flag values and shared state across subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger

	logLevel string
	logJSON  bool
	guard    bool
	maxDepth int
	noColor  bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "gnode",
		Short:         "Traverse node graphs declared in YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logging.Config{Level: a.logLevel, JSON: a.logJSON, Writer: a.errOut})
			if err != nil {
				return err
			}
			a.log = log
			if a.noColor {
				color.NoColor = true
			}

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON lines")
	pf.BoolVar(&a.guard, "guard", false, "enable cycle guards so cyclic graphs fail or terminate instead of looping")
	pf.IntVar(&a.maxDepth, "max-depth", 0, "deepest level to traverse below the anchor (0 = unlimited)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		&cobra.Command{
			Use:   "reachable FILE",
			Short: "Print every distinct node name reachable from the anchor",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runReachable,
		},
		&cobra.Command{
			Use:   "paths FILE",
			Short: "Print every path from the anchor to a leaf",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runPaths,
		},
		&cobra.Command{
			Use:   "show FILE",
			Short: "Print the graph as an indented tree",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runShow,
		},
		&cobra.Command{
			Use:   "cycles FILE",
			Short: "Report cycles reachable from the anchor",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runCycles,
		},
		&cobra.Command{
			Use:   "expand FILE",
			Short: "Rewrite the graph as a plain YAML tree, shared sub-graphs copied per route",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runExpand,
		},
	)

	return root
}

func (a *app) load(path string) (*node.GNode, error) {
	anchor, err := decl.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded", "file", path, "anchor", anchor.Name())

	return anchor, nil
}

func (a *app) runReachable(cmd *cobra.Command, args []string) error {
	anchor, err := a.load(args[0])
	if err != nil {
		return err
	}

	var opts []bfs.Option
	if a.guard {
		opts = append(opts, bfs.WithSkipVisited())
	}
	if a.maxDepth != 0 {
		opts = append(opts, bfs.WithMaxDepth(a.maxDepth))
	}
	opts = append(opts, bfs.WithContext(cmd.Context()))

	set, err := bfs.Collect(anchor, opts...)
	if err != nil {
		return err
	}
	a.log.Info("reachable nodes collected", "count", set.Len())

	for _, n := range set.Sorted() {
		fmt.Fprintln(a.out, n.Name())
	}

	return nil
}

func (a *app) runPaths(cmd *cobra.Command, args []string) error {
	anchor, err := a.load(args[0])
	if err != nil {
		return err
	}

	var opts []dfs.Option
	if a.guard {
		opts = append(opts, dfs.WithCycleGuard())
	}
	if a.maxDepth != 0 {
		opts = append(opts, dfs.WithMaxDepth(a.maxDepth))
	}
	opts = append(opts, dfs.WithContext(cmd.Context()))

	paths, err := dfs.FindAllPaths(anchor, opts...)
	if err != nil {
		return err
	}
	a.log.Info("paths enumerated", "count", len(paths))

	for _, p := range paths {
		fmt.Fprintln(a.out, p.String())
	}

	return nil
}

func (a *app) runShow(_ *cobra.Command, args []string) error {
	anchor, err := a.load(args[0])
	if err != nil {
		return err
	}
	if a.guard {
		cyclic, err := dfs.HasCycle(anchor)
		if err != nil {
			return err
		}
		if cyclic {
			return fmt.Errorf("show %s: %w", args[0], dfs.ErrCycleDetected)
		}
	}

	return anchor.Display(a.out)
}

func (a *app) runCycles(_ *cobra.Command, args []string) error {
	anchor, err := a.load(args[0])
	if err != nil {
		return err
	}

	found, cycles, err := dfs.DetectCycles(anchor)
	if err != nil {
		return err
	}
	if !found {
		color.New(color.FgGreen).Fprintln(a.out, "no cycles")
		return nil
	}

	a.log.Warn("cycles detected", "count", len(cycles))
	red := color.New(color.FgRed)
	for _, c := range cycles {
		red.Fprintln(a.out, strings.Join(c, " -> "))
	}

	return nil
}

func (a *app) runExpand(_ *cobra.Command, args []string) error {
	anchor, err := a.load(args[0])
	if err != nil {
		return err
	}

	return decl.Encode(a.out, anchor)
}
