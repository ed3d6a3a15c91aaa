// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the local trees of a tree sequence
// as time-calibrated trees.
package export

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tsinfo"
)

var Command = &command.Command{
	Usage: `export [--length <value>] [--scale <value>]
	[--name <prefix>] [-o|--output <file>] <project-file>`,
	Short: "export local trees as time trees",
	Long: `
Command export reads the tree sequence of a tsinfo project and writes the
local trees as a collection of time-calibrated trees, in the tab-delimited
format of time trees.

Each root of a local tree defines a tree, named with a prefix and the index
of the local tree (for example "tree.3"). If a local tree has more than one
root, the ID of the root is added to the name (for example "tree.3.12"). Use
the flag --name to set a different prefix. Terminals are named after the ID
of the node (for example "N7"). Nodes with a single child are collapsed.

Ages of time trees are integers, so node times are multiplied by a scale
value and rounded. By default the scale is 1, use the flag --scale to define
a different value.

The argument of the command is the name of the project file.

By default, the sequence length is inferred from the tables, use the flag
--length to define a different sequence length.

By default, the trees are written in the tree file of the project. If the
project does not have a tree file, a new one will be created with the name
'trees.tab'. Use the flag --output, or -o, to define a different file. The
file will be used as the tree file of the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var length float64
var scale float64
var prefix string
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&length, "length", 0, "")
	c.Flags().Float64Var(&scale, "scale", 1, "")
	c.Flags().StringVar(&prefix, "name", "tree", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	ts, err := p.TreeSeq(length)
	if err != nil {
		return err
	}

	tc, err := tsinfo.New(ts).TimeTrees(prefix, scale)
	if err != nil {
		return err
	}

	if output != "" {
		p.Add(project.Trees, output)
	}
	if err := p.WriteTrees(tc); err != nil {
		return err
	}
	if err := p.Write(); err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "%d trees written to %q\n", len(tc.Names()), p.Path(project.Trees))
	return nil
}
