// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package check implements a command to validate
// the tree sequence of a tsinfo project.
package check

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/project"
)

var Command = &command.Command{
	Usage: "check [--length <value>] <project-file>",
	Short: "validate the tree sequence of a project",
	Long: `
Command check reads the tables of a tree sequence defined in a tsinfo project,
and checks that they define a valid tree sequence. If the tables are valid,
the number of local trees will be printed in the standard output.

The argument of the command is the name of the project file.

By default, the sequence length is inferred from the tables, use the flag
--length to define a different sequence length.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var length float64

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&length, "length", 0, "")
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
	fmt.Fprintf(c.Stdout(), "%s: ok: %d trees over [0, %v)\n", args[0], ts.NumTrees(), ts.SequenceLength())
	return nil
}
