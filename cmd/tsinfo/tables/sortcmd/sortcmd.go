// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sortcmd implements a command to sort
// the tables of a tsinfo project.
package sortcmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/project"
)

var Command = &command.Command{
	Usage: "sort <project-file>",
	Short: "sort the tables of a project",
	Long: `
Command sort reads the tables of a tree sequence defined in a tsinfo project,
and sorts them in the order required to build a tree sequence:

	- sites are sorted by position
	- mutations are sorted by site, keeping the order of the mutations of
	  the same site
	- edges are sorted by the time of the parent, then by parent ID, then by
	  child ID, and then by the left coordinate

The IDs of sites and mutations are updated, as well as the references to
them. The sorted tables replace the original table files. If a table is not
defined in the project, it will be written in a new file with the name of the
table (for example "sites.tab").

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	t, err := p.Tables(0)
	if err != nil {
		return err
	}
	if err := t.Sort(); err != nil {
		return err
	}

	if err := p.WriteTables(t); err != nil {
		return err
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}
