// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tablecmd implements the commands to print
// the tables derived from a tree sequence.
package tablecmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tsinfo"
)

const flagsUsage = "[--length <value>] [--pretty] [-o|--output <file>] <project-file>"

const flagsHelp = `
The argument of the command is the name of the project file.

By default, the sequence length is inferred from the tables, use the flag
--length to define a different sequence length.

By default, the table is printed in the standard output as a tab-delimited
table. Use the flag --output, or -o, to define an output file. Use the flag
--pretty to print a formatted table instead of a tab-delimited table.
`

var Mutations = &command.Command{
	Usage: "mutations " + flagsUsage,
	Short: "print the mutation table",
	Long: `
Command mutations reads the tree sequence of a tsinfo project and prints a
table with a row for each mutation. The columns of the table are:

	id               the ID of the mutation
	site             the ID of the site of the mutation
	position         the position of the site
	node             the node of the mutation
	node_flags       the flags of the node
	time             the time of the node
	derived_state    the state after the mutation
	inherited_state  the state before the mutation: the ancestral state
	                 of the site, or the derived state of the parent
	                 mutation
	num_parents      the number of mutations in the chain of parent
	                 mutations
	num_descendants  the number of samples below the node of the mutation
	                 in the local tree of the site
	num_inheritors   the number of samples that carry the derived state of
	                 the mutation
` + flagsHelp,
	SetFlags: setFlags,
	Run: func(c *command.Command, args []string) error {
		return run(c, args, "mutations")
	},
}

var Edges = &command.Command{
	Usage: "edges " + flagsUsage,
	Short: "print the edge table",
	Long: `
Command edges reads the tree sequence of a tsinfo project and prints a table
with a row for each edge. The columns of the table are:

	id           the ID of the edge
	left         the left coordinate of the edge
	right        the right coordinate of the edge
	parent       the parent node
	child        the child node
	child_time   the time of the child node
	parent_time  the time of the parent node
` + flagsHelp,
	SetFlags: setFlags,
	Run: func(c *command.Command, args []string) error {
		return run(c, args, "edges")
	},
}

var Nodes = &command.Command{
	Usage: "nodes " + flagsUsage,
	Short: "print the node table",
	Long: `
Command nodes reads the tree sequence of a tsinfo project and prints a table
with a row for each node. The columns of the table are:

	id              the ID of the node
	flags           the flags of the node
	time            the time of the node
	num_mutations   the number of mutations on the node
	ancestors_span  the length of the sequence over which the node has a
	                parent. If the node never has a parent, the value is
	                "-inf".
` + flagsHelp,
	SetFlags: setFlags,
	Run: func(c *command.Command, args []string) error {
		return run(c, args, "nodes")
	},
}

var Sites = &command.Command{
	Usage: "sites " + flagsUsage,
	Short: "print the site table",
	Long: `
Command sites reads the tree sequence of a tsinfo project and prints a table
with a row for each site. The columns of the table are:

	id               the ID of the site
	position         the position of the site
	ancestral_state  the state at the root
	num_mutations    the number of mutations at the site
` + flagsHelp,
	SetFlags: setFlags,
	Run: func(c *command.Command, args []string) error {
		return run(c, args, "sites")
	},
}

var length float64
var pretty bool
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&length, "length", 0, "")
	c.Flags().BoolVar(&pretty, "pretty", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string, name string) error {
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

	tab, err := tsinfo.New(ts).Table(name)
	if err != nil {
		return err
	}

	if output == "" {
		return write(c.Stdout(), tab)
	}
	return writeFile(output, tab)
}

func writeFile(name string, tab tsinfo.Table) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := write(f, tab); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

func write(w io.Writer, tab tsinfo.Table) error {
	if !pretty {
		return tab.TSV(w)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	var header table.Row
	for _, c := range tab.Columns() {
		header = append(header, c)
	}
	tbl.AppendHeader(header)
	for _, r := range tsinfo.Rows(tab) {
		row := make(table.Row, 0, len(r))
		for _, v := range r {
			row = append(row, v)
		}
		tbl.AppendRow(row)
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d rows", tab.Len())})
	tbl.Render()
	return nil
}
