// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of the local trees of a tree sequence.
package list

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/project"
)

var Command = &command.Command{
	Usage: "list [--length <value>] <project-file>",
	Short: "print a list of the local trees of a tree sequence",
	Long: `
Command list reads the tree sequence of a tsinfo project and prints the local
trees in the standard output. For each tree it prints the index of the tree,
the genomic interval of the tree, the number of sites in the interval, and
the roots of the tree.

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

	// sites are sorted by position
	sites := make([]int, ts.NumTrees())
	for i := range ts.NumSites() {
		idx, err := ts.TreeIndex(ts.Site(i).Position)
		if err != nil {
			continue
		}
		sites[idx]++
	}

	fmt.Fprintf(c.Stdout(), "tree\tleft\tright\tsites\troots\n")
	for i := range ts.NumTrees() {
		tr := ts.Tree(i)
		left, right := tr.Interval()
		var roots []string
		for _, r := range tr.Roots() {
			roots = append(roots, fmt.Sprintf("%d", r))
		}
		fmt.Fprintf(c.Stdout(), "%d\t%v\t%v\t%d\t%s\n", i, left, right, sites[i], strings.Join(roots, ","))
	}
	return nil
}
