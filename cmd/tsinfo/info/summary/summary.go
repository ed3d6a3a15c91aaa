// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package summary implements a command to print
// an overview of a tree sequence.
package summary

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tsinfo"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: "summary [--length <value>] [--pretty] <project-file>",
	Short: "print an overview of a tree sequence",
	Long: `
Command summary reads the tree sequence of a tsinfo project, and prints the
size of its tables, as well as the mean and standard deviation of the node
times, edge spans, and the number of inheritors of the mutations.

The argument of the command is the name of the project file.

By default, the sequence length is inferred from the tables, use the flag
--length to define a different sequence length.

By default, the output is a list of tab-delimited values. Use the flag
--pretty to print the values as a formatted table.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var length float64
var pretty bool

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&length, "length", 0, "")
	c.Flags().BoolVar(&pretty, "pretty", false, "")
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

	inf := tsinfo.New(ts)
	s := inf.Summary()
	rows := [][2]string{
		{"sequence length", humanize.Commaf(s.SequenceLength)},
		{"trees", humanize.Comma(int64(s.Trees))},
		{"samples", humanize.Comma(int64(s.Samples))},
		{"nodes", humanize.Comma(int64(s.Nodes))},
		{"edges", humanize.Comma(int64(s.Edges))},
		{"sites", humanize.Comma(int64(s.Sites))},
		{"mutations", humanize.Comma(int64(s.Mutations))},
	}

	nt := inf.Nodes()
	rows = append(rows, [2]string{"node time", meanSD(nt.Time)})
	et := inf.Edges()
	rows = append(rows, [2]string{"edge span", meanSD(et.Span())})
	mt, err := inf.Mutations()
	if err != nil {
		return err
	}
	ni, err := mt.Float("num_inheritors")
	if err != nil {
		return err
	}
	rows = append(rows, [2]string{"inheritors", meanSD(ni)})

	if !pretty {
		for _, r := range rows {
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", r[0], r[1])
		}
		return nil
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(c.Stdout())
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(args[0])
	for _, r := range rows {
		tbl.AppendRow(table.Row{r[0], r[1]})
	}
	tbl.Render()
	return nil
}

// MeanSD returns the mean and standard deviation
// of the values.
func meanSD(v []float64) string {
	if len(v) == 0 {
		return "-"
	}
	if len(v) == 1 {
		return humanize.FtoaWithDigits(v[0], 3)
	}
	m, sd := stat.MeanStdDev(v, nil)
	if math.IsNaN(sd) {
		sd = 0
	}
	return fmt.Sprintf("%s (sd %s)", humanize.FtoaWithDigits(m, 3), humanize.FtoaWithDigits(sd, 3))
}
