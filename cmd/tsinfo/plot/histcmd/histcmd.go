// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package histcmd implements a command to draw
// the histogram of a table column.
package histcmd

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/dashboard"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tsinfo"
)

var Command = &command.Command{
	Usage: `hist [--length <value>] [--config <file>] [--logy]
	[--table <name>] [--column <name>]
	-o|--output <file> <project-file>`,
	Short: "draw the histogram of a table column",
	Long: `
Command hist reads the tree sequence of a tsinfo project and draws the
histogram of a column of a table.

The argument of the command is the name of the project file.

By default, the sequence length is inferred from the tables, use the flag
--length to define a different sequence length.

The flag --table defines the table to be used. Valid values are "mutations",
"edges", "nodes", and "sites". By default it uses the mutation table. The
flag --column defines the column, by default "time".

Count columns (for example "num_inheritors") use a bin for each integer
value, up to the number of site bins (or node bins for "num_mutations")
defined in the dashboard configuration. With the flag --logy the log10 of the
counts is used. If the time stages are defined in the project, they are used
as the bins of "time" columns. Non-finite values are ignored.

The flag --output, or -o, is required and defines the name of the output
file. The format of the image is defined by the file extension, valid formats
are "svg", "png", "pdf", "eps", "jpg", and "tif".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var length float64
var cfgFile string
var logY bool
var tabName string
var column string
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&length, "length", 0, "")
	c.Flags().StringVar(&cfgFile, "config", "", "")
	c.Flags().BoolVar(&logY, "logy", false, "")
	c.Flags().StringVar(&tabName, "table", "mutations", "")
	c.Flags().StringVar(&column, "column", "time", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if output == "" {
		return c.UsageError("expecting output file, flag --output")
	}
	format, err := dashboard.Format(output)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	ts, err := p.TreeSeq(length)
	if err != nil {
		return err
	}

	if cfgFile != "" {
		p.Add(project.Dashboard, cfgFile)
	}
	cfg, err := p.Dashboard()
	if err != nil {
		return err
	}
	if logY {
		cfg.LogY = true
	}

	tab, err := tsinfo.New(ts).Table(tabName)
	if err != nil {
		return err
	}
	plt, err := dashboard.ColumnHist(tab, column, cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dashboard.WritePlot(f, plt, cfg, format); err != nil {
		return fmt.Errorf("on file %q: %v", output, err)
	}
	return f.Close()
}
